package model

import (
	"time"

	"gorm.io/datatypes"
)

type ModerationMode string

var (
	ModerationOff           ModerationMode = "off"
	ModerationClubModerator ModerationMode = "clubModerator"
)

type PolicyLimits struct {
	MaxPerClubPerDay    int     `json:"max_per_club_per_day" validate:"gte=0"`
	UserCooldownMinutes int     `json:"user_cooldown_minutes" validate:"gte=0"`
	AllowImages         bool    `json:"allow_images"`
	MaxImageMB          float64 `json:"max_image_mb" validate:"gte=0"`
	MaxTitleLen         int     `json:"max_title_len" validate:"gte=0"`
	MaxDescLen          int     `json:"max_desc_len" validate:"gte=0"`
}

// EventPolicy is the process-wide event creation policy. Callers fetch a
// snapshot once per request and pass it down.
type EventPolicy struct {
	EnabledGlobal  bool            `json:"enabled_global"`
	EnabledByClub  map[string]bool `json:"enabled_by_club"`
	ModerationMode ModerationMode  `json:"moderation_mode" validate:"required,oneof=off clubModerator"`
	Limits         PolicyLimits    `json:"limits"`

	// Degraded marks in-memory defaults used because the stored policy
	// could not be read. Never persisted.
	Degraded bool `json:"-"`
}

// CreationEnabledForClub applies the global switch, then the club override.
// A degraded snapshot permits nothing.
func (p EventPolicy) CreationEnabledForClub(clubID string) bool {
	if p.Degraded || !p.EnabledGlobal {
		return false
	}
	if enabled, ok := p.EnabledByClub[clubID]; ok {
		return enabled
	}
	return true
}

func DefaultEventPolicy() EventPolicy {
	return EventPolicy{
		EnabledGlobal:  true,
		EnabledByClub:  map[string]bool{},
		ModerationMode: ModerationOff,
		Limits: PolicyLimits{
			MaxPerClubPerDay:    5,
			UserCooldownMinutes: 30,
			AllowImages:         true,
			MaxImageMB:          5,
			MaxTitleLen:         100,
			MaxDescLen:          500,
		},
	}
}

// EventPolicyRecord is the stored form of EventPolicy, a single row keyed
// by PolicyKey.
type EventPolicyRecord struct {
	ID                  string                              `gorm:"column:id;primaryKey"`
	EnabledGlobal       bool                                `gorm:"column:enabled_global"`
	EnabledByClub       datatypes.JSONType[map[string]bool] `gorm:"column:enabled_by_club"`
	ModerationMode      ModerationMode                      `gorm:"column:moderation_mode"`
	MaxPerClubPerDay    int                                 `gorm:"column:max_per_club_per_day"`
	UserCooldownMinutes int                                 `gorm:"column:user_cooldown_minutes"`
	AllowImages         bool                                `gorm:"column:allow_images"`
	MaxImageMB          float64                             `gorm:"column:max_image_mb"`
	MaxTitleLen         int                                 `gorm:"column:max_title_len"`
	MaxDescLen          int                                 `gorm:"column:max_desc_len"`
	UpdateDate          time.Time                           `gorm:"column:update_date"`
}

const PolicyKey = "global"

func (m *EventPolicyRecord) TableName() string {
	return "event_policies"
}

func NewEventPolicyRecord(p EventPolicy, now time.Time) EventPolicyRecord {
	clubs := p.EnabledByClub
	if clubs == nil {
		clubs = map[string]bool{}
	}
	return EventPolicyRecord{
		ID:                  PolicyKey,
		EnabledGlobal:       p.EnabledGlobal,
		EnabledByClub:       datatypes.NewJSONType(clubs),
		ModerationMode:      p.ModerationMode,
		MaxPerClubPerDay:    p.Limits.MaxPerClubPerDay,
		UserCooldownMinutes: p.Limits.UserCooldownMinutes,
		AllowImages:         p.Limits.AllowImages,
		MaxImageMB:          p.Limits.MaxImageMB,
		MaxTitleLen:         p.Limits.MaxTitleLen,
		MaxDescLen:          p.Limits.MaxDescLen,
		UpdateDate:          now,
	}
}

func (m EventPolicyRecord) Policy() EventPolicy {
	clubs := m.EnabledByClub.Data()
	if clubs == nil {
		clubs = map[string]bool{}
	}
	return EventPolicy{
		EnabledGlobal:  m.EnabledGlobal,
		EnabledByClub:  clubs,
		ModerationMode: m.ModerationMode,
		Limits: PolicyLimits{
			MaxPerClubPerDay:    m.MaxPerClubPerDay,
			UserCooldownMinutes: m.UserCooldownMinutes,
			AllowImages:         m.AllowImages,
			MaxImageMB:          m.MaxImageMB,
			MaxTitleLen:         m.MaxTitleLen,
			MaxDescLen:          m.MaxDescLen,
		},
	}
}
