package model

import "time"

type EventStatus string

var (
	Pending  EventStatus = "pending"
	Approved EventStatus = "approved"
	Rejected EventStatus = "rejected"
)

// Terminal reports whether no further moderation transition is allowed.
func (s EventStatus) Terminal() bool {
	return s == Approved || s == Rejected
}

type Event struct {
	ID             string      `gorm:"column:id" json:"id"`
	Title          string      `gorm:"column:title" json:"title"`
	Description    string      `gorm:"column:description" json:"description"`
	ClubID         string      `gorm:"column:club_id" json:"club_id"`
	Date           time.Time   `gorm:"column:event_date" json:"date_iso"`
	Location       string      `gorm:"column:location" json:"location"`
	CreatedBy      string      `gorm:"column:created_by" json:"created_by"`
	Status         EventStatus `gorm:"column:status" json:"status"`
	ModerationNote *string     `gorm:"column:moderation_note" json:"moderation_note,omitempty"`
	ImageURL       *string     `gorm:"column:image_url" json:"image_url,omitempty"`
	CreateDate     time.Time   `gorm:"column:create_date" json:"create_date"`
	UpdateDate     time.Time   `gorm:"column:update_date" json:"update_date"`
}

func (m *Event) TableName() string {
	return "events"
}

// CreateEventInput is the request-scoped payload of a creation attempt.
// Image, when set, is a base64 data URI checked against the image limits.
// ImageURL links an already uploaded image; both obey the image switch.
type CreateEventInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ClubID      string  `json:"club_id"`
	DateISO     string  `json:"date_iso"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Identity is the authenticated caller as supplied by the identity provider.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

type ValidationResult struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}
