// Package validation decides whether an event creation request may proceed.
//
// Every applicable error is collected. Within one field, later checks run
// only when the earlier ones on that field passed.
package validation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campus-events-backend/cmd/campus-events/model"
	"campus-events-backend/cmd/campus-events/profanity"
	"campus-events-backend/cmd/campus-events/ratelimit"

	"github.com/labstack/gommon/log"
)

const MsgUnexpected = "Unable to validate event. Please try again."

var isProfane = profanity.IsProfane

type IPolicyStore interface {
	Get(ctx context.Context) model.EventPolicy
}

type IEventHistory interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type Validator struct {
	policies IPolicyStore
	history  IEventHistory
	loc      *time.Location
	now      func() time.Time
	logger   *log.Logger
}

// NewValidator builds a validator whose calendar days and zone-less dates
// are interpreted in loc (UTC when nil).
func NewValidator(policies IPolicyStore, history IEventHistory, loc *time.Location, logger *log.Logger) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = log.New("validation")
	}
	return &Validator{
		policies: policies,
		history:  history,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

// Validate fetches the current policy and validates in against it.
func (v *Validator) Validate(ctx context.Context, in model.CreateEventInput, createdBy string, denylist profanity.Denylist) model.ValidationResult {
	return v.ValidateWithPolicy(ctx, in, createdBy, v.policies.Get(ctx), denylist)
}

func (v *Validator) ValidateWithPolicy(ctx context.Context, in model.CreateEventInput, createdBy string, policy model.EventPolicy, denylist profanity.Denylist) model.ValidationResult {
	now := v.now().In(v.loc)
	c := &collector{denylist: denylist}

	c.text("Title", in.Title, policy.Limits.MaxTitleLen, true)
	c.text("Description", in.Description, policy.Limits.MaxDescLen, true)
	c.text("Location", in.Location, 0, false)
	if c.fault != nil {
		v.logger.Errorf("profanity check failed: %v", c.fault)
		return model.ValidationResult{OK: false, Errors: []string{MsgUnexpected}}
	}

	c.date(in.DateISO, now, v.loc)

	clubID := strings.TrimSpace(in.ClubID)
	if clubID == "" {
		c.add("Club is required")
	} else if !policy.CreationEnabledForClub(clubID) {
		if policy.Degraded {
			v.logger.Warnf("policy unavailable, denying creation for club %s", clubID)
		}
		c.add("Event creation is currently disabled for this club")
	}

	c.images(in, policy.Limits)

	history, err := v.history.ListEvents(ctx)
	if err != nil {
		v.logger.Warnf("event history unavailable, skipping rate limits: %v", err)
	} else {
		c.errs = append(c.errs, ratelimit.CheckLimits(clubID, createdBy, policy, history, now)...)
	}

	return model.ValidationResult{OK: len(c.errs) == 0, Errors: c.errs}
}

type collector struct {
	denylist profanity.Denylist
	errs     []string
	fault    error
}

func (c *collector) add(msg string) {
	c.errs = append(c.errs, msg)
}

// text checks presence, length (when capped) and language of one field.
func (c *collector) text(field, value string, maxLen int, capped bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		c.add(field + " is required")
		return
	}
	if capped && utf8.RuneCountInString(value) > maxLen {
		c.add(fmt.Sprintf("%s must be %d characters or less", field, maxLen))
		return
	}

	profane, err := isProfane(value, c.denylist)
	if err != nil {
		c.fault = err
		return
	}
	if profane {
		c.add(field + " contains inappropriate language")
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (c *collector) date(value string, now time.Time, loc *time.Location) {
	value = strings.TrimSpace(value)
	if value == "" {
		c.add("Event date is required")
		return
	}

	date, ok := ParseDate(value, loc)
	if !ok {
		c.add("Invalid date format")
		return
	}
	if !date.After(now) {
		c.add("Event date must be in the future")
	}
}

// ParseDate accepts RFC 3339 timestamps and a few zone-less layouts, the
// latter interpreted in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
