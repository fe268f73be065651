// Package ratelimit enforces the per-club daily quota and the per-user
// cooldown against previously created events.
//
// Checks are read-then-decide with no locking: two concurrent creations for
// the same club can both pass and exceed the quota by one. This is accepted
// for an abuse deterrent.
package ratelimit

import (
	"fmt"
	"math"
	"time"

	"campus-events-backend/cmd/campus-events/model"
)

// CheckLimits returns one message per violated limit, or nil. The calendar
// day for the quota is the one containing now, in now's location.
func CheckLimits(clubID, createdBy string, policy model.EventPolicy, history []model.Event, now time.Time) []string {
	var violations []string

	if msg, ok := checkClubQuota(clubID, policy.Limits.MaxPerClubPerDay, history, now); !ok {
		violations = append(violations, msg)
	}
	if msg, ok := checkUserCooldown(createdBy, policy.Limits.UserCooldownMinutes, history, now); !ok {
		violations = append(violations, msg)
	}

	return violations
}

func checkClubQuota(clubID string, max int, history []model.Event, now time.Time) (string, bool) {
	start := StartOfDay(now)
	end := start.AddDate(0, 0, 1)

	count := 0
	for _, ev := range history {
		if ev.ClubID != clubID {
			continue
		}
		if !ev.CreateDate.Before(start) && ev.CreateDate.Before(end) {
			count++
		}
	}

	if count >= max {
		return fmt.Sprintf("Maximum %d events per club per day allowed", max), false
	}
	return "", true
}

func checkUserCooldown(createdBy string, cooldownMinutes int, history []model.Event, now time.Time) (string, bool) {
	if cooldownMinutes <= 0 {
		return "", true
	}

	var latest time.Time
	found := false
	for _, ev := range history {
		if ev.CreatedBy != createdBy {
			continue
		}
		if !found || ev.CreateDate.After(latest) {
			latest = ev.CreateDate
			found = true
		}
	}
	if !found {
		return "", true
	}

	cooldown := time.Duration(cooldownMinutes) * time.Minute
	elapsed := now.Sub(latest)
	if elapsed >= cooldown {
		return "", true
	}

	remaining := int(math.Ceil(float64((cooldown - elapsed).Milliseconds()) / 60000))
	return fmt.Sprintf("Please wait %d more minutes before creating another event", remaining), false
}

// StartOfDay returns local midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
