package ratelimit

import (
	"testing"
	"time"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/stretchr/testify/assert"
)

func policyWith(maxPerDay, cooldown int) model.EventPolicy {
	p := model.DefaultEventPolicy()
	p.Limits.MaxPerClubPerDay = maxPerDay
	p.Limits.UserCooldownMinutes = cooldown
	return p
}

func TestCheckLimits_NoHistory(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)

	violations := CheckLimits("chess", "user-1", policyWith(3, 60), nil, now)

	assert.Empty(t, violations)
}

func TestCheckLimits_DailyQuotaReached(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "chess", CreatedBy: "a", CreateDate: now.Add(-14 * time.Hour)},
		{ClubID: "chess", CreatedBy: "b", CreateDate: now.Add(-5 * time.Hour)},
		{ClubID: "chess", CreatedBy: "c", CreateDate: now.Add(-2 * time.Hour)},
	}

	violations := CheckLimits("chess", "user-1", policyWith(3, 0), history, now)

	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Maximum 3 events per club per day allowed")
}

func TestCheckLimits_DailyQuotaIgnoresOtherDaysAndClubs(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "chess", CreatedBy: "a", CreateDate: time.Date(2030, 3, 9, 23, 59, 59, 0, time.UTC)},
		{ClubID: "chess", CreatedBy: "b", CreateDate: time.Date(2030, 3, 11, 0, 0, 0, 0, time.UTC)},
		{ClubID: "drama", CreatedBy: "c", CreateDate: now.Add(-time.Hour)},
		{ClubID: "chess", CreatedBy: "d", CreateDate: time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	violations := CheckLimits("chess", "user-1", policyWith(2, 0), history, now)

	assert.Empty(t, violations)
}

func TestCheckLimits_ZeroQuotaBlocksEverything(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)

	violations := CheckLimits("chess", "user-1", policyWith(0, 0), nil, now)

	assert.Equal(t, []string{"Maximum 0 events per club per day allowed"}, violations)
}

func TestCheckLimits_UserCooldown(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "drama", CreatedBy: "user-1", CreateDate: now.Add(-3 * time.Hour)},
		{ClubID: "drama", CreatedBy: "user-1", CreateDate: now.Add(-30 * time.Minute)},
		{ClubID: "drama", CreatedBy: "user-2", CreateDate: now.Add(-time.Minute)},
	}

	violations := CheckLimits("chess", "user-1", policyWith(10, 60), history, now)

	assert.Equal(t, []string{"Please wait 30 more minutes before creating another event"}, violations)
}

func TestCheckLimits_UserCooldownRoundsUp(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "drama", CreatedBy: "user-1", CreateDate: now.Add(-(29*time.Minute + 30*time.Second))},
	}

	violations := CheckLimits("chess", "user-1", policyWith(10, 60), history, now)

	assert.Equal(t, []string{"Please wait 31 more minutes before creating another event"}, violations)
}

func TestCheckLimits_UserCooldownElapsed(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "drama", CreatedBy: "user-1", CreateDate: now.Add(-60 * time.Minute)},
	}

	violations := CheckLimits("chess", "user-1", policyWith(10, 60), history, now)

	assert.Empty(t, violations)
}

func TestCheckLimits_BothViolations(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 0, 0, 0, time.UTC)
	history := []model.Event{
		{ClubID: "chess", CreatedBy: "user-1", CreateDate: now.Add(-10 * time.Minute)},
	}

	violations := CheckLimits("chess", "user-1", policyWith(1, 30), history, now)

	assert.Equal(t, []string{
		"Maximum 1 events per club per day allowed",
		"Please wait 20 more minutes before creating another event",
	}, violations)
}

func TestStartOfDay_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2030, 3, 10, 1, 0, 0, 0, loc)

	start := StartOfDay(now)

	assert.Equal(t, time.Date(2030, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2030, 3, 9, 15, 0, 0, 0, time.UTC), start.UTC())
}
