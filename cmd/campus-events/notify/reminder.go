// Package notify schedules event reminders. Delivery itself belongs to the
// notification service; this side only records what should be sent and when.
package notify

import (
	"context"
	"sync"
	"time"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/labstack/gommon/log"
)

const DefaultLead = time.Hour

type Reminder struct {
	EventID  string
	ClubID   string
	Title    string
	RemindAt time.Time
}

// Scheduler registers a reminder for an approved event.
type Scheduler interface {
	ScheduleReminder(ctx context.Context, event model.Event) error
}

// NewReminder places the reminder lead before the event start, or at now
// when that moment has already passed.
func NewReminder(event model.Event, lead time.Duration, now time.Time) Reminder {
	at := event.Date.Add(-lead)
	if at.Before(now) {
		at = now
	}
	return Reminder{
		EventID:  event.ID,
		ClubID:   event.ClubID,
		Title:    event.Title,
		RemindAt: at,
	}
}

// LogScheduler writes reminders to the log for the notification worker to pick up.
type LogScheduler struct {
	lead   time.Duration
	logger *log.Logger
}

func NewLogScheduler(lead time.Duration, logger *log.Logger) *LogScheduler {
	if lead <= 0 {
		lead = DefaultLead
	}
	if logger == nil {
		logger = log.New("notify")
	}
	return &LogScheduler{lead: lead, logger: logger}
}

func (s *LogScheduler) ScheduleReminder(ctx context.Context, event model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r := NewReminder(event, s.lead, time.Now())
	s.logger.Infoj(log.JSON{
		"msg":       "reminder scheduled",
		"event_id":  r.EventID,
		"club_id":   r.ClubID,
		"title":     r.Title,
		"remind_at": r.RemindAt.Format(time.RFC3339),
	})
	return nil
}

// MemoryScheduler keeps reminders in memory.
type MemoryScheduler struct {
	mu        sync.Mutex
	lead      time.Duration
	reminders []Reminder
}

func NewMemoryScheduler(lead time.Duration) *MemoryScheduler {
	if lead <= 0 {
		lead = DefaultLead
	}
	return &MemoryScheduler{lead: lead}
}

func (m *MemoryScheduler) ScheduleReminder(_ context.Context, event model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append(m.reminders, NewReminder(event, m.lead, time.Now()))
	return nil
}

// Reminders returns a copy of the reminders scheduled so far.
func (m *MemoryScheduler) Reminders() []Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Reminder, len(m.reminders))
	copy(out, m.reminders)
	return out
}
