// Package moderation creates events and moves them through their moderation
// lifecycle: pending -> approved or pending -> rejected. Approved and
// rejected are terminal.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-events-backend/cmd/campus-events/model"
	"campus-events-backend/cmd/campus-events/notify"
	"campus-events-backend/cmd/campus-events/profanity"
	"campus-events-backend/cmd/campus-events/validation"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

var ErrNoteRequired = errors.New("a moderation note is required to reject an event")

type IEventRepo interface {
	ListEventsByClub(ctx context.Context, clubID string) ([]model.Event, error)
	ListEventsByStatus(ctx context.Context, status model.EventStatus) ([]model.Event, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	InsertEvent(ctx context.Context, event model.Event) (model.Event, error)
	UpdateEventStatus(ctx context.Context, id string, from, to model.EventStatus, note *string) (bool, error)
}

type IPolicyStore interface {
	Get(ctx context.Context) model.EventPolicy
}

type IEventValidator interface {
	ValidateWithPolicy(ctx context.Context, in model.CreateEventInput, createdBy string, policy model.EventPolicy, denylist profanity.Denylist) model.ValidationResult
}

type IDenylist interface {
	Snapshot() profanity.Denylist
}

type Service struct {
	events    IEventRepo
	policies  IPolicyStore
	validator IEventValidator
	denylist  IDenylist
	reminders notify.Scheduler
	loc       *time.Location
	now       func() time.Time
	logger    *log.Logger
}

type Options struct {
	Events    IEventRepo
	Policies  IPolicyStore
	Validator IEventValidator
	Denylist  IDenylist
	Reminders notify.Scheduler
	// Location interprets zone-less event dates. Defaults to UTC.
	Location *time.Location
	Logger   *log.Logger
}

func NewService(opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = log.New("moderation")
	}
	return &Service{
		events:    opts.Events,
		policies:  opts.Policies,
		validator: opts.Validator,
		denylist:  opts.Denylist,
		reminders: opts.Reminders,
		loc:       opts.Location,
		now:       time.Now,
		logger:    opts.Logger,
	}
}

// Create validates in and stores it as a new event. When validation fails
// the result carries the errors and the returned event is nil. The initial
// status is approved when moderation is off and pending otherwise.
func (s *Service) Create(ctx context.Context, in model.CreateEventInput, who model.Identity) (*model.Event, model.ValidationResult, error) {
	policy := s.policies.Get(ctx)

	result := s.validator.ValidateWithPolicy(ctx, in, who.UserID, policy, s.denylist.Snapshot())
	if !result.OK {
		return nil, result, nil
	}

	date, ok := validation.ParseDate(strings.TrimSpace(in.DateISO), s.loc)
	if !ok {
		return nil, result, fmt.Errorf("date %q passed validation but cannot be parsed", in.DateISO)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, result, err
	}

	now := s.now()
	event := model.Event{
		ID:          id.String(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ClubID:      strings.TrimSpace(in.ClubID),
		Date:        date,
		Location:    strings.TrimSpace(in.Location),
		CreatedBy:   who.UserID,
		Status:      InitialStatus(policy),
		ImageURL:    validation.ImageRef(in),
		CreateDate:  now,
		UpdateDate:  now,
	}

	created, err := s.events.InsertEvent(ctx, event)
	if err != nil {
		return nil, result, &model.StorageError{Op: "insert event", Err: err}
	}

	s.logger.Infof("event %s created by %s for club %s with status %s", created.ID, who.UserID, created.ClubID, created.Status)
	if created.Status == model.Approved {
		s.scheduleReminder(ctx, created)
	}

	return &created, result, nil
}

// InitialStatus is the status a freshly validated event starts in.
func InitialStatus(policy model.EventPolicy) model.EventStatus {
	if policy.ModerationMode == model.ModerationOff {
		return model.Approved
	}
	return model.Pending
}

func (s *Service) Approve(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.transition(ctx, id, model.Approved, nil)
	if err != nil {
		return nil, err
	}
	s.scheduleReminder(ctx, *event)
	return event, nil
}

func (s *Service) Reject(ctx context.Context, id, note string) (*model.Event, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, ErrNoteRequired
	}
	return s.transition(ctx, id, model.Rejected, &note)
}

func (s *Service) transition(ctx context.Context, id string, to model.EventStatus, note *string) (*model.Event, error) {
	updated, err := s.events.UpdateEventStatus(ctx, id, model.Pending, to, note)
	if err != nil {
		return nil, &model.StorageError{Op: "update event status", Err: err}
	}

	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, &model.StorageError{Op: "get event", Err: err}
	}
	if event == nil {
		return nil, model.ErrNotFound
	}
	if !updated {
		return nil, fmt.Errorf("%w: %s is %s", model.ErrInvalidState, id, event.Status)
	}

	s.logger.Infof("event %s moved to %s", id, to)
	return event, nil
}

func (s *Service) scheduleReminder(ctx context.Context, event model.Event) {
	if s.reminders == nil {
		return
	}
	if err := s.reminders.ScheduleReminder(ctx, event); err != nil {
		s.logger.Warnf("schedule reminder for event %s failed: %v", event.ID, err)
	}
}

func (s *Service) Get(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, &model.StorageError{Op: "get event", Err: err}
	}
	if event == nil {
		return nil, model.ErrNotFound
	}
	return event, nil
}

func (s *Service) ListApproved(ctx context.Context) ([]model.Event, error) {
	return s.listByStatus(ctx, model.Approved)
}

func (s *Service) ListPending(ctx context.Context) ([]model.Event, error) {
	return s.listByStatus(ctx, model.Pending)
}

func (s *Service) listByStatus(ctx context.Context, status model.EventStatus) ([]model.Event, error) {
	events, err := s.events.ListEventsByStatus(ctx, status)
	if err != nil {
		return nil, &model.StorageError{Op: "list events", Err: err}
	}
	return events, nil
}

// ListByClub returns the approved events of one club.
func (s *Service) ListByClub(ctx context.Context, clubID string) ([]model.Event, error) {
	events, err := s.events.ListEventsByClub(ctx, clubID)
	if err != nil {
		return nil, &model.StorageError{Op: "list club events", Err: err}
	}

	approved := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.Status == model.Approved {
			approved = append(approved, ev)
		}
	}
	return approved, nil
}
