package repository

import (
	"context"
	"errors"
	"time"

	"campus-events-backend/cmd/campus-events/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) ListEventsByClub(ctx context.Context, clubID string) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("club_id = ?", clubID).
		Order("event_date ASC").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) ListEventsByStatus(ctx context.Context, status model.EventStatus) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("status = ?", status).
		Order("event_date ASC").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// GetEvent returns nil, nil when no event has the given id.
func (r *EventRepo) GetEvent(ctx context.Context, id string) (*model.Event, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		Take(&event)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

func (r *EventRepo) InsertEvent(ctx context.Context, event model.Event) (model.Event, error) {

	result := r.db.
		WithContext(ctx).
		Model(&event).
		Create(&event)

	if result.Error != nil {
		return model.Event{}, result.Error
	}

	return event, nil
}

// UpdateEventStatus moves an event from one status to another. It reports
// false without error when the event does not exist or is no longer in
// status from; the guard is part of the UPDATE so concurrent moderators
// cannot both succeed.
func (r *EventRepo) UpdateEventStatus(ctx context.Context, id string, from, to model.EventStatus, note *string) (bool, error) {

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":          to,
			"moderation_note": note,
			"update_date":     time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
