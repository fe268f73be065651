package repository

import (
	"context"
	"errors"
	"time"

	"campus-events-backend/cmd/campus-events/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PolicyRepo struct {
	db *gorm.DB
}

func NewPolicyRepo(db *gorm.DB) *PolicyRepo {
	return &PolicyRepo{
		db: db,
	}
}

// ReadPolicy returns nil, nil when the singleton row does not exist yet.
func (r *PolicyRepo) ReadPolicy(ctx context.Context) (*model.EventPolicy, error) {

	var record model.EventPolicyRecord

	result := r.db.
		WithContext(ctx).
		Where("id = ?", model.PolicyKey).
		Take(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	p := record.Policy()
	return &p, nil
}

func (r *PolicyRepo) WritePolicy(ctx context.Context, policy model.EventPolicy) error {

	record := model.NewEventPolicyRecord(policy, time.Now())

	result := r.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&record)

	return result.Error
}
