// Package policy owns the singleton event creation policy.
//
// Reads are fail-open: if the datastore cannot be reached the default policy
// is returned, marked Degraded. Permission checks are fail-closed: a degraded
// snapshot never enables creation and IsCreationEnabledForClub answers false
// on any error.
package policy

import (
	"context"
	"errors"
	"fmt"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var ErrInvalidPolicy = errors.New("invalid event policy")

type IPolicyRepo interface {
	// ReadPolicy returns nil, nil when no policy has been stored yet.
	ReadPolicy(ctx context.Context) (*model.EventPolicy, error)
	WritePolicy(ctx context.Context, policy model.EventPolicy) error
}

type Store struct {
	repo     IPolicyRepo
	validate *validator.Validate
	logger   *log.Logger
}

func NewStore(repo IPolicyRepo, validate *validator.Validate, logger *log.Logger) *Store {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = log.New("policy")
	}
	return &Store{
		repo:     repo,
		validate: validate,
		logger:   logger,
	}
}

// Get returns the stored policy, persisting the defaults on first access.
func (s *Store) Get(ctx context.Context) model.EventPolicy {
	p, err := s.repo.ReadPolicy(ctx)
	if err != nil {
		s.logger.Warnf("read policy failed, using defaults: %v", err)
		def := model.DefaultEventPolicy()
		def.Degraded = true
		return def
	}

	if p == nil {
		def := model.DefaultEventPolicy()
		if err := s.repo.WritePolicy(ctx, def); err != nil {
			s.logger.Warnf("persist default policy failed: %v", err)
		}
		return def
	}

	if p.EnabledByClub == nil {
		p.EnabledByClub = map[string]bool{}
	}
	return *p
}

// Set replaces the whole policy.
func (s *Store) Set(ctx context.Context, p model.EventPolicy) error {
	if err := s.Validate(p); err != nil {
		return err
	}
	if p.EnabledByClub == nil {
		p.EnabledByClub = map[string]bool{}
	}

	if err := s.repo.WritePolicy(ctx, p); err != nil {
		return &model.StorageError{Op: "write policy", Err: err}
	}

	s.logger.Infof("policy updated: enabled=%t mode=%s", p.EnabledGlobal, p.ModerationMode)
	return nil
}

func (s *Store) Validate(p model.EventPolicy) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return nil
}

func (s *Store) IsCreationEnabledForClub(ctx context.Context, clubID string) bool {
	p, err := s.repo.ReadPolicy(ctx)
	if err != nil {
		s.logger.Warnf("read policy for club %s failed, denying creation: %v", clubID, err)
		return false
	}
	if p == nil {
		def := model.DefaultEventPolicy()
		p = &def
	}

	return p.CreationEnabledForClub(clubID)
}
