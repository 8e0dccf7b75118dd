package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewConferenceService creates a ConferenceService backed by the given repository.
func NewConferenceService(conferenceRepo domain.ConferenceRepository, timeout time.Duration) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *conferenceService) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferences, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return conferences, nil
}

// CreateConference stores a new conference. Zero start or end dates default to the creation time.
func (s *conferenceService) CreateConference(ctx context.Context, f domain.ConferenceFields) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now().UTC()
	if f.StartDate.IsZero() {
		f.StartDate = now
	}
	if f.EndDate.IsZero() {
		f.EndDate = now
	}

	c := domain.NewConference(f)
	if err := s.conferenceRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}
	return c, nil
}

// UpdateConference replaces every field of an existing conference. There is no upsert.
func (s *conferenceService) UpdateConference(ctx context.Context, id int64, f domain.ConferenceFields) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	c, err := s.conferenceRepo.Update(ctx, id, f)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("conference %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return c, nil
}
