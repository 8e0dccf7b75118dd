package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type talkService struct {
	talkRepo       domain.TalkRepository
	conferenceRepo domain.ConferenceRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewTalkService creates a TalkService. Conferences are resolved through conferenceRepo.
func NewTalkService(talkRepo domain.TalkRepository, conferenceRepo domain.ConferenceRepository, timeout time.Duration) domain.TalkService {
	return &talkService{
		talkRepo:       talkRepo,
		conferenceRepo: conferenceRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *talkService) ListTalksByConference(ctx context.Context, conferenceID int64) ([]*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("conference %d: %w", conferenceID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	talks, err := s.talkRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list talks: %w", err)
	}
	return talks, nil
}

// CreateTalk resolves the conference by title and stores the talk under it.
// When no conference has that title nothing is written.
func (s *talkService) CreateTalk(ctx context.Context, conferenceTitle string, f domain.TalkFields) (*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.resolveConference(ctx, conferenceTitle)
	if err != nil {
		return nil, err
	}
	f.ConferenceID = conf.ID
	if f.DateTime.IsZero() {
		f.DateTime = s.now().UTC()
	}

	t := domain.NewTalk(f)
	if err := s.talkRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create talk: %w", err)
	}
	return t, nil
}

// UpdateTalk replaces every field of an existing talk, moving it to the conference named conferenceTitle.
func (s *talkService) UpdateTalk(ctx context.Context, id int64, conferenceTitle string, f domain.TalkFields) (*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if f.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	}
	if _, err := s.talkRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("talk %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get talk: %w", err)
	}
	conf, err := s.resolveConference(ctx, conferenceTitle)
	if err != nil {
		return nil, err
	}
	f.ConferenceID = conf.ID

	t, err := s.talkRepo.Update(ctx, id, f)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("talk %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update talk: %w", err)
	}
	return t, nil
}

func (s *talkService) resolveConference(ctx context.Context, title string) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("conference %q: %w", title, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get conference by title: %w", err)
	}
	return conf, nil
}
