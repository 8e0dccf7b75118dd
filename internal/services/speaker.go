package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	talkRepo       domain.TalkRepository
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService. Talks are resolved through talkRepo.
func NewSpeakerService(speakerRepo domain.SpeakerRepository, talkRepo domain.TalkRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		talkRepo:       talkRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, sp *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, sp.TalkID); err != nil {
		return err
	}
	if err := s.speakerRepo.Create(ctx, sp); err != nil {
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) ListSpeakersByTalk(ctx context.Context, talkID int64) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, talkID); err != nil {
		return nil, err
	}
	speakers, err := s.speakerRepo.ListByTalkID(ctx, talkID)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}

// ReassignSpeaker moves one speaker to talkID. No other speaker row is touched.
func (s *speakerService) ReassignSpeaker(ctx context.Context, talkID, speakerID int64) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, talkID); err != nil {
		return nil, err
	}
	sp, err := s.speakerRepo.AssignTalk(ctx, speakerID, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("speaker %d: %w", speakerID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reassign speaker: %w", err)
	}
	return sp, nil
}

// ensureTalk returns a wrapped domain.ErrNotFound when talkID does not exist.
func ensureTalk(ctx context.Context, talkRepo domain.TalkRepository, talkID int64) error {
	if _, err := talkRepo.GetByID(ctx, talkID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("talk %d: %w", talkID, domain.ErrNotFound)
		}
		return fmt.Errorf("get talk: %w", err)
	}
	return nil
}
