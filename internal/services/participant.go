package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	talkRepo        domain.TalkRepository
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService. Talks are resolved through talkRepo.
func NewParticipantService(participantRepo domain.ParticipantRepository, talkRepo domain.TalkRepository, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		talkRepo:        talkRepo,
		contextTimeout:  timeout,
	}
}

func (s *participantService) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, p.TalkID); err != nil {
		return err
	}
	if err := s.participantRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (s *participantService) ListParticipantsByTalk(ctx context.Context, talkID int64) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, talkID); err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListByTalkID(ctx, talkID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) ReassignParticipant(ctx context.Context, talkID, participantID int64) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := ensureTalk(ctx, s.talkRepo, talkID); err != nil {
		return nil, err
	}
	p, err := s.participantRepo.AssignTalk(ctx, participantID, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("participant %d: %w", participantID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reassign participant: %w", err)
	}
	return p, nil
}
