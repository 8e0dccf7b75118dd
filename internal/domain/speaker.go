package domain

import "context"

// Speaker is a stored speaker row attached to one talk.
type Speaker struct {
	ID       int64
	Username string
	Email    string
	TalkID   int64
}

// NewSpeaker returns a new Speaker. ID is set by the repository on create.
func NewSpeaker(username, email string, talkID int64) *Speaker {
	return &Speaker{Username: username, Email: email, TalkID: talkID}
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	Create(ctx context.Context, s *Speaker) error
	GetByID(ctx context.Context, id int64) (*Speaker, error)
	ListByTalkID(ctx context.Context, talkID int64) ([]*Speaker, error)
	// AssignTalk sets talk_id on a single speaker row and returns the updated row.
	AssignTalk(ctx context.Context, id, talkID int64) (*Speaker, error)
}

// SpeakerService defines the business logic for speakers.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, s *Speaker) error
	ListSpeakersByTalk(ctx context.Context, talkID int64) ([]*Speaker, error)
	ReassignSpeaker(ctx context.Context, talkID, speakerID int64) (*Speaker, error)
}
