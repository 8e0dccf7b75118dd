package domain

import "context"

// Participant is a stored participant row attached to one talk.
type Participant struct {
	ID       int64
	Username string
	Email    string
	TalkID   int64
}

// NewParticipant returns a new Participant. ID is set by the repository on create.
func NewParticipant(username, email string, talkID int64) *Participant {
	return &Participant{Username: username, Email: email, TalkID: talkID}
}

// ParticipantRepository defines the interface for participant storage.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id int64) (*Participant, error)
	ListByTalkID(ctx context.Context, talkID int64) ([]*Participant, error)
	AssignTalk(ctx context.Context, id, talkID int64) (*Participant, error)
}

// ParticipantService defines the business logic for participants.
type ParticipantService interface {
	CreateParticipant(ctx context.Context, p *Participant) error
	ListParticipantsByTalk(ctx context.Context, talkID int64) ([]*Participant, error)
	ReassignParticipant(ctx context.Context, talkID, participantID int64) (*Participant, error)
}
