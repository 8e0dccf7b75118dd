package schema

import "conferencehub/internal/domain"

// CreateSpeakerRequest is the request body for POST /create_speaker.
type CreateSpeakerRequest struct {
	Username string `json:"username" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,max=120,email"`
	TalkID   int64  `json:"talk_id" validate:"required,gt=0"`
}

// Validate implements the HTTP Validator interface.
func (c CreateSpeakerRequest) Validate() []string {
	return structErrors(c)
}

// Speaker converts the payload into a new, unsaved speaker.
func (c CreateSpeakerRequest) Speaker() *domain.Speaker {
	return domain.NewSpeaker(c.Username, c.Email, c.TalkID)
}

// CreateParticipantRequest is the request body for POST /create_participant.
type CreateParticipantRequest struct {
	Username string `json:"username" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,max=120,email"`
	TalkID   int64  `json:"talk_id" validate:"required,gt=0"`
}

// Validate implements the HTTP Validator interface.
func (c CreateParticipantRequest) Validate() []string {
	return structErrors(c)
}

// Participant converts the payload into a new, unsaved participant.
func (c CreateParticipantRequest) Participant() *domain.Participant {
	return domain.NewParticipant(c.Username, c.Email, c.TalkID)
}

// SpeakerView is the serialized form of a speaker.
// swagger:model SpeakerView
type SpeakerView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	TalkID   int64  `json:"talk_id"`
}

// NewSpeakerView serializes s.
func NewSpeakerView(s *domain.Speaker) SpeakerView {
	return SpeakerView{Username: s.Username, Email: s.Email, TalkID: s.TalkID}
}

// NewSpeakerViews serializes ss. The result is never nil.
func NewSpeakerViews(ss []*domain.Speaker) []SpeakerView {
	out := make([]SpeakerView, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewSpeakerView(s))
	}
	return out
}

// ParticipantView is the serialized form of a participant.
// swagger:model ParticipantView
type ParticipantView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	TalkID   int64  `json:"talk_id"`
}

// NewParticipantView serializes p.
func NewParticipantView(p *domain.Participant) ParticipantView {
	return ParticipantView{Username: p.Username, Email: p.Email, TalkID: p.TalkID}
}

// NewParticipantViews serializes ps. The result is never nil.
func NewParticipantViews(ps []*domain.Participant) []ParticipantView {
	out := make([]ParticipantView, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewParticipantView(p))
	}
	return out
}
