package domain

import (
	"context"
	"time"
)

// Talk is a stored talk row belonging to exactly one conference.
type Talk struct {
	ID           int64
	Title        string
	Description  string
	Duration     string
	DateTime     time.Time
	ConferenceID int64
}

// TalkFields is the full set of writable talk attributes.
type TalkFields struct {
	Title        string
	Description  string
	Duration     string
	DateTime     time.Time
	ConferenceID int64
}

// NewTalk returns a new Talk with the given fields. ID is set by the repository on create.
func NewTalk(f TalkFields) *Talk {
	return &Talk{
		Title:        f.Title,
		Description:  f.Description,
		Duration:     f.Duration,
		DateTime:     f.DateTime,
		ConferenceID: f.ConferenceID,
	}
}

// TalkRepository defines the interface for talk storage.
type TalkRepository interface {
	Create(ctx context.Context, t *Talk) error
	GetByID(ctx context.Context, id int64) (*Talk, error)
	ListByConferenceID(ctx context.Context, conferenceID int64) ([]*Talk, error)
	Update(ctx context.Context, id int64, f TalkFields) (*Talk, error)
}

// TalkService defines the business logic for talks. The parent conference is
// addressed by its title; f.ConferenceID is ignored and replaced by the resolved id.
type TalkService interface {
	ListTalksByConference(ctx context.Context, conferenceID int64) ([]*Talk, error)
	CreateTalk(ctx context.Context, conferenceTitle string, f TalkFields) (*Talk, error)
	UpdateTalk(ctx context.Context, id int64, conferenceTitle string, f TalkFields) (*Talk, error)
}
