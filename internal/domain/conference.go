package domain

import (
	"context"
	"time"
)

// Conference is a stored conference row. Talks reference it through Talk.ConferenceID.
type Conference struct {
	ID          int64
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// ConferenceFields is the full set of writable conference attributes.
// Updates replace every field; there is no partial patch.
type ConferenceFields struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// NewConference returns a new Conference with the given fields. ID is set by the repository on create.
func NewConference(f ConferenceFields) *Conference {
	return &Conference{
		Title:       f.Title,
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
	}
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, c *Conference) error
	GetByID(ctx context.Context, id int64) (*Conference, error)
	// GetByTitle returns the first conference (lowest id) with the given title.
	GetByTitle(ctx context.Context, title string) (*Conference, error)
	List(ctx context.Context) ([]*Conference, error)
	Update(ctx context.Context, id int64, f ConferenceFields) (*Conference, error)
}

// ConferenceService defines the business logic for conferences.
type ConferenceService interface {
	ListConferences(ctx context.Context) ([]*Conference, error)
	CreateConference(ctx context.Context, f ConferenceFields) (*Conference, error)
	UpdateConference(ctx context.Context, id int64, f ConferenceFields) (*Conference, error)
}
