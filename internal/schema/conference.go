package schema

import (
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

// CreateConferenceRequest is the request body for POST /create_conf.
// Dates use the "Jan 2 2006" layout; omitted dates default to the creation time.
type CreateConferenceRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=50"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Validate implements the HTTP Validator interface.
func (c CreateConferenceRequest) Validate() []string {
	errs := structErrors(c)
	errs = append(errs, dateError("start_date", c.StartDate, parseConferenceDate)...)
	errs = append(errs, dateError("end_date", c.EndDate, parseConferenceDate)...)
	return errs
}

// Fields converts the payload into domain fields. Omitted dates are left zero.
func (c CreateConferenceRequest) Fields() (domain.ConferenceFields, error) {
	f := domain.ConferenceFields{Title: c.Title, Description: c.Description}
	var err error
	if c.StartDate != "" {
		if f.StartDate, err = domain.ParseConferenceDate("start_date", c.StartDate); err != nil {
			return domain.ConferenceFields{}, err
		}
	}
	if c.EndDate != "" {
		if f.EndDate, err = domain.ParseConferenceDate("end_date", c.EndDate); err != nil {
			return domain.ConferenceFields{}, err
		}
	}
	return f, nil
}

// UpdateConferenceRequest is the request body for PUT /update_conf/{id}.
// Updates replace every field, so both dates are required.
type UpdateConferenceRequest CreateConferenceRequest

// Validate implements the HTTP Validator interface.
func (u UpdateConferenceRequest) Validate() []string {
	errs := CreateConferenceRequest(u).Validate()
	if u.StartDate == "" {
		errs = append(errs, "start_date is required")
	}
	if u.EndDate == "" {
		errs = append(errs, "end_date is required")
	}
	return errs
}

// Fields converts the payload into domain fields.
func (u UpdateConferenceRequest) Fields() (domain.ConferenceFields, error) {
	if u.StartDate == "" || u.EndDate == "" {
		return domain.ConferenceFields{}, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	return CreateConferenceRequest(u).Fields()
}

// ConferenceView is the serialized form of a conference.
// swagger:model ConferenceView
type ConferenceView struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// NewConferenceView serializes c.
func NewConferenceView(c *domain.Conference) ConferenceView {
	return ConferenceView{
		Title:       c.Title,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
}

// NewConferenceViews serializes cs. The result is never nil.
func NewConferenceViews(cs []*domain.Conference) []ConferenceView {
	out := make([]ConferenceView, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewConferenceView(c))
	}
	return out
}

func parseConferenceDate(field, s string) error {
	_, err := domain.ParseConferenceDate(field, s)
	return err
}
