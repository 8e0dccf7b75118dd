package schema

import (
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

// CreateTalkRequest is the request body for POST /create_talk. The parent
// conference is addressed by title. date_time uses the "Jan 2 2006 3:04PM"
// layout and defaults to the creation time when omitted.
type CreateTalkRequest struct {
	Title           string `json:"title" validate:"required,max=120"`
	Description     string `json:"description" validate:"required,max=120"`
	Duration        string `json:"duration" validate:"required,max=120"`
	DateTime        string `json:"date_time"`
	ConferenceTitle string `json:"conf_title" validate:"required,max=50"`
}

// Validate implements the HTTP Validator interface.
func (c CreateTalkRequest) Validate() []string {
	errs := structErrors(c)
	return append(errs, dateError("date_time", c.DateTime, parseTalkDateTime)...)
}

// Fields converts the payload into domain fields. ConferenceID is resolved by the service.
func (c CreateTalkRequest) Fields() (domain.TalkFields, error) {
	f := domain.TalkFields{Title: c.Title, Description: c.Description, Duration: c.Duration}
	if c.DateTime != "" {
		at, err := domain.ParseTalkDateTime("date_time", c.DateTime)
		if err != nil {
			return domain.TalkFields{}, err
		}
		f.DateTime = at
	}
	return f, nil
}

// UpdateTalkRequest is the request body for PUT /update_talk/{id}. Every field is required.
type UpdateTalkRequest CreateTalkRequest

// Validate implements the HTTP Validator interface.
func (u UpdateTalkRequest) Validate() []string {
	errs := CreateTalkRequest(u).Validate()
	if u.DateTime == "" {
		errs = append(errs, "date_time is required")
	}
	return errs
}

// Fields converts the payload into domain fields.
func (u UpdateTalkRequest) Fields() (domain.TalkFields, error) {
	if u.DateTime == "" {
		return domain.TalkFields{}, fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	}
	return CreateTalkRequest(u).Fields()
}

// TalkView is the serialized form of a talk. It exposes the stored columns
// (duration, date_time) rather than conference-style start/end dates.
// swagger:model TalkView
type TalkView struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	DateTime     time.Time `json:"date_time"`
	ConferenceID int64     `json:"conference_id"`
}

// NewTalkView serializes t.
func NewTalkView(t *domain.Talk) TalkView {
	return TalkView{
		Title:        t.Title,
		Description:  t.Description,
		Duration:     t.Duration,
		DateTime:     t.DateTime,
		ConferenceID: t.ConferenceID,
	}
}

// NewTalkViews serializes ts. The result is never nil.
func NewTalkViews(ts []*domain.Talk) []TalkView {
	out := make([]TalkView, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTalkView(t))
	}
	return out
}

func parseTalkDateTime(field, s string) error {
	_, err := domain.ParseTalkDateTime(field, s)
	return err
}
