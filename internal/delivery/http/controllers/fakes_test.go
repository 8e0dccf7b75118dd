package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// decodeEnvelope decodes the response envelope, leaving Data as raw JSON for the caller.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data, env.Error
}

// fakeConferenceService implements domain.ConferenceService with an in-memory slice.
type fakeConferenceService struct {
	conferences []*domain.Conference
	err         error
	lastFields  domain.ConferenceFields
	lastID      int64
}

func (f *fakeConferenceService) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.conferences, nil
}

func (f *fakeConferenceService) CreateConference(ctx context.Context, fields domain.ConferenceFields) (*domain.Conference, error) {
	f.lastFields = fields
	if f.err != nil {
		return nil, f.err
	}
	c := domain.NewConference(fields)
	c.ID = int64(len(f.conferences) + 1)
	f.conferences = append(f.conferences, c)
	return c, nil
}

func (f *fakeConferenceService) UpdateConference(ctx context.Context, id int64, fields domain.ConferenceFields) (*domain.Conference, error) {
	f.lastID = id
	f.lastFields = fields
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.conferences {
		if c.ID == id {
			c.Title, c.Description, c.StartDate, c.EndDate = fields.Title, fields.Description, fields.StartDate, fields.EndDate
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeTalkService implements domain.TalkService.
type fakeTalkService struct {
	talks         []*domain.Talk
	err           error
	lastConfTitle string
	lastConfID    int64
	lastID        int64
	lastFields    domain.TalkFields
}

func (f *fakeTalkService) ListTalksByConference(ctx context.Context, conferenceID int64) ([]*domain.Talk, error) {
	f.lastConfID = conferenceID
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Talk{}
	for _, t := range f.talks {
		if t.ConferenceID == conferenceID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTalkService) CreateTalk(ctx context.Context, conferenceTitle string, fields domain.TalkFields) (*domain.Talk, error) {
	f.lastConfTitle = conferenceTitle
	f.lastFields = fields
	if f.err != nil {
		return nil, f.err
	}
	fields.ConferenceID = 1
	t := domain.NewTalk(fields)
	t.ID = int64(len(f.talks) + 1)
	f.talks = append(f.talks, t)
	return t, nil
}

func (f *fakeTalkService) UpdateTalk(ctx context.Context, id int64, conferenceTitle string, fields domain.TalkFields) (*domain.Talk, error) {
	f.lastID = id
	f.lastConfTitle = conferenceTitle
	f.lastFields = fields
	if f.err != nil {
		return nil, f.err
	}
	fields.ConferenceID = 1
	t := domain.NewTalk(fields)
	t.ID = id
	return t, nil
}

// fakeSpeakerService implements domain.SpeakerService.
type fakeSpeakerService struct {
	speakers      []*domain.Speaker
	err           error
	lastTalkID    int64
	lastSpeakerID int64
}

func (f *fakeSpeakerService) CreateSpeaker(ctx context.Context, sp *domain.Speaker) error {
	if f.err != nil {
		return f.err
	}
	sp.ID = int64(len(f.speakers) + 1)
	f.speakers = append(f.speakers, sp)
	return nil
}

func (f *fakeSpeakerService) ListSpeakersByTalk(ctx context.Context, talkID int64) ([]*domain.Speaker, error) {
	f.lastTalkID = talkID
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Speaker{}
	for _, sp := range f.speakers {
		if sp.TalkID == talkID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (f *fakeSpeakerService) ReassignSpeaker(ctx context.Context, talkID, speakerID int64) (*domain.Speaker, error) {
	f.lastTalkID, f.lastSpeakerID = talkID, speakerID
	if f.err != nil {
		return nil, f.err
	}
	for _, sp := range f.speakers {
		if sp.ID == speakerID {
			sp.TalkID = talkID
			return sp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeParticipantService implements domain.ParticipantService.
type fakeParticipantService struct {
	participants      []*domain.Participant
	err               error
	lastTalkID        int64
	lastParticipantID int64
}

func (f *fakeParticipantService) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	if f.err != nil {
		return f.err
	}
	p.ID = int64(len(f.participants) + 1)
	f.participants = append(f.participants, p)
	return nil
}

func (f *fakeParticipantService) ListParticipantsByTalk(ctx context.Context, talkID int64) ([]*domain.Participant, error) {
	f.lastTalkID = talkID
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Participant{}
	for _, p := range f.participants {
		if p.TalkID == talkID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantService) ReassignParticipant(ctx context.Context, talkID, participantID int64) (*domain.Participant, error) {
	f.lastTalkID, f.lastParticipantID = talkID, participantID
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.participants {
		if p.ID == participantID {
			p.TalkID = talkID
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}
