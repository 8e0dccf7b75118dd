package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferencehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type talkFixture struct {
	confRepo *fakeConferenceRepo
	talkRepo *fakeTalkRepo
	svc      *talkService
	now      time.Time
}

func newTalkFixture(t *testing.T, titles ...string) *talkFixture {
	t.Helper()
	f := &talkFixture{
		confRepo: newFakeConferenceRepo(),
		talkRepo: newFakeTalkRepo(),
		now:      time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
	}
	for _, title := range titles {
		require.NoError(t, f.confRepo.Create(context.Background(), &domain.Conference{Title: title, Description: "d"}))
	}
	f.svc = NewTalkService(f.talkRepo, f.confRepo, 5*time.Second).(*talkService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestTalkService_CreateTalk(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		confTitle string
		fields    domain.TalkFields
		wantConf  int64
		wantTime  *time.Time
		wantErr   error
	}{
		{
			name:      "resolves conference by title",
			confTitle: "GopherCon",
			fields:    domain.TalkFields{Title: "Generics", Description: "Deep dive", Duration: "45m", DateTime: at},
			wantConf:  2,
			wantTime:  &at,
		},
		{
			name:      "ignores caller supplied conference id",
			confTitle: "PyCon",
			fields:    domain.TalkFields{Title: "Typing", Description: "d", Duration: "30m", DateTime: at, ConferenceID: 2},
			wantConf:  1,
		},
		{
			name:      "defaults date_time to now",
			confTitle: "PyCon",
			fields:    domain.TalkFields{Title: "Typing", Description: "d", Duration: "30m"},
			wantConf:  1,
		},
		{
			name:      "unknown conference title",
			confTitle: "RustConf",
			fields:    domain.TalkFields{Title: "Borrowck", Description: "d", Duration: "30m", DateTime: at},
			wantErr:   domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTalkFixture(t, "PyCon", "GopherCon")
			got, err := f.svc.CreateTalk(ctx, tt.confTitle, tt.fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.confTitle)
				assert.Zero(t, f.talkRepo.creates, "no talk row may be written")
				assert.Empty(t, f.talkRepo.byID)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.wantConf, got.ConferenceID)
			if tt.wantTime != nil {
				assert.Equal(t, *tt.wantTime, got.DateTime)
			} else if tt.fields.DateTime.IsZero() {
				assert.Equal(t, f.now, got.DateTime)
			}
		})
	}
}

func TestTalkService_CreateTalkDuplicateTitlesUseFirst(t *testing.T) {
	f := newTalkFixture(t, "PyCon", "PyCon")
	got, err := f.svc.CreateTalk(context.Background(), "PyCon", domain.TalkFields{Title: "t", Description: "d", Duration: "1h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ConferenceID)
}

func TestTalkService_UpdateTalk(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int64
		confTitle string
		fields    domain.TalkFields
		wantErr   error
	}{
		{
			name:      "moves talk to another conference",
			id:        1,
			confTitle: "GopherCon",
			fields:    domain.TalkFields{Title: "Generics II", Description: "More", Duration: "50m", DateTime: at},
		},
		{
			name:      "talk does not exist",
			id:        42,
			confTitle: "GopherCon",
			fields:    domain.TalkFields{Title: "x", Description: "y", Duration: "z", DateTime: at},
			wantErr:   domain.ErrNotFound,
		},
		{
			name:      "conference does not exist",
			id:        1,
			confTitle: "Nope",
			fields:    domain.TalkFields{Title: "x", Description: "y", Duration: "z", DateTime: at},
			wantErr:   domain.ErrNotFound,
		},
		{
			name:      "date_time required",
			id:        1,
			confTitle: "GopherCon",
			fields:    domain.TalkFields{Title: "x", Description: "y", Duration: "z"},
			wantErr:   domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTalkFixture(t, "PyCon", "GopherCon")
			original, err := f.svc.CreateTalk(ctx, "PyCon", domain.TalkFields{Title: "Generics", Description: "Deep dive", Duration: "45m"})
			require.NoError(t, err)

			got, err := f.svc.UpdateTalk(ctx, tt.id, tt.confTitle, tt.fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				stored := f.talkRepo.byID[original.ID]
				assert.Equal(t, *original, stored, "failed update must not modify the row")
				assert.Len(t, f.talkRepo.byID, 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, int64(2), got.ConferenceID)
			assert.Equal(t, "Generics II", got.Title)
			assert.Equal(t, "50m", got.Duration)
			assert.Equal(t, at, got.DateTime)
		})
	}
}

func TestTalkService_ListTalksByConference(t *testing.T) {
	ctx := context.Background()
	f := newTalkFixture(t, "PyCon", "GopherCon")
	for _, tc := range []struct{ title, conf string }{{"a", "PyCon"}, {"b", "GopherCon"}, {"c", "PyCon"}} {
		_, err := f.svc.CreateTalk(ctx, tc.conf, domain.TalkFields{Title: tc.title, Description: "d", Duration: "1h"})
		require.NoError(t, err)
	}

	talks, err := f.svc.ListTalksByConference(ctx, 1)
	require.NoError(t, err)
	require.Len(t, talks, 2)
	for _, talk := range talks {
		assert.Equal(t, int64(1), talk.ConferenceID)
	}
	assert.Equal(t, "a", talks[0].Title)
	assert.Equal(t, "c", talks[1].Title)

	_, err = f.svc.ListTalksByConference(ctx, 9)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTalkService_ListTalksRepoError(t *testing.T) {
	f := newTalkFixture(t, "PyCon")
	f.talkRepo.err = errors.New("db down")
	_, err := f.svc.ListTalksByConference(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
