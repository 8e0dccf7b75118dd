package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
	"conferencehub/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTalkController_CreateTalk(t *testing.T) {
	t.Run("created with resolved conference", func(t *testing.T) {
		svc := &fakeTalkService{}
		ctrl := NewTalkController(testLogger, svc)
		body := `{"title":"Async IO","description":"event loops","duration":"30m","date_time":"Jan 02 2025 09:30AM","conf_title":"PyCon"}`
		rr := httptest.NewRecorder()
		ctrl.CreateTalk(rr, httptest.NewRequest(http.MethodPost, "/create_talk", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusCreated, rr.Code)
		data, apiErr := decodeEnvelope(t, rr)
		require.Nil(t, apiErr)
		var view schema.TalkView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, "Async IO", view.Title)
		assert.Equal(t, "30m", view.Duration)
		assert.Equal(t, int64(1), view.ConferenceID)
		assert.Equal(t, time.Date(2025, time.January, 2, 9, 30, 0, 0, time.UTC), view.DateTime)
		assert.Equal(t, "PyCon", svc.lastConfTitle)
	})

	t.Run("lowercase meridiem accepted", func(t *testing.T) {
		svc := &fakeTalkService{}
		ctrl := NewTalkController(testLogger, svc)
		body := `{"title":"Async IO","description":"event loops","duration":"30m","date_time":"Jan 02 2025 02:15pm","conf_title":"PyCon"}`
		rr := httptest.NewRecorder()
		ctrl.CreateTalk(rr, httptest.NewRequest(http.MethodPost, "/create_talk", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusCreated, rr.Code)
		data, apiErr := decodeEnvelope(t, rr)
		require.Nil(t, apiErr)
		var view schema.TalkView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, time.Date(2025, time.January, 2, 14, 15, 0, 0, time.UTC), view.DateTime)
	})

	t.Run("unknown conference title is 404", func(t *testing.T) {
		svc := &fakeTalkService{err: fmt.Errorf("conference %q: %w", "Nope", domain.ErrNotFound)}
		ctrl := NewTalkController(testLogger, svc)
		body := `{"title":"Async IO","description":"event loops","duration":"30m","conf_title":"Nope"}`
		rr := httptest.NewRecorder()
		ctrl.CreateTalk(rr, httptest.NewRequest(http.MethodPost, "/create_talk", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusNotFound, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeNotFound, apiErr.Code)
	})

	t.Run("malformed date_time is 400", func(t *testing.T) {
		svc := &fakeTalkService{}
		ctrl := NewTalkController(testLogger, svc)
		body := `{"title":"Async IO","description":"event loops","duration":"30m","date_time":"2025-01-02T09:30","conf_title":"PyCon"}`
		rr := httptest.NewRecorder()
		ctrl.CreateTalk(rr, httptest.NewRequest(http.MethodPost, "/create_talk", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.talks)
		assert.Empty(t, svc.lastConfTitle, "service must not be called")
	})
}

func TestTalkController_ListTalksFromConference(t *testing.T) {
	svc := &fakeTalkService{talks: []*domain.Talk{
		{ID: 1, Title: "A", ConferenceID: 1},
		{ID: 2, Title: "B", ConferenceID: 2},
		{ID: 3, Title: "C", ConferenceID: 1},
	}}
	ctrl := NewTalkController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "/talks_from_conf/1", nil)
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	ctrl.ListTalksFromConference(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	data, apiErr := decodeEnvelope(t, rr)
	require.Nil(t, apiErr)
	var views []schema.TalkView
	require.NoError(t, json.Unmarshal(data, &views))
	require.Len(t, views, 2)
	assert.Equal(t, "A", views[0].Title)
	assert.Equal(t, "C", views[1].Title)
	assert.Equal(t, int64(1), svc.lastConfID)
}

func TestTalkController_UpdateTalk(t *testing.T) {
	full := `{"title":"Async IO","description":"event loops","duration":"45m","date_time":"Feb 10 2025 02:15PM","conf_title":"PyCon"}`

	tests := []struct {
		name       string
		id         string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"replaces fields", "3", full, nil, http.StatusOK},
		{"unknown talk", "3", full, fmt.Errorf("talk 3: %w", domain.ErrNotFound), http.StatusNotFound},
		{"missing date_time", "3", `{"title":"Async IO","description":"event loops","duration":"45m","conf_title":"PyCon"}`, nil, http.StatusBadRequest},
		{"zero id", "0", full, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTalkService{err: tt.svcErr}
			ctrl := NewTalkController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPut, "/update_talk/"+tt.id, bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()
			ctrl.UpdateTalk(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			data, _ := decodeEnvelope(t, rr)
			var view schema.TalkView
			require.NoError(t, json.Unmarshal(data, &view))
			assert.Equal(t, "45m", view.Duration)
			assert.Equal(t, time.Date(2025, time.February, 10, 14, 15, 0, 0, time.UTC), view.DateTime)
			assert.Equal(t, int64(3), svc.lastID)
		})
	}
}
