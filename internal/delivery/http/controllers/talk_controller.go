package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
	"conferencehub/internal/schema"
)

// TalkListSuccessResponse is the success response envelope for GET /talks_from_conf/{id} (200).
type TalkListSuccessResponse struct {
	Data  []schema.TalkView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkSuccessResponse is the success response envelope for a single talk.
type TalkSuccessResponse struct {
	Data  schema.TalkView   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TalkController struct {
	Logger  *slog.Logger
	Service domain.TalkService
}

func NewTalkController(logger *slog.Logger, svc domain.TalkService) *TalkController {
	return &TalkController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTalksFromConference godoc
// @Summary List talks of a conference
// @Tags talks
// @Produce json
// @Param id path int true "Conference ID"
// @Success 200 {object} controllers.TalkListSuccessResponse "data contains the talks"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talks_from_conf/{id} [get]
func (c *TalkController) ListTalksFromConference(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	talks, err := c.Service.ListTalksByConference(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewTalkViews(talks))
}

// CreateTalk godoc
// @Summary Create a talk
// @Description The parent conference is resolved by conf_title. date_time uses the "Jan 2 2006 3:04PM" format and defaults to the creation time.
// @Tags talks
// @Accept json
// @Produce json
// @Param talk body schema.CreateTalkRequest true "Talk data"
// @Success 201 {object} controllers.TalkSuccessResponse "data contains the created talk"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create_talk [post]
func (c *TalkController) CreateTalk(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateTalkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	talk, err := c.Service.CreateTalk(r.Context(), req.ConferenceTitle, fields)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, schema.NewTalkView(talk))
}

// UpdateTalk godoc
// @Summary Replace a talk
// @Description Overwrites every field of the talk. The talk must already exist.
// @Tags talks
// @Accept json
// @Produce json
// @Param id path int true "Talk ID"
// @Param talk body schema.UpdateTalkRequest true "Talk data"
// @Success 200 {object} controllers.TalkSuccessResponse "data contains the updated talk"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update_talk/{id} [put]
func (c *TalkController) UpdateTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req schema.UpdateTalkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	talk, err := c.Service.UpdateTalk(r.Context(), id, req.ConferenceTitle, fields)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewTalkView(talk))
}
