package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
	"conferencehub/internal/schema"
)

// ConferenceListSuccessResponse is the success response envelope for GET /conferences (200).
type ConferenceListSuccessResponse struct {
	Data  []schema.ConferenceView `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ConferenceSuccessResponse is the success response envelope for a single conference.
type ConferenceSuccessResponse struct {
	Data  schema.ConferenceView `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// ListConferences godoc
// @Summary List conferences
// @Description Returns every conference in insertion order.
// @Tags conferences
// @Produce json
// @Success 200 {object} controllers.ConferenceListSuccessResponse "data contains the conferences"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [get]
func (c *ConferenceController) ListConferences(w http.ResponseWriter, r *http.Request) {
	conferences, err := c.Service.ListConferences(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewConferenceViews(conferences))
}

// CreateConference godoc
// @Summary Create a conference
// @Description Dates use the "Jan 2 2006" format (e.g. "Oct 17 2025"). Omitted dates default to the creation time.
// @Tags conferences
// @Accept json
// @Produce json
// @Param conference body schema.CreateConferenceRequest true "Conference data"
// @Success 201 {object} controllers.ConferenceSuccessResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create_conf [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	conference, err := c.Service.CreateConference(r.Context(), fields)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, schema.NewConferenceView(conference))
}

// UpdateConference godoc
// @Summary Replace a conference
// @Description Overwrites every field of the conference. All fields are required.
// @Tags conferences
// @Accept json
// @Produce json
// @Param id path int true "Conference ID"
// @Param conference body schema.UpdateConferenceRequest true "Conference data"
// @Success 200 {object} controllers.ConferenceSuccessResponse "data contains the updated conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update_conf/{id} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req schema.UpdateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	conference, err := c.Service.UpdateConference(r.Context(), id, fields)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewConferenceView(conference))
}
