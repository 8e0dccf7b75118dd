package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
	"conferencehub/internal/schema"
)

// SpeakerListSuccessResponse is the success response envelope for GET /speakers_from_talk/{id} (200).
type SpeakerListSuccessResponse struct {
	Data  []schema.SpeakerView `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SpeakerSuccessResponse is the success response envelope for a single speaker.
type SpeakerSuccessResponse struct {
	Data  schema.SpeakerView `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Param speaker body schema.CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create_speaker [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker := req.Speaker()
	if err := c.Service.CreateSpeaker(r.Context(), speaker); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, schema.NewSpeakerView(speaker))
}

// ListSpeakersFromTalk godoc
// @Summary List speakers of a talk
// @Tags speakers
// @Produce json
// @Param id path int true "Talk ID"
// @Success 200 {object} controllers.SpeakerListSuccessResponse "data contains the speakers"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers_from_talk/{id} [get]
func (c *SpeakerController) ListSpeakersFromTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	speakers, err := c.Service.ListSpeakersByTalk(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewSpeakerViews(speakers))
}

// ReassignSpeaker godoc
// @Summary Move a speaker to another talk
// @Description Sets the speaker's talk to talk_id. No other field changes.
// @Tags speakers
// @Produce json
// @Param talk_id path int true "Target talk ID"
// @Param sp_id path int true "Speaker ID"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update_speaker/{talk_id}/{sp_id} [put]
func (c *SpeakerController) ReassignSpeaker(w http.ResponseWriter, r *http.Request) {
	talkID, ok := helpers.PathID(w, r, "talk_id")
	if !ok {
		return
	}
	speakerID, ok := helpers.PathID(w, r, "sp_id")
	if !ok {
		return
	}
	speaker, err := c.Service.ReassignSpeaker(r.Context(), talkID, speakerID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewSpeakerView(speaker))
}
