package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
	"conferencehub/internal/schema"
)

// ParticipantListSuccessResponse is the success response envelope for GET /participants_from_talk/{id} (200).
type ParticipantListSuccessResponse struct {
	Data  []schema.ParticipantView `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ParticipantSuccessResponse is the success response envelope for a single participant.
type ParticipantSuccessResponse struct {
	Data  schema.ParticipantView `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateParticipant godoc
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body schema.CreateParticipantRequest true "Participant data"
// @Success 201 {object} controllers.ParticipantSuccessResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create_participant [post]
func (c *ParticipantController) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant := req.Participant()
	if err := c.Service.CreateParticipant(r.Context(), participant); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, schema.NewParticipantView(participant))
}

// ListParticipantsFromTalk godoc
// @Summary List participants of a talk
// @Tags participants
// @Produce json
// @Param id path int true "Talk ID"
// @Success 200 {object} controllers.ParticipantListSuccessResponse "data contains the participants"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants_from_talk/{id} [get]
func (c *ParticipantController) ListParticipantsFromTalk(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	participants, err := c.Service.ListParticipantsByTalk(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewParticipantViews(participants))
}

// ReassignParticipant godoc
// @Summary Move a participant to another talk
// @Description Sets the participant's talk to talk_id. No other field changes.
// @Tags participants
// @Produce json
// @Param talk_id path int true "Target talk ID"
// @Param pt_id path int true "Participant ID"
// @Success 200 {object} controllers.ParticipantSuccessResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update_participant/{talk_id}/{pt_id} [put]
func (c *ParticipantController) ReassignParticipant(w http.ResponseWriter, r *http.Request) {
	talkID, ok := helpers.PathID(w, r, "talk_id")
	if !ok {
		return
	}
	participantID, ok := helpers.PathID(w, r, "pt_id")
	if !ok {
		return
	}
	participant, err := c.Service.ReassignParticipant(r.Context(), talkID, participantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.NewParticipantView(participant))
}
