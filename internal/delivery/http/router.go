package http

import (
	"log/slog"
	"net/http"

	_ "conferencehub/docs"
	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Conference  *controllers.ConferenceController
	Talk        *controllers.TalkController
	Speaker     *controllers.SpeakerController
	Participant *controllers.ParticipantController
	Health      *controllers.HealthController
}

// NewMux registers every application route on a new ServeMux.
func NewMux(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Conferences
	mux.HandleFunc("GET /conferences", c.Conference.ListConferences)
	mux.HandleFunc("POST /create_conf", c.Conference.CreateConference)
	mux.HandleFunc("PUT /update_conf/{id}", c.Conference.UpdateConference)

	// Talks
	mux.HandleFunc("GET /talks_from_conf/{id}", c.Talk.ListTalksFromConference)
	mux.HandleFunc("POST /create_talk", c.Talk.CreateTalk)
	mux.HandleFunc("PUT /update_talk/{id}", c.Talk.UpdateTalk)

	// Speakers
	mux.HandleFunc("POST /create_speaker", c.Speaker.CreateSpeaker)
	mux.HandleFunc("GET /speakers_from_talk/{id}", c.Speaker.ListSpeakersFromTalk)
	mux.HandleFunc("PUT /update_speaker/{talk_id}/{sp_id}", c.Speaker.ReassignSpeaker)

	// Participants
	mux.HandleFunc("POST /create_participant", c.Participant.CreateParticipant)
	mux.HandleFunc("GET /participants_from_talk/{id}", c.Participant.ListParticipantsFromTalk)
	mux.HandleFunc("PUT /update_participant/{talk_id}/{pt_id}", c.Participant.ReassignParticipant)

	// Operations
	mux.HandleFunc("GET /health", c.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewRouter wraps the route mux in the middleware chain:
// request id, logging, metrics, then CORS.
func NewRouter(logger *slog.Logger, c Controllers, allowedOrigins []string) http.Handler {
	var h http.Handler = NewMux(c)
	h = middleware.CORS(allowedOrigins, h)
	h = metrics.HTTPMiddleware(h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
