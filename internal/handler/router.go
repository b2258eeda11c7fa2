package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Campaigns   *CampaignHandler
	Comments    *CommentHandler
	Attachments *AttachmentHandler
	History     *HistoryHandler
	Lookups     *LookupHandler
	Profile     *ProfileHandler
}

// NewRouter wires all routes onto a chi router.
func NewRouter(h Handlers, log zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", healthCheck)

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.Campaigns.List)
		r.Post("/", h.Campaigns.Create)
		r.Get("/timeline", h.Campaigns.Timeline)
		r.Get("/calendar", h.Campaigns.Calendar)
		r.Get("/slug/{slug}", h.Campaigns.GetBySlug)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Campaigns.Get)
			r.Put("/", h.Campaigns.Update)
			r.Delete("/", h.Campaigns.Delete)
			r.Put("/status", h.Campaigns.UpdateStatus)
			r.Post("/duplicate", h.Campaigns.Duplicate)

			r.Get("/comments", h.Comments.ListForCampaign)
			r.Post("/comments", h.Comments.Create)

			r.Get("/attachments", h.Attachments.ListForCampaign)
			r.Post("/attachments", h.Attachments.Upload)

			r.Get("/history", h.History.ListForCampaign)
		})
	})

	r.Route("/comments/{id}", func(r chi.Router) {
		r.Put("/", h.Comments.Update)
		r.Post("/important", h.Comments.ToggleImportant)
		r.Delete("/", h.Comments.Delete)
	})

	r.Route("/attachments/{id}", func(r chi.Router) {
		r.Put("/", h.Attachments.Rename)
		r.Delete("/", h.Attachments.Delete)
	})

	r.Get("/tags", h.Lookups.ListTags)
	r.Get("/institutions", h.Lookups.ListInstitutions)
	r.Get("/positions", h.Lookups.ListPositions)

	r.Get("/auth/profile", h.Profile.Get)
	r.Put("/auth/profile", h.Profile.Update)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "campaigns-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("Request handled")
		})
	}
}
