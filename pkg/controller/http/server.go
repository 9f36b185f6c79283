package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bussola-app/bussola/pkg/usecase"
)

// defaultMaxUploadSize caps a multipart upload
const defaultMaxUploadSize = 32 << 20

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	loc           *time.Location
	maxUploadSize int64
}

type Options func(*Server)

// WithLocation sets the zone of the wall-clock timestamps exchanged with clients
func WithLocation(loc *time.Location) Options {
	return func(s *Server) {
		s.loc = loc
	}
}

func WithMaxUploadSize(n int64) Options {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadSize = n
		}
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		uc:            uc,
		loc:           time.Local,
		maxUploadSize: defaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.getCatalog)
		r.Get("/shortcuts", s.getShortcuts)

		r.Post("/intents", s.postIntent)

		r.Route("/actions", func(r chi.Router) {
			r.Get("/", s.listActions)
			r.Post("/", s.createAction)
			r.Get("/dashboard", s.getDashboard)
			r.Get("/calendar", s.getCalendar)
			r.Get("/kanban", s.getKanban)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getAction)
				r.Patch("/", s.patchAction)
				r.Delete("/", s.archiveAction)
				r.Post("/recover", s.recoverAction)
				r.Delete("/permanent", s.destroyAction)
				r.Post("/duplicate", s.duplicateAction)
				r.Post("/shortcut", s.applyShortcut)
				r.Post("/move", s.moveAction)
				r.Put("/sprint", s.setSprint)
				r.Delete("/sprint", s.unsetSprint)
				r.Delete("/partners/{partner}", s.removePartner)
				r.Delete("/responsibles/{user}", s.removeResponsible)
				r.Get("/datetime", s.getDatetime)
				r.Post("/caption", s.postCaption)
			})
		})

		r.Get("/topics", s.listTopics)
		r.Post("/topics", s.createTopic)
		r.Post("/uploads", s.upload)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
