package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
)

// APIRoot is the path prefix of the notification API.
const APIRoot = "/everbridge/v1"

// NotificationPath is the path the notification service posts alerts to.
const NotificationPath = APIRoot + "/notification"

type Server struct {
	router  *chi.Mux
	admin   *auth.Credentials // nil disables the admin surface
	baseURL string            // shown on the settings page
}

type Options func(*Server)

// WithAdminCredentials enables the settings pages protected by the credentials.
func WithAdminCredentials(cred *auth.Credentials) Options {
	return func(s *Server) {
		s.admin = cred
	}
}

func WithBaseURL(baseURL string) Options {
	return func(s *Server) {
		s.baseURL = baseURL
	}
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Route(APIRoot, func(r chi.Router) {
		r.Use(verifyCredentials(uc))
		// Accept every creatable method as the notification service may use any of them.
		r.Post("/notification", notificationHandler(uc))
		r.Put("/notification", notificationHandler(uc))
		r.Patch("/notification", notificationHandler(uc))
	})

	if s.admin != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin(*s.admin))
			r.Use(http.NewCrossOriginProtection().Handler)
			r.Get("/settings", settingsPageHandler(uc, s.baseURL+NotificationPath))
			r.Post("/settings", settingsSaveHandler(uc))
		})
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
