package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/alertpost/pkg/controller/http"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	t.Run("recover from panic", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(server.PanicRecoveryMiddleware)

		r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func newLoggedRouter(buf *bytes.Buffer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.New(buf, slog.LevelDebug, logging.FormatJSON, false)
			h.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logger)))
		})
	})
	r.Use(server.LoggingMiddleware)

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	return r
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.SetBasicAuth("everbridge", "test_password")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	gt.S(t, buf.String()).Contains(`"method":"POST"`)
	gt.S(t, buf.String()).Contains(`"path":"/"`)
	gt.S(t, buf.String()).Contains(`"status":201`)
	gt.S(t, buf.String()).NotContains("Authorization")
	gt.S(t, buf.String()).NotContains("ZXZlcmJyaWRnZTp0ZXN0X3Bhc3N3b3Jk")
	gt.V(t, w.Header().Get("X-Request-Id")).NotEqual("")
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-Id", "eb-12345")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	gt.Equal(t, w.Header().Get("X-Request-Id"), "eb-12345")
	gt.S(t, buf.String()).Contains(`"request_id":"eb-12345"`)
}
