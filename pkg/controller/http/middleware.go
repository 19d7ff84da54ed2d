package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
)

type contextKey string

const (
	configKey contextKey = "config"
)

func withConfig(ctx context.Context, cfg *setting.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFrom(ctx context.Context) (*setting.Config, bool) {
	cfg, ok := ctx.Value(configKey).(*setting.Config)
	return cfg, ok && cfg != nil
}

func credentialsFrom(r *http.Request) auth.Credentials {
	username, password, _ := r.BasicAuth()
	return auth.Credentials{
		Username: username,
		Password: password,
	}
}

// verifyCredentials rejects the request before the body is read unless the
// basic authentication credentials match the stored configuration. The
// configuration read here is kept in the request context.
func verifyCredentials(uc UseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cfg, err := uc.VerifyCredentials(r.Context(), credentialsFrom(r))
			if err != nil {
				handleAPIError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withConfig(r.Context(), cfg)))
		})
	}
}

// requireAdmin protects the admin pages with the operator credentials.
func requireAdmin(admin auth.Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Verify(credentialsFrom(r), admin); err != nil {
				logging.From(r.Context()).Warn("admin authentication failed", logging.ErrAttr(err))
				w.Header().Set("WWW-Authenticate", `Basic realm="alertpost admin", charset="UTF-8"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getDetailedStackTrace() string {
	var buf strings.Builder
	buf.WriteString("Detailed Stack Trace:\n")

	// Skip the frames of the panic recovery code
	callers := make([]uintptr, 64)
	n := runtime.Callers(3, callers)
	frames := runtime.CallersFrames(callers[:n])

	for {
		frame, more := frames.Next()
		buf.WriteString(fmt.Sprintf("  %s\n    %s:%d\n", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}

	return buf.String()
}

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicErr := goerr.New("panic recovered",
					goerr.V("panic", fmt.Sprintf("%v", err)),
					goerr.V("debug_stack", string(debug.Stack())),
					goerr.V("detailed_stack", getDetailedStackTrace()),
					goerr.V("method", r.Method),
					goerr.V("path", r.URL.Path),
				)

				handleError(w, r, panicErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
