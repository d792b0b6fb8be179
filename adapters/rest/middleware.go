package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RINKESH2497/todo-app-fullstack/auth"
	"github.com/RINKESH2497/todo-app-fullstack/core"
	"github.com/RINKESH2497/todo-app-fullstack/pkg/res"
)

type ctxKey int

const userKey ctxKey = iota

// UserFrom returns the authenticated user attached by RequireAuth.
func UserFrom(ctx context.Context) (core.User, bool) {
	u, ok := ctx.Value(userKey).(core.User)
	return u, ok
}

// RequireAuth verifies the bearer token and resolves it to a live user
// before the wrapped handler runs. Missing, malformed, expired tokens and
// vanished users all yield 401.
func RequireAuth(log *slog.Logger, tokens *auth.Tokens, users *core.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			rawToken, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || rawToken == "" {
				res.Error(w, "not authorized, no token provided", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(rawToken)
			if err != nil {
				WriteErr(w, err)
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				log.Debug("token user not resolvable", "user_id", userID, "error", err)
				res.Error(w, "not authorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// LogRequests logs one line per request with a generated request id.
func LogRequests(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.Info("request",
				"id", uuid.NewString(),
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start))
		})
	}
}
