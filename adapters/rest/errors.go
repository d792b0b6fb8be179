package rest

import (
	"errors"
	"net/http"

	"github.com/RINKESH2497/todo-app-fullstack/core"
	"github.com/RINKESH2497/todo-app-fullstack/pkg/res"
)

// WriteErr maps core sentinels to status codes. Duplicate registration is
// reported as 400, the same as any other rejected input. Internal detail is
// never echoed back.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgs):
		res.Error(w, "invalid arguments", http.StatusBadRequest)
	case errors.Is(err, core.ErrAlreadyExists):
		res.Error(w, "user already exists with this email", http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidCredentials):
		res.Error(w, "invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, core.ErrTokenExpired), errors.Is(err, core.ErrUnauthenticated):
		res.Error(w, "not authorized", http.StatusUnauthorized)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, "task not found or unauthorized", http.StatusNotFound)
	case errors.Is(err, core.ErrUnavailable):
		res.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
