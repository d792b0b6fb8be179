package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest"
	"github.com/RINKESH2497/todo-app-fullstack/auth"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

type Deps struct {
	Tasks  *core.TaskService
	Users  *core.UserService
	Tokens *auth.Tokens
	Store  core.Pinger
}

func Register(mux *http.ServeMux, log *slog.Logger, deps Deps, timeout time.Duration) {
	protect := rest.RequireAuth(log, deps.Tokens, deps.Users)

	// auth
	mux.Handle("POST /api/auth/register", NewRegisterHandler(log, deps.Users, deps.Tokens, timeout))
	mux.Handle("POST /api/auth/login", NewLoginHandler(log, deps.Users, deps.Tokens, timeout))
	mux.Handle("GET /api/auth/me", protect(NewMeHandler()))

	// tasks
	mux.Handle("GET /api/tasks", protect(NewListTasksHandler(log, deps.Tasks, timeout)))
	mux.Handle("POST /api/tasks", protect(NewCreateTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("PUT /api/tasks/{id}", protect(NewUpdateTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("DELETE /api/tasks/{id}", protect(NewDeleteTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("PATCH /api/tasks/reorder", protect(NewReorderTasksHandler(log, deps.Tasks, timeout)))

	// health
	mux.Handle("GET /api/health", NewHealthHandler(log, deps.Store, timeout))
}
