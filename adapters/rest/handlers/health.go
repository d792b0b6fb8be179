package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest"
	"github.com/RINKESH2497/todo-app-fullstack/core"
	"github.com/RINKESH2497/todo-app-fullstack/pkg/res"
)

func NewHealthHandler(log *slog.Logger, store core.Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out := rest.HealthOut{Status: "OK", Database: "Connected"}
		if err := store.Ping(ctx); err != nil {
			log.Warn("health ping failed", "error", err)
			out.Database = "Disconnected"
		}
		res.JSON(w, out, http.StatusOK)
	}
}
