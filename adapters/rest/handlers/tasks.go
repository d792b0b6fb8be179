package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest"
	"github.com/RINKESH2497/todo-app-fullstack/core"
	"github.com/RINKESH2497/todo-app-fullstack/pkg/res"
)

// Ids are the store's native 24-hex format; anything else is rejected
// before a lookup happens.
var hexID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func pathID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	return id, hexID.MatchString(id)
}

func NewListTasksHandler(_ *slog.Logger, svc *core.TaskService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := rest.UserFrom(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.List(ctx, u.ID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, tasks, http.StatusOK)
	}
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.TaskService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := rest.UserFrom(r.Context())

		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.Create(ctx, u.ID, core.CreateTaskIn{
			Text:     in.Text,
			Priority: core.Priority(in.Priority),
			Category: in.Category,
			DueDate:  in.DueDate,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, t, http.StatusCreated)
	}
}

func NewUpdateTaskHandler(_ *slog.Logger, svc *core.TaskService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := rest.UserFrom(r.Context())

		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid task id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		patch, err := in.Patch()
		if err != nil {
			res.Error(w, "invalid due date", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.Update(ctx, u.ID, id, patch)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, t, http.StatusOK)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.TaskService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := rest.UserFrom(r.Context())

		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid task id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.Delete(ctx, u.ID, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, rest.DeleteOut{Message: "task deleted successfully", Task: t}, http.StatusOK)
	}
}

func NewReorderTasksHandler(_ *slog.Logger, svc *core.TaskService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := rest.UserFrom(r.Context())

		var in rest.ReorderIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Tasks == nil {
			res.Error(w, "tasks must be an array", http.StatusBadRequest)
			return
		}

		ids := make([]string, 0, len(in.Tasks))
		for _, it := range in.Tasks {
			ids = append(ids, it.TaskID())
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.Reorder(ctx, u.ID, ids)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, tasks, http.StatusOK)
	}
}
