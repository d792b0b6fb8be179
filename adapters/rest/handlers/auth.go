package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest"
	"github.com/RINKESH2497/todo-app-fullstack/auth"
	"github.com/RINKESH2497/todo-app-fullstack/core"
	"github.com/RINKESH2497/todo-app-fullstack/pkg/res"
)

func authOut(u core.User, token string) rest.AuthOut {
	return rest.AuthOut{ID: u.ID, Name: u.Name, Email: u.Email, Token: token}
}

func NewRegisterHandler(log *slog.Logger, users *core.UserService, tokens *auth.Tokens, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.RegisterIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := users.Register(ctx, in.Name, in.Email, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		token, err := tokens.Issue(u.ID)
		if err != nil {
			log.Error("issue token", "error", err)
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, authOut(u, token), http.StatusCreated)
	}
}

func NewLoginHandler(log *slog.Logger, users *core.UserService, tokens *auth.Tokens, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := users.Login(ctx, in.Email, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		token, err := tokens.Issue(u.ID)
		if err != nil {
			log.Error("issue token", "error", err)
			rest.WriteErr(w, err)
			return
		}
		res.JSON(w, authOut(u, token), http.StatusOK)
	}
}

func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := rest.UserFrom(r.Context())
		if !ok {
			res.Error(w, "not authorized", http.StatusUnauthorized)
			return
		}
		res.JSON(w, rest.MeOut{ID: u.ID, Name: u.Name, Email: u.Email}, http.StatusOK)
	}
}
