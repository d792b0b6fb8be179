package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RINKESH2497/todo-app-fullstack/client"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	c.SetToken("tok-123")

	if _, err := c.Tasks(context.Background()); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_ReorderPayloadShape(t *testing.T) {
	t.Parallel()

	var got struct {
		Tasks []struct {
			ID string `json:"id"`
		} `json:"tasks"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/tasks/reorder" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode reorder body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	if _, err := c.Reorder(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}

	if len(got.Tasks) != 2 || got.Tasks[0].ID != "a" || got.Tasks[1].ID != "b" {
		t.Fatalf("unexpected reorder payload: %+v", got)
	}
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not authorized"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)

	_, err := c.Tasks(context.Background())
	if !errors.Is(err, core.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	// the same status on login means the credentials were wrong
	_, err = c.Login(context.Background(), "ann@x.com", "wrong")
	if !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"task not found or unauthorized"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)

	_, err := c.DeleteTask(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaa")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
