// Package client is the programmatic counterpart of the web UI: a typed
// API client plus the ordered task view model it renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		return statusErr(resp.StatusCode, ae.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func statusErr(code int, msg string) error {
	switch code {
	case http.StatusBadRequest:
		if msg != "" {
			return fmt.Errorf("%w: %s", core.ErrInvalidArgs, msg)
		}
		return core.ErrInvalidArgs
	case http.StatusUnauthorized:
		return core.ErrUnauthenticated
	case http.StatusNotFound:
		return core.ErrNotFound
	case http.StatusServiceUnavailable:
		return core.ErrUnavailable
	default:
		return fmt.Errorf("server returned %d: %s", code, msg)
	}
}

// Auth is the register/login response: the profile plus a bearer token.
type Auth struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (Auth, error) {
	var out Auth
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return Auth{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (Auth, error) {
	var out Auth
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		// the login 401 means bad credentials, not a bad session
		if errors.Is(err, core.ErrUnauthenticated) {
			return Auth{}, core.ErrInvalidCredentials
		}
		return Auth{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) Me(ctx context.Context) (Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (c *Client) Tasks(ctx context.Context) ([]core.Task, error) {
	var out []core.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateTaskIn struct {
	Text     string     `json:"text"`
	Priority string     `json:"priority,omitempty"`
	Category string     `json:"category,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}

func (c *Client) CreateTask(ctx context.Context, in CreateTaskIn) (core.Task, error) {
	var out core.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &out); err != nil {
		return core.Task{}, err
	}
	return out, nil
}

// UpdateTaskIn mirrors the PUT body: nil fields are omitted and left
// unchanged. DueDate is doubly indirect so a pointer to nil marshals as an
// explicit null, which clears the date server-side.
type UpdateTaskIn struct {
	Text      *string     `json:"text,omitempty"`
	Completed *bool       `json:"completed,omitempty"`
	Priority  *string     `json:"priority,omitempty"`
	Category  *string     `json:"category,omitempty"`
	DueDate   **time.Time `json:"dueDate,omitempty"`
	Order     *int        `json:"order,omitempty"`
}

func (c *Client) UpdateTask(ctx context.Context, id string, in UpdateTaskIn) (core.Task, error) {
	var out core.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, in, &out); err != nil {
		return core.Task{}, err
	}
	return out, nil
}

type deleteOut struct {
	Message string    `json:"message"`
	Task    core.Task `json:"task"`
}

func (c *Client) DeleteTask(ctx context.Context, id string) (core.Task, error) {
	var out deleteOut
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, &out); err != nil {
		return core.Task{}, err
	}
	return out.Task, nil
}

type reorderItem struct {
	ID string `json:"id"`
}

// Reorder submits the complete id sequence; the server renumbers each task
// to its position.
func (c *Client) Reorder(ctx context.Context, ids []string) ([]core.Task, error) {
	items := make([]reorderItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, reorderItem{ID: id})
	}

	var out []core.Task
	err := c.do(ctx, http.MethodPatch, "/api/tasks/reorder",
		map[string]any{"tasks": items}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return Health{}, err
	}
	return out, nil
}
