package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

type RegisterIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type MeOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateTaskIn struct {
	Text     string     `json:"text"`
	Priority string     `json:"priority"`
	Category string     `json:"category"`
	DueDate  *time.Time `json:"dueDate"`
}

// UpdateTaskIn distinguishes absent fields from explicit nulls: dueDate is
// kept raw so {"dueDate": null} clears the date while omission leaves it.
type UpdateTaskIn struct {
	Text      *string         `json:"text"`
	Completed *bool           `json:"completed"`
	Priority  *string         `json:"priority"`
	Category  *string         `json:"category"`
	DueDate   json.RawMessage `json:"dueDate"`
	Order     *int            `json:"order"`
}

func (in UpdateTaskIn) Patch() (core.TaskPatch, error) {
	var p core.TaskPatch
	p.Text = in.Text
	p.Completed = in.Completed
	if in.Priority != nil {
		pr := core.Priority(*in.Priority)
		p.Priority = &pr
	}
	p.Category = in.Category
	p.Order = in.Order

	if len(in.DueDate) > 0 {
		if bytes.Equal(bytes.TrimSpace(in.DueDate), []byte("null")) {
			var cleared *time.Time
			p.DueDate = &cleared
		} else {
			var t time.Time
			if err := json.Unmarshal(in.DueDate, &t); err != nil {
				return core.TaskPatch{}, core.ErrInvalidArgs
			}
			due := &t
			p.DueDate = &due
		}
	}
	return p, nil
}

type ReorderItem struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
}

func (it ReorderItem) TaskID() string {
	if it.ID != "" {
		return it.ID
	}
	return it.LegacyID
}

type ReorderIn struct {
	Tasks []ReorderItem `json:"tasks"`
}

type DeleteOut struct {
	Message string    `json:"message"`
	Task    core.Task `json:"task"`
}

type HealthOut struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
