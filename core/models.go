package core

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// User identity. The password hash never leaves the server.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Task ids and UserID are 24-character hex strings (the store's native id
// format). Order is meaningful only among tasks of the same owner.
type Task struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"userId"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	Category  string     `json:"category"`
	DueDate   *time.Time `json:"dueDate"`
	Order     int        `json:"order"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TaskPatch is a partial update; nil fields are left untouched.
// The owning user is not patchable.
type TaskPatch struct {
	Text      *string
	Completed *bool
	Priority  *Priority
	Category  *string
	DueDate   **time.Time
	Order     *int
}

func (p TaskPatch) Empty() bool {
	return p.Text == nil && p.Completed == nil && p.Priority == nil &&
		p.Category == nil && p.DueDate == nil && p.Order == nil
}

type CreateTaskIn struct {
	Text     string
	Priority Priority
	Category string
	DueDate  *time.Time
}
