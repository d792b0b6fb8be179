package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// TaskStore persists tasks. Every operation is scoped to an owner; an id
// that exists but belongs to someone else is reported as ErrNotFound, the
// same as an id that does not exist at all.
type TaskStore interface {
	Pinger

	// CreateTask assigns the id, timestamps and an order one past the
	// owner's current maximum (0 for the first task).
	CreateTask(ctx context.Context, owner string, t Task) (Task, error)
	ListTasks(ctx context.Context, owner string) ([]Task, error)
	UpdateTask(ctx context.Context, owner, id string, p TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, owner, id string) (Task, error)
	SetTaskOrder(ctx context.Context, owner, id string, order int) (Task, error)
}

type UserStore interface {
	Pinger

	CreateUser(ctx context.Context, u User) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
}

// PasswordHasher hides the hash scheme from the user service. Compare must
// be constant-time with respect to the stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
