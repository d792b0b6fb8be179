package core_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

// fakeStore mirrors the document store's semantics in memory: owner-scoped
// lookups where a foreign id is indistinguishable from a missing one, and
// append-to-end order assignment on create.
type fakeStore struct {
	mu sync.RWMutex

	nextID int
	seq    map[string]int // insertion sequence, list tie-break
	tasks  map[string]core.Task
	users  map[string]core.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID: 1,
		seq:    make(map[string]int),
		tasks:  make(map[string]core.Task),
		users:  make(map[string]core.User),
	}
}

func (s *fakeStore) newID() string {
	id := fmt.Sprintf("%024x", s.nextID)
	s.nextID++
	return id
}

func (s *fakeStore) Ping(context.Context) error { return nil }

func cloneTask(t core.Task) core.Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	return out
}

func (s *fakeStore) CreateTask(_ context.Context, owner string, t core.Task) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := 0
	for _, existing := range s.tasks {
		if existing.UserID == owner && existing.Order >= order {
			order = existing.Order + 1
		}
	}

	now := time.Now().UTC()
	t.ID = s.newID()
	t.UserID = owner
	t.Order = order
	t.CreatedAt = now
	t.UpdatedAt = now

	s.tasks[t.ID] = cloneTask(t)
	s.seq[t.ID] = len(s.seq)
	return cloneTask(t), nil
}

func (s *fakeStore) ListTasks(_ context.Context, owner string) ([]core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.UserID == owner {
			out = append(out, cloneTask(t))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

func (s *fakeStore) UpdateTask(_ context.Context, owner, id string, p core.TaskPatch) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return core.Task{}, core.ErrNotFound
	}

	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
	t.UpdatedAt = time.Now().UTC()

	s.tasks[id] = cloneTask(t)
	return cloneTask(t), nil
}

func (s *fakeStore) DeleteTask(_ context.Context, owner, id string) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return core.Task{}, core.ErrNotFound
	}

	delete(s.tasks, id)
	return cloneTask(t), nil
}

func (s *fakeStore) SetTaskOrder(_ context.Context, owner, id string, order int) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return core.Task{}, core.ErrNotFound
	}

	t.Order = order
	t.UpdatedAt = time.Now().UTC()
	s.tasks[id] = cloneTask(t)
	return cloneTask(t), nil
}

func (s *fakeStore) CreateUser(_ context.Context, u core.User) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return core.User{}, core.ErrAlreadyExists
		}
	}

	u.ID = s.newID()
	s.users[u.ID] = u
	return u, nil
}

func (s *fakeStore) UserByEmail(_ context.Context, email string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

func (s *fakeStore) UserByID(_ context.Context, id string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return core.User{}, core.ErrNotFound
	}
	return u, nil
}
