package core

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTextLen bounds task text length in runes.
const MaxTextLen = 500

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, owner string, in CreateTaskIn) (Task, error) {
	if owner == "" {
		return Task{}, ErrInvalidArgs
	}

	text := strings.TrimSpace(in.Text)
	if text == "" || utf8.RuneCountInString(text) > MaxTextLen {
		return Task{}, ErrInvalidArgs
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Task{}, ErrInvalidArgs
	}

	return s.store.CreateTask(ctx, owner, Task{
		Text:     text,
		Priority: priority,
		Category: strings.TrimSpace(in.Category),
		DueDate:  in.DueDate,
	})
}

func (s *TaskService) List(ctx context.Context, owner string) ([]Task, error) {
	if owner == "" {
		return nil, ErrInvalidArgs
	}
	return s.store.ListTasks(ctx, owner)
}

func (s *TaskService) Update(ctx context.Context, owner, id string, p TaskPatch) (Task, error) {
	if owner == "" || id == "" {
		return Task{}, ErrInvalidArgs
	}
	if p.Empty() {
		return Task{}, ErrInvalidArgs
	}

	if p.Text != nil {
		text := strings.TrimSpace(*p.Text)
		if text == "" || utf8.RuneCountInString(text) > MaxTextLen {
			return Task{}, ErrInvalidArgs
		}
		p.Text = &text
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return Task{}, ErrInvalidArgs
	}

	return s.store.UpdateTask(ctx, owner, id, p)
}

func (s *TaskService) Delete(ctx context.Context, owner, id string) (Task, error) {
	if owner == "" || id == "" {
		return Task{}, ErrInvalidArgs
	}
	return s.store.DeleteTask(ctx, owner, id)
}

// Reorder sets each task's order to its position in ids. Ids that do not
// resolve to a task of this owner are skipped without error; the client may
// hold stale state. Tasks omitted from ids keep their previous order.
func (s *TaskService) Reorder(ctx context.Context, owner string, ids []string) ([]Task, error) {
	if owner == "" {
		return nil, ErrInvalidArgs
	}

	out := make([]Task, 0, len(ids))
	for i, id := range ids {
		t, err := s.store.SetTaskOrder(ctx, owner, id, i)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
