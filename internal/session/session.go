// Package session holds the per-session client view of the task list. Each
// Session owns its own slice; nothing is shared across sessions, and the
// database stays authoritative. Mutations that fail leave the slice exactly
// as it was.
package session

import (
	"context"
	"strings"

	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

// Creator is the service-routed creation path. Toggle/edit/delete go to the
// store directly; creation alone passes through the service so the webhook
// fires.
type Creator interface {
	Create(ctx context.Context, title string) (task.Task, error)
}

type Session struct {
	store  store.Store
	svc    Creator
	owner  string
	tasks  []task.Task
	filter task.Filter
}

func New(st store.Store, svc Creator, owner string) *Session {
	return &Session{store: st, svc: svc, owner: owner, filter: task.FilterAll}
}

// Load replaces the in-memory list with the store's current rows, newest
// first. On error the previous list is kept.
func (s *Session) Load(ctx context.Context) error {
	tasks, err := s.store.ListByOwner(ctx, s.owner)
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// Add creates a task through the service and prepends the persisted row,
// keeping descending creation order at the head.
func (s *Session) Add(ctx context.Context, title string) (task.Task, error) {
	created, err := s.svc.Create(ctx, title)
	if err != nil {
		return task.Task{}, err
	}
	s.tasks = append([]task.Task{created}, s.tasks...)
	return created, nil
}

// Toggle flips the completion flag of a known task. Unknown ids are a
// silent no-op. The store's returned row replaces the local one so any
// store-side changes are picked up, not just the flipped flag.
func (s *Session) Toggle(ctx context.Context, id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	updated, err := s.store.SetComplete(ctx, id, !s.tasks[i].IsComplete)
	if err != nil {
		return err
	}
	s.tasks[i] = updated
	return nil
}

// Edit replaces the task's title and adopts the store's returned row.
// A blank title is rejected before the store is contacted; a title is never
// empty after any mutation that sets it.
func (s *Session) Edit(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return service.ErrTitleRequired
	}
	updated, err := s.store.SetTitle(ctx, id, title)
	if err != nil {
		return err
	}
	if i := s.index(id); i >= 0 {
		s.tasks[i] = updated
	}
	return nil
}

// Delete removes the task from the store, then from memory.
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if i := s.index(id); i >= 0 {
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	}
	return nil
}

func (s *Session) SetFilter(f task.Filter) { s.filter = f }
func (s *Session) Filter() task.Filter     { return s.filter }

// Filtered derives the view for the active filter from current memory.
func (s *Session) Filtered() []task.Task {
	return s.filter.Apply(s.tasks)
}

// Tasks returns the full in-memory list, newest first.
func (s *Session) Tasks() []task.Task { return s.tasks }

func (s *Session) Counts() task.Counts { return task.CountTasks(s.tasks) }

func (s *Session) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
