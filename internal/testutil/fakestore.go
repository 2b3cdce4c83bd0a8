// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"taskpad/internal/store"
	"taskpad/internal/task"
)

// FakeStore is an in-memory implementation of store.Store for testing.
// Tasks are kept newest-first, matching the store's list order.
type FakeStore struct {
	mu     sync.Mutex
	nextID int
	now    time.Time
	tasks  []task.Task

	// Error injection for testing
	ListErr        error
	InsertErr      error
	SetCompleteErr error
	SetTitleErr    error
	DeleteErr      error

	InsertCalls int
}

var _ store.Store = (*FakeStore)(nil)

func NewFakeStore() *FakeStore {
	return &FakeStore{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// Seed inserts a task directly, bypassing error injection. Returns the
// stored task.
func (f *FakeStore) Seed(owner, title string, complete bool) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.newTask(owner, title)
	t.IsComplete = complete
	f.tasks = append([]task.Task{t}, f.tasks...)
	return t
}

func (f *FakeStore) ListByOwner(ctx context.Context, owner string) ([]task.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []task.Task
	for _, t := range f.tasks {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *FakeStore) Insert(ctx context.Context, owner, title string) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InsertCalls++
	if f.InsertErr != nil {
		return task.Task{}, f.InsertErr
	}
	t := f.newTask(owner, title)
	f.tasks = append([]task.Task{t}, f.tasks...)
	return t, nil
}

func (f *FakeStore) SetComplete(ctx context.Context, id string, complete bool) (task.Task, error) {
	if f.SetCompleteErr != nil {
		return task.Task{}, f.SetCompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].IsComplete = complete
			return f.tasks[i], nil
		}
	}
	return task.Task{}, store.ErrNotFound
}

func (f *FakeStore) SetTitle(ctx context.Context, id, title string) (task.Task, error) {
	if f.SetTitleErr != nil {
		return task.Task{}, f.SetTitleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Title = title
			return f.tasks[i], nil
		}
	}
	return task.Task{}, store.ErrNotFound
}

func (f *FakeStore) Delete(ctx context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// newTask assigns a fresh id and a strictly increasing created_at so list
// order stays deterministic. Caller holds f.mu.
func (f *FakeStore) newTask(owner, title string) task.Task {
	f.nextID++
	f.now = f.now.Add(time.Second)
	return task.Task{
		ID:        fmt.Sprintf("task-%d", f.nextID),
		Title:     title,
		CreatedAt: f.now,
		Owner:     owner,
	}
}

// BlockingNotifier blocks every Notify until Release is called, to prove
// callers do not wait on delivery.
type BlockingNotifier struct {
	release chan struct{}
	Calls   chan task.Task
}

func NewBlockingNotifier() *BlockingNotifier {
	return &BlockingNotifier{
		release: make(chan struct{}),
		Calls:   make(chan task.Task, 16),
	}
}

func (n *BlockingNotifier) Notify(ctx context.Context, t task.Task) error {
	n.Calls <- t
	<-n.release
	return nil
}

func (n *BlockingNotifier) Release() { close(n.release) }

// FailingNotifier always fails delivery.
type FailingNotifier struct{}

func (FailingNotifier) Notify(ctx context.Context, t task.Task) error {
	return errors.New("sink unreachable")
}
