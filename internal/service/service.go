// Package service implements the create-task operation: validate, persist,
// then hand the persisted row to the notification dispatcher.
package service

import (
	"context"
	"errors"
	"strings"

	"taskpad/internal/notify"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

var ErrTitleRequired = errors.New("Title is required")

type TaskService struct {
	store      store.Store
	dispatcher *notify.Dispatcher
	owner      string
}

// New builds a service writing tasks for the given owner. dispatcher may be
// nil when no webhook is configured.
func New(st store.Store, dispatcher *notify.Dispatcher, owner string) *TaskService {
	return &TaskService{store: st, dispatcher: dispatcher, owner: owner}
}

// Create validates the title, inserts the task, and fires the webhook
// delivery without waiting for it. The store is never contacted on invalid
// input, and the webhook is never contacted on store failure.
func (s *TaskService) Create(ctx context.Context, title string) (task.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, ErrTitleRequired
	}
	created, err := s.store.Insert(ctx, s.owner, title)
	if err != nil {
		return task.Task{}, err
	}
	s.dispatcher.Dispatch(created)
	return created, nil
}
