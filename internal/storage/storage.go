// Package storage declares the persistence contracts shared by the
// in-memory and Postgres drivers.
package storage

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-services/internal/models"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)

type UserStore interface {
	// CreateUser stores the user or returns ErrUserExists if the
	// username is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser returns ErrUserNotFound if no user has the given username.
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// TaskStore keeps tasks tagged with their owner. Every method that reads or
// changes an existing task is scoped by owner, and a task that belongs to
// somebody else is reported as ErrTaskNotFound.
type TaskStore interface {
	// CreateTask assigns the next id to the task and stores it. Ids are
	// never reused, even after deletions.
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// ListTasks returns the owner's tasks in insertion order.
	ListTasks(ctx context.Context, owner string) ([]*models.Task, error)

	// UpdateTask calls fn with a copy of the task and stores the copy if fn
	// returns nil. The lookup, fn and the write happen atomically. Changes
	// fn makes to ID or Owner are discarded.
	UpdateTask(ctx context.Context, owner string, id int64, fn func(task *models.Task) error) (*models.Task, error)

	DeleteTask(ctx context.Context, owner string, id int64) error
}
