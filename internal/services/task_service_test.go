package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage/memory"
)

func ptr[T any](v T) *T {
	return &v
}

func newTaskServiceTest(t *testing.T) (TaskService, *memory.TaskStore) {
	t.Helper()
	store := memory.NewTaskStore()
	return NewTaskService(zerolog.Nop(), store), store
}

func mustCreateTask(t *testing.T, svc TaskService, owner string) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), CreateTaskParams{
		Owner:       owner,
		Title:       "x",
		Description: "y",
	})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}
	return task
}

func TestCreateThenList(t *testing.T) {
	svc, _ := newTaskServiceTest(t)
	ctx := context.Background()

	created := mustCreateTask(t, svc, "alice")
	if created.ID != 1 || created.Owner != "alice" || created.Completed {
		t.Fatalf("unexpected created task: %+v", created)
	}

	tasks, err := svc.GetTasksByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("GetTasksByOwner error: %v", err)
	}
	if len(tasks) != 1 || *tasks[0] != *created {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, store := newTaskServiceTest(t)

	for _, params := range []CreateTaskParams{
		{Owner: "alice", Title: "", Description: "y"},
		{Owner: "alice", Title: "x", Description: ""},
	} {
		_, err := svc.CreateTask(context.Background(), params)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("CreateTask(%+v): expected ErrValidation, got %v", params, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("invalid task was stored")
	}
}

func TestOwnershipIsolation(t *testing.T) {
	svc, store := newTaskServiceTest(t)
	ctx := context.Background()
	task := mustCreateTask(t, svc, "alice")

	tasks, err := svc.GetTasksByOwner(ctx, "bob")
	if err != nil {
		t.Fatalf("GetTasksByOwner error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("bob sees alice's tasks: %+v", tasks)
	}

	_, err = svc.UpdateTask(ctx, UpdateTaskParams{
		ID:    task.ID,
		Owner: "bob",
		Patch: models.TaskPatch{Completed: ptr(true)},
	})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on update, got %v", err)
	}

	err = svc.DeleteTask(ctx, DeleteTaskParams{ID: task.ID, Owner: "bob"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on delete, got %v", err)
	}

	// A missing id and a foreign id must look the same.
	err = svc.DeleteTask(ctx, DeleteTaskParams{ID: 42, Owner: "bob"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for missing id, got %v", err)
	}

	if store.Len() != 1 {
		t.Fatalf("alice's task was removed")
	}
	tasks, _ = svc.GetTasksByOwner(ctx, "alice")
	if tasks[0].Completed {
		t.Fatalf("alice's task was modified by bob")
	}
}

func TestUpdatePatch(t *testing.T) {
	svc, _ := newTaskServiceTest(t)
	ctx := context.Background()
	task := mustCreateTask(t, svc, "alice")

	unchanged, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: task.ID, Owner: "alice"})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if *unchanged != *task {
		t.Fatalf("empty patch changed the task: %+v", unchanged)
	}

	updated, err := svc.UpdateTask(ctx, UpdateTaskParams{
		ID:    task.ID,
		Owner: "alice",
		Patch: models.TaskPatch{Title: ptr("new"), Completed: ptr(true)},
	})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	want := models.Task{ID: task.ID, Owner: "alice", Title: "new", Description: "y", Completed: true}
	if *updated != want {
		t.Fatalf("got %+v, want %+v", *updated, want)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTaskServiceTest(t)
	ctx := context.Background()
	task := mustCreateTask(t, svc, "alice")

	for _, patch := range []models.TaskPatch{
		{Title: ptr("")},
		{Description: ptr("")},
	} {
		_, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: task.ID, Owner: "alice", Patch: patch})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	}

	tasks, _ := svc.GetTasksByOwner(ctx, "alice")
	if tasks[0].Title != "x" || tasks[0].Description != "y" {
		t.Fatalf("invalid patch was applied: %+v", tasks[0])
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	svc, _ := newTaskServiceTest(t)
	ctx := context.Background()

	first := mustCreateTask(t, svc, "alice")
	if err := svc.DeleteTask(ctx, DeleteTaskParams{ID: first.ID, Owner: "alice"}); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	second := mustCreateTask(t, svc, "alice")
	if second.ID == first.ID {
		t.Fatalf("id %d was reused", first.ID)
	}

	tasks, _ := svc.GetTasksByOwner(ctx, "alice")
	if len(tasks) != 1 || tasks[0].ID != second.ID {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
}
