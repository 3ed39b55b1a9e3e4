package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

func mustCreate(t *testing.T, store *TaskStore, owner, title string) *models.Task {
	t.Helper()
	task, err := store.CreateTask(context.Background(), &models.Task{
		Owner:       owner,
		Title:       title,
		Description: "desc",
	})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}
	return task
}

func TestTaskStoreAssignsMonotonicIDs(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	first := mustCreate(t, store, "alice", "a")
	second := mustCreate(t, store, "alice", "b")
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", first.ID, second.ID)
	}

	if err := store.DeleteTask(ctx, "alice", second.ID); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	third := mustCreate(t, store, "alice", "c")
	if third.ID != 3 {
		t.Fatalf("deleted id was reused: got %d", third.ID)
	}
}

func TestTaskStoreListIsScopedAndOrdered(t *testing.T) {
	store := NewTaskStore()
	mustCreate(t, store, "alice", "a1")
	mustCreate(t, store, "bob", "b1")
	mustCreate(t, store, "alice", "a2")

	tasks, err := store.ListTasks(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "a1" || tasks[1].Title != "a2" {
		t.Fatalf("unexpected order: %q, %q", tasks[0].Title, tasks[1].Title)
	}

	tasks, err = store.ListTasks(context.Background(), "carol")
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", tasks)
	}
}

func TestTaskStoreUpdateKeepsIdentity(t *testing.T) {
	store := NewTaskStore()
	created := mustCreate(t, store, "alice", "a")

	updated, err := store.UpdateTask(context.Background(), "alice", created.ID, func(task *models.Task) error {
		task.ID = 99
		task.Owner = "mallory"
		task.Completed = true
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if updated.ID != created.ID || updated.Owner != "alice" || !updated.Completed {
		t.Fatalf("unexpected task after update: %+v", updated)
	}
}

func TestTaskStoreUpdateAbortsOnError(t *testing.T) {
	store := NewTaskStore()
	created := mustCreate(t, store, "alice", "a")
	errBoom := errors.New("boom")

	_, err := store.UpdateTask(context.Background(), "alice", created.ID, func(task *models.Task) error {
		task.Title = "changed"
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}

	tasks, _ := store.ListTasks(context.Background(), "alice")
	if tasks[0].Title != "a" {
		t.Fatalf("failed update was stored: %q", tasks[0].Title)
	}
}

func TestTaskStoreHidesOtherOwners(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()
	created := mustCreate(t, store, "alice", "a")

	_, err := store.UpdateTask(ctx, "bob", created.ID, func(*models.Task) error { return nil })
	if !errors.Is(err, storage.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on update, got %v", err)
	}
	err = store.DeleteTask(ctx, "bob", created.ID)
	if !errors.Is(err, storage.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on delete, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("task was removed by another owner")
	}
}

func TestTaskStoreConcurrentCreate(t *testing.T) {
	store := NewTaskStore()
	const n = 64

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := store.CreateTask(context.Background(), &models.Task{Owner: "alice", Title: "t", Description: "d"})
			if err != nil {
				t.Errorf("CreateTask error: %v", err)
				return
			}
			ids <- task.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n || store.Len() != n {
		t.Fatalf("expected %d tasks, got %d ids and %d stored", n, len(seen), store.Len())
	}
}
