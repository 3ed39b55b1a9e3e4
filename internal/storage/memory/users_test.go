package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	err := store.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}

	user, err := store.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if user.Username != "alice" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserStoreRejectsDuplicate(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if err := store.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "first"}); err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	err := store.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "second"})
	if !errors.Is(err, storage.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	user, err := store.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if user.PasswordHash != "first" {
		t.Fatalf("duplicate registration overwrote the hash: %q", user.PasswordHash)
	}
}

func TestUserStoreGetUnknown(t *testing.T) {
	store := NewUserStore()
	_, err := store.GetUser(context.Background(), "nobody")
	if !errors.Is(err, storage.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStoreConcurrentCreateSameUsername(t *testing.T) {
	store := NewUserStore()
	const n = 64

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.CreateUser(context.Background(), &models.User{Username: "alice", PasswordHash: "hash"})
		}()
	}
	wg.Wait()
	close(errs)

	var created, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, storage.ErrUserExists):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 || duplicates != n-1 {
		t.Fatalf("expected 1 created and %d duplicates, got %d and %d", n-1, created, duplicates)
	}
}
