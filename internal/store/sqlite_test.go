package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

// setupTestStore initializes an in-memory SQLite store for testing.
func setupTestStore(t *testing.T) (*SQLite, func()) {
	t.Helper()

	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test store: %v", err)
	}

	teardown := func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	}

	return s, teardown
}

func TestCreateUserAndUserByEmail(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	ctx := context.Background()
	email := "testuser@example.com"
	hash := "$2a$10$fakehashfakehashfakehash"

	t.Run("Create and Get User", func(t *testing.T) {
		created, err := s.CreateUser(ctx, email, hash)
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if created.ID == "" {
			t.Errorf("CreateUser() returned user with empty ID")
		}
		if created.Email != email {
			t.Errorf("CreateUser() email = %v, want %v", created.Email, email)
		}
		if created.CreatedAt.IsZero() {
			t.Errorf("CreateUser() CreatedAt is zero")
		}

		got, err := s.UserByEmail(ctx, email)
		if err != nil {
			t.Fatalf("UserByEmail() error = %v", err)
		}
		if got.ID != created.ID || got.Email != email || got.PasswordHash != hash {
			t.Errorf("UserByEmail() got = %+v, want id=%s email=%s", got, created.ID, email)
		}
	})

	t.Run("Create User with Existing Email", func(t *testing.T) {
		_, err := s.CreateUser(ctx, email, hash)
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("CreateUser() with existing email error = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("Get Non-existent User", func(t *testing.T) {
		_, err := s.UserByEmail(ctx, "nonexistent@example.com")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UserByEmail() for non-existent email error = %v, want ErrNotFound", err)
		}
	})
}

func TestTodosByOwnerOrderingAndFilter(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if _, err := s.CreateTodo(ctx, "owner-1", title, "desc "+title); err != nil {
			t.Fatalf("CreateTodo(%s) error = %v", title, err)
		}
		// Distinct creation timestamps so the ordering assertion is meaningful.
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := s.CreateTodo(ctx, "owner-2", "other", "not mine"); err != nil {
		t.Fatalf("CreateTodo(other) error = %v", err)
	}

	todos, err := s.TodosByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("TodosByOwner() error = %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("TodosByOwner() returned %d todos, want 3", len(todos))
	}

	// Newest first.
	wantOrder := []string{"third", "second", "first"}
	for i, want := range wantOrder {
		if todos[i].Title != want {
			t.Errorf("todos[%d].Title = %q, want %q", i, todos[i].Title, want)
		}
	}
	for i := 1; i < len(todos); i++ {
		if todos[i].CreatedAt.After(todos[i-1].CreatedAt) {
			t.Errorf("todos not ordered by creation time descending at index %d", i)
		}
	}
	for _, todo := range todos {
		if todo.OwnerID != "owner-1" {
			t.Errorf("todo %q owned by %q, want owner-1", todo.Title, todo.OwnerID)
		}
	}
}

func TestUpdateTodo(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	ctx := context.Background()

	id, err := s.CreateTodo(ctx, "owner-1", "Buy milk", "2%")
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}

	before, err := s.TodosByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("TodosByOwner() error = %v", err)
	}

	if err := s.UpdateTodo(ctx, id, "Buy oat milk", "unsweetened"); err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}

	after, err := s.TodosByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("TodosByOwner() error = %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("TodosByOwner() returned %d todos, want 1", len(after))
	}

	if after[0].Title != "Buy oat milk" || after[0].Description != "unsweetened" {
		t.Errorf("UpdateTodo() got title=%q desc=%q", after[0].Title, after[0].Description)
	}
	if after[0].OwnerID != before[0].OwnerID {
		t.Errorf("UpdateTodo() changed owner: %q -> %q", before[0].OwnerID, after[0].OwnerID)
	}
	if !after[0].CreatedAt.Equal(before[0].CreatedAt) {
		t.Errorf("UpdateTodo() changed CreatedAt: %v -> %v", before[0].CreatedAt, after[0].CreatedAt)
	}

	t.Run("Update Non-existent Todo", func(t *testing.T) {
		err := s.UpdateTodo(ctx, "no-such-id", "x", "y")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateTodo() for non-existent id error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteTodo(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	ctx := context.Background()

	keepID, err := s.CreateTodo(ctx, "owner-1", "keep", "stays")
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	dropID, err := s.CreateTodo(ctx, "owner-1", "drop", "goes")
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}

	if err := s.DeleteTodo(ctx, dropID); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}

	todos, err := s.TodosByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("TodosByOwner() error = %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("TodosByOwner() returned %d todos, want 1", len(todos))
	}
	if todos[0].ID != keepID {
		t.Errorf("remaining todo id = %q, want %q", todos[0].ID, keepID)
	}

	// Deleting an unknown id is not an error.
	if err := s.DeleteTodo(ctx, dropID); err != nil {
		t.Errorf("DeleteTodo() of already-deleted id error = %v, want nil", err)
	}
}
