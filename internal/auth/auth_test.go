package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/todo-webapp/app/internal/models"
	"github.com/todo-webapp/app/internal/store"
)

func setupTestService(t *testing.T) (*Service, func()) {
	t.Helper()

	s, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test store: %v", err)
	}

	return NewService(s), func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, teardown := setupTestService(t)
	defer teardown()

	ctx := context.Background()
	email := "a@x.com"
	password := "secret1"

	user, err := svc.Register(ctx, email, password)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == "" {
		t.Errorf("Register() returned user with empty ID")
	}
	if user.PasswordHash == password {
		t.Errorf("Register() stored the plaintext password")
	}

	t.Run("Correct Password", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, email, password)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("Authenticate() user ID = %q, want %q", got.ID, user.ID)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, email, "wrongpassword")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@x.com", password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := svc.Register(ctx, email, "another")
		if !errors.Is(err, store.ErrEmailTaken) {
			t.Errorf("Register() error = %v, want store.ErrEmailTaken", err)
		}
	})
}

func TestSessions(t *testing.T) {
	sessions := NewSessions()
	user := &models.User{ID: "user-1", Email: "a@x.com"}

	token := sessions.Create(user)
	if token == "" {
		t.Fatalf("Create() returned empty token")
	}

	sess, ok := sessions.Get(token)
	if !ok {
		t.Fatalf("Get() did not find the created session")
	}
	if sess.UserID != user.ID || sess.Email != user.Email {
		t.Errorf("Get() session = %+v, want UserID=%s Email=%s", sess, user.ID, user.Email)
	}

	// A second login gets its own token.
	other := sessions.Create(user)
	if other == token {
		t.Errorf("Create() reused a token")
	}

	sessions.Delete(token)
	if _, ok := sessions.Get(token); ok {
		t.Errorf("Get() found a deleted session")
	}
	if _, ok := sessions.Get(other); !ok {
		t.Errorf("Delete() removed an unrelated session")
	}

	if _, ok := sessions.Get("not-a-token"); ok {
		t.Errorf("Get() found a session for an unknown token")
	}
}
