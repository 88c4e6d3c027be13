package store

import (
	"context"
	"errors"

	"github.com/todo-webapp/app/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already in use")
)

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts a new account. Returns ErrEmailTaken if the email
	// is already registered.
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)

	// UserByEmail looks up an account by email. Returns ErrNotFound if absent.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TodoStore persists todo items.
//
// Visibility is enforced only by the owner filter in TodosByOwner; UpdateTodo
// and DeleteTodo act on the raw id without re-checking ownership.
type TodoStore interface {
	// TodosByOwner returns all todos owned by ownerID, ordered by creation
	// time descending.
	TodosByOwner(ctx context.Context, ownerID string) ([]models.Todo, error)

	// CreateTodo inserts a new todo with a server-assigned creation timestamp
	// and returns its id.
	CreateTodo(ctx context.Context, ownerID, title, description string) (string, error)

	// UpdateTodo overwrites title and description only. Owner and creation
	// timestamp are immutable.
	UpdateTodo(ctx context.Context, id, title, description string) error

	// DeleteTodo removes the todo unconditionally.
	DeleteTodo(ctx context.Context, id string) error
}
