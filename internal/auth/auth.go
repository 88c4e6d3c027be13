package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/todo-webapp/app/internal/models"
	"github.com/todo-webapp/app/internal/store"
)

// ErrInvalidCredentials is returned when the provided credentials are invalid.
// Unknown email and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service provides email/password registration and authentication on top of
// a UserStore.
type Service struct {
	users store.UserStore
}

// NewService creates a new Service. This function panics if users is nil.
func NewService(users store.UserStore) *Service {
	if users == nil {
		panic("users must be provided")
	}
	return &Service{users: users}
}

// Register creates a new account with a bcrypt-hashed password.
// Returns store.ErrEmailTaken if the email is already registered.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, email, string(hash))
}

// Authenticate verifies the credentials and returns the matching account,
// or ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
