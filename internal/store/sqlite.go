package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/todo-webapp/app/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// SQLite implements UserStore and TodoStore on a SQLite database. It is the
// default backend when no Mongo URI is configured, and the backend used by
// the tests (":memory:").
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the database at dataSourceName
// and loads the schema.
func OpenSQLite(dataSourceName string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	// A :memory: database exists per connection; cap the pool at one so
	// every query sees the same database.
	if dataSourceName == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, email, password_hash, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *SQLite) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	row := s.db.QueryRowContext(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *SQLite) TodosByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, uid, title, description, created_at FROM todos WHERE uid = ? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description, &todo.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

func (s *SQLite) CreateTodo(ctx context.Context, ownerID, title, description string) (string, error) {
	id := uuid.NewString()

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO todos(id, uid, title, description, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id, ownerID, title, description, time.Now().UTC())
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *SQLite) UpdateTodo(ctx context.Context, id, title, description string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE todos SET title = ?, description = ? WHERE id = ?", title, description, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) DeleteTodo(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	return err
}
