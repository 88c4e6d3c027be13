package models

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash; the session layer carries the {ID, Email} projection.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
