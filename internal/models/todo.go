package models

import "time"

// Todo is a user-owned item. IDs are opaque strings assigned by the storage
// backend. CreatedAt is set by the server on insert and never changes;
// edits touch Title and Description only.
type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	CreatedAt   time.Time
}
