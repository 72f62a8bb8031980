package models

import (
	"time"
)

// Kind discriminates files from folders. Immutable after creation.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindFile || k == KindFolder
}

// Item is a file or folder in a user's note tree. ParentID nil = root level.
type Item struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"-" db:"owner_id"`
	ParentID  *int64    `json:"parent_id" db:"parent_id"`
	Name      string    `json:"name" db:"name"`
	Kind      Kind      `json:"kind" db:"kind"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ItemSummary is the content-free projection returned by list queries.
type ItemSummary struct {
	ID       int64  `json:"id"`
	ParentID *int64 `json:"parent_id"`
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
}
