package models

import (
	"time"

	"github.com/google/uuid"
)

// UserID is an opaque user identifier. The zero value means anonymous.
type UserID string

// NewUserID returns a fresh random identifier.
func NewUserID() UserID {
	return UserID(uuid.NewString())
}

// IsZero reports whether the id is anonymous.
func (id UserID) IsZero() bool {
	return id == ""
}

// Equal reports whether two ids name the same user. Anonymous ids never match.
func (id UserID) Equal(other UserID) bool {
	return !id.IsZero() && id == other
}

func (id UserID) String() string {
	return string(id)
}

// Counter names a per-user counter column.
type Counter string

const (
	CounterCreations Counter = "total_creations"
	CounterUploads   Counter = "total_uploads"
)

// User represents a gallery member.
type User struct {
	ID             UserID    `json:"id" db:"user_id"`                          // Primary key
	Username       string    `json:"username" db:"username"`                   // Unique display name
	Email          *string   `json:"email,omitempty" db:"email"`               // Unique when present
	PasswordHash   string    `json:"passwordHash,omitempty" db:"password_hash"` // bcrypt hash, empty for username-only accounts
	TotalCreations int64     `json:"totalCreations" db:"total_creations"`      // Creations currently owned
	TotalUploads   int64     `json:"totalUploads" db:"total_uploads"`          // Assets uploaded
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`                // Registration timestamp
	LastActive     time.Time `json:"lastActive" db:"last_active"`              // Last login or mutation
}

// Get returns the current value of a counter.
func (u User) Get(c Counter) int64 {
	if c == CounterUploads {
		return u.TotalUploads
	}
	return u.TotalCreations
}

// Adjust applies delta to a counter, never going below zero.
func (u *User) Adjust(c Counter, delta int) {
	v := u.Get(c) + int64(delta)
	if v < 0 {
		v = 0
	}
	if c == CounterUploads {
		u.TotalUploads = v
	} else {
		u.TotalCreations = v
	}
}
