// Package entities contains core business entities.
package entities

import "time"

// UserStatus enumerates user lifecycle states.
type UserStatus string

const (
	// UserActive marks a live account.
	UserActive UserStatus = "ACTIVE"
	// UserDeleted marks a soft-deleted account.
	UserDeleted UserStatus = "DELETED"
)

// User is a domain representation of a pool participant.
// Password holds a bcrypt hash, never the cleartext.
type User struct {
	ID              int64
	Username        string
	Password        string
	PasswordExpires time.Time
	Admin           bool
	Status          UserStatus
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}
