// Package entities contains core business entities.
package entities

import "time"

// Pick is a user's predicted winner for a game. At most one pick exists
// per (user, game) pair.
type Pick struct {
	ID              int64
	UserID          int64
	GameID          int64
	TeamID          int64
	TieBreakerScore *int
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}
