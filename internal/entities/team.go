// Package entities contains core business entities.
package entities

import "time"

// Team is an NFL franchise referenced by games and picks.
type Team struct {
	ID        int64
	City      string
	Name      string
	Abbr      string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}
