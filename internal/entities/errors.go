// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist or is soft-deleted.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict, including soft-deleted holders.
	ErrUserExists = errors.New("user exists")
	// ErrNoChanges signals an update that would not modify the stored row.
	ErrNoChanges = errors.New("no changes")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists signals team abbreviation conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrGameNotFound signals missing game.
	ErrGameNotFound = errors.New("game not found")
	// ErrPickNotFound signals missing pick.
	ErrPickNotFound = errors.New("pick not found")
	// ErrPickExists signals a second pick for the same user and game.
	ErrPickExists = errors.New("pick exists")
	// ErrUnknownReference signals a pick pointing at a missing user, game or team.
	ErrUnknownReference = errors.New("unknown reference")
)
