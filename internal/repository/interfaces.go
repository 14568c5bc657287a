// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations. Reads exclude soft-deleted
// rows unless noted; username lookups span deleted rows because the
// uniqueness rule covers them too.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUsername(ctx context.Context, id int64, username string) (*entities.User, error)
	SoftDeleteUser(ctx context.Context, id int64) error
	RestoreUser(ctx context.Context, id int64) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	GetTeamByAbbr(ctx context.Context, abbr string) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
}

// GameInterface exposes game-related operations. Reads load home and away
// team relations eagerly.
type GameInterface interface {
	ListGames(ctx context.Context) ([]entities.Game, error)
	GetGame(ctx context.Context, id int64) (*entities.Game, error)
	CreateGame(ctx context.Context, game entities.Game) (*entities.Game, error)
}

// PickInterface exposes pick-related operations.
type PickInterface interface {
	ListPicks(ctx context.Context) ([]entities.Pick, error)
	GetPick(ctx context.Context, id int64) (*entities.Pick, error)
	CreatePick(ctx context.Context, pick entities.Pick) (*entities.Pick, error)
}
