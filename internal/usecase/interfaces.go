// Package usecase exposes the application service layer.
package usecase

import (
	"context"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, username string) (*entities.User, error)
	UpdateUsername(ctx context.Context, id int64, username string) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
	RestoreUser(ctx context.Context, id int64) error
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, id int64) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
}

// GameUsecaseInterface abstracts game-related operations.
type GameUsecaseInterface interface {
	Games(ctx context.Context) ([]entities.Game, error)
	Game(ctx context.Context, id int64) (*entities.Game, error)
	CreateGame(ctx context.Context, draft entities.GameDraft) (*entities.Game, error)
}

// PickUsecaseInterface abstracts pick-related operations.
type PickUsecaseInterface interface {
	Picks(ctx context.Context) ([]entities.Pick, error)
	Pick(ctx context.Context, id int64) (*entities.Pick, error)
	CreatePick(ctx context.Context, pick entities.Pick) (*entities.Pick, error)
}
