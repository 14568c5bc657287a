package domain

import (
	"context"
	"fmt"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

// Picks returns all picks.
func (u *Usecase) Picks(ctx context.Context) ([]entities.Pick, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListPicks(ctx)
}

// Pick returns a pick by id.
func (u *Usecase) Pick(ctx context.Context, id int64) (*entities.Pick, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: pick id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetPick(ctx, id)
}

// CreatePick persists a pick. Referenced rows are not pre-checked; the
// repository maps the store's constraint violations to distinct errors.
func (u *Usecase) CreatePick(ctx context.Context, pick entities.Pick) (*entities.Pick, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if pick.UserID <= 0 || pick.GameID <= 0 || pick.TeamID <= 0 {
		return nil, fmt.Errorf("%w: userID, gameID and teamID are required", entities.ErrInvalidArgument)
	}
	return u.repo.CreatePick(ctx, pick)
}
