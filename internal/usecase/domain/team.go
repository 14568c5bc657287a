package domain

import (
	"context"
	"fmt"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

const maxAbbrLen = 3

// Teams returns all teams.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// Team returns a team by id.
func (u *Usecase) Team(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}

// CreateTeam creates a team with a unique abbreviation.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.City == "" || team.Name == "" || team.Abbr == "" {
		u.log.Errorw("failed to create team: missing fields", "city", team.City, "name", team.Name, "abbr", team.Abbr)
		return nil, fmt.Errorf("%w: city, name and abbr are required", entities.ErrInvalidArgument)
	}
	if len(team.Abbr) > maxAbbrLen {
		return nil, fmt.Errorf("%w: abbr is at most %d characters", entities.ErrInvalidArgument, maxAbbrLen)
	}

	return u.repo.CreateTeam(ctx, team)
}
