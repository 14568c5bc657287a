package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

// startTimeLayout is the fixed kickoff format accepted by game creation.
const startTimeLayout = "2006-01-02 15:04:05"

// Games returns all games with team relations loaded.
func (u *Usecase) Games(ctx context.Context) ([]entities.Game, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListGames(ctx)
}

// Game returns a game by id with team relations loaded.
func (u *Usecase) Game(ctx context.Context, id int64) (*entities.Game, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: game id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetGame(ctx, id)
}

// CreateGame resolves the draft's team abbreviations, parses the kickoff
// timestamp and persists the game. An unparseable timestamp is rejected
// instead of being replaced with the current time.
func (u *Usecase) CreateGame(ctx context.Context, draft entities.GameDraft) (*entities.Game, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if draft.HomeTeamAbbr == "" || draft.AwayTeamAbbr == "" {
		return nil, fmt.Errorf("%w: home and away team abbreviations are required", entities.ErrInvalidArgument)
	}

	start, err := time.Parse(startTimeLayout, draft.Start)
	if err != nil {
		u.log.Errorw("failed to parse game start", "error", err, "start", draft.Start)
		return nil, fmt.Errorf("%w: start must use layout %q", entities.ErrInvalidArgument, startTimeLayout)
	}

	home, err := u.repo.GetTeamByAbbr(ctx, draft.HomeTeamAbbr)
	if err != nil {
		return nil, err
	}
	away, err := u.repo.GetTeamByAbbr(ctx, draft.AwayTeamAbbr)
	if err != nil {
		return nil, err
	}

	gameType := draft.GameType
	if gameType == "" {
		gameType = entities.DefaultGameType
	}

	return u.repo.CreateGame(ctx, entities.Game{
		Season:          draft.Season,
		Week:            draft.Week,
		GameType:        gameType,
		Start:           start,
		HomeTeamID:      home.ID,
		AwayTeamID:      away.ID,
		HomeScore:       draft.HomeScore,
		AwayScore:       draft.AwayScore,
		TieBreaker:      draft.TieBreaker,
		TieBreakerOrder: draft.TieBreakerOrder,
	})
}
