package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	gameJoinedColumns = `
g.id, g.season, g.week, g.game_type, g.start_time,
g.home_team_id, g.away_team_id, g.home_score, g.away_score,
g.tie_breaker, g.tie_breaker_order, g.create_date, g.update_date,
h.id, h.team_city, h.team_name, h.team_abbr, h.create_date, h.update_date,
a.id, a.team_city, a.team_name, a.team_abbr, a.create_date, a.update_date`

	gameJoins = `
FROM games g
JOIN teams h ON h.id = g.home_team_id
JOIN teams a ON a.id = g.away_team_id`

	listGamesQuery = `SELECT ` + gameJoinedColumns + gameJoins + ` ORDER BY g.id`

	selectGameQuery = `SELECT ` + gameJoinedColumns + gameJoins + ` WHERE g.id=$1`

	insertGameQuery = `
INSERT INTO games(season, week, game_type, start_time, home_team_id, away_team_id,
                  home_score, away_score, tie_breaker, tie_breaker_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
)

func scanGame(row pgx.Row) (*entities.Game, error) {
	var g entities.Game
	var home, away entities.Team
	if err := row.Scan(
		&g.ID, &g.Season, &g.Week, &g.GameType, &g.Start,
		&g.HomeTeamID, &g.AwayTeamID, &g.HomeScore, &g.AwayScore,
		&g.TieBreaker, &g.TieBreakerOrder, &g.CreatedAt, &g.UpdatedAt,
		&home.ID, &home.City, &home.Name, &home.Abbr, &home.CreatedAt, &home.UpdatedAt,
		&away.ID, &away.City, &away.Name, &away.Abbr, &away.CreatedAt, &away.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.HomeTeam = &home
	g.AwayTeam = &away
	return &g, nil
}

// ListGames returns all games with home and away teams loaded.
func (p *Postgres) ListGames(ctx context.Context) ([]entities.Game, error) {
	rows, err := p.db.Query(ctx, listGamesQuery)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]entities.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			p.log.Errorw("failed to scan game", "error", err)
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}

	return games, nil
}

// GetGame returns a game by id with home and away teams loaded.
func (p *Postgres) GetGame(ctx context.Context, id int64) (*entities.Game, error) {
	g, err := scanGame(p.db.QueryRow(ctx, selectGameQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return g, nil
}

// CreateGame inserts a game and returns it with team relations loaded.
func (p *Postgres) CreateGame(ctx context.Context, game entities.Game) (*entities.Game, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertGameQuery,
		game.Season, game.Week, game.GameType, game.Start,
		game.HomeTeamID, game.AwayTeamID, game.HomeScore, game.AwayScore,
		game.TieBreaker, game.TieBreakerOrder,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert game", "error", err, "season", game.Season, "week", game.Week)
		return nil, fmt.Errorf("insert game: %w", err)
	}

	p.log.Infow("game created", "game_id", id, "season", game.Season, "week", game.Week)
	return p.GetGame(ctx, id)
}
