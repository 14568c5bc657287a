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
	teamColumns = `id, team_city, team_name, team_abbr, create_date, update_date`

	listTeamsQuery = `SELECT ` + teamColumns + ` FROM teams ORDER BY id`

	selectTeamQuery = `SELECT ` + teamColumns + ` FROM teams WHERE id=$1`

	selectTeamByAbbrQuery = `SELECT ` + teamColumns + ` FROM teams WHERE team_abbr=$1`

	insertTeamQuery = `
INSERT INTO teams(team_city, team_name, team_abbr)
VALUES ($1, $2, $3)
RETURNING ` + teamColumns
)

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	if err := row.Scan(&t.ID, &t.City, &t.Name, &t.Abbr, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTeams returns all teams.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			p.log.Errorw("failed to scan team", "error", err)
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	return teams, nil
}

// GetTeam returns a team by id.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// GetTeamByAbbr returns a team by its abbreviation.
func (p *Postgres) GetTeamByAbbr(ctx context.Context, abbr string) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamByAbbrQuery, abbr))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team by abbr: %w", err)
	}
	return t, nil
}

// CreateTeam inserts a team; the unique index on team_abbr reports conflicts.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, insertTeamQuery, team.City, team.Name, team.Abbr))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to insert team", "error", err, "abbr", team.Abbr)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", t.ID, "abbr", t.Abbr)
	return t, nil
}
