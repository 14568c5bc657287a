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
	pickColumns = `id, user_id, game_id, team_id, tie_breaker_score, create_date, update_date`

	listPicksQuery = `SELECT ` + pickColumns + ` FROM picks ORDER BY id`

	selectPickQuery = `SELECT ` + pickColumns + ` FROM picks WHERE id=$1`

	insertPickQuery = `
INSERT INTO picks(user_id, game_id, team_id, tie_breaker_score)
VALUES ($1, $2, $3, $4)
RETURNING ` + pickColumns
)

func scanPick(row pgx.Row) (*entities.Pick, error) {
	var pk entities.Pick
	if err := row.Scan(&pk.ID, &pk.UserID, &pk.GameID, &pk.TeamID,
		&pk.TieBreakerScore, &pk.CreatedAt, &pk.UpdatedAt); err != nil {
		return nil, err
	}
	return &pk, nil
}

// ListPicks returns all picks without relation loading.
func (p *Postgres) ListPicks(ctx context.Context) ([]entities.Pick, error) {
	rows, err := p.db.Query(ctx, listPicksQuery)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	defer rows.Close()

	picks := make([]entities.Pick, 0)
	for rows.Next() {
		pk, err := scanPick(rows)
		if err != nil {
			p.log.Errorw("failed to scan pick", "error", err)
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		picks = append(picks, *pk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate picks: %w", err)
	}

	return picks, nil
}

// GetPick returns a pick by id.
func (p *Postgres) GetPick(ctx context.Context, id int64) (*entities.Pick, error) {
	pk, err := scanPick(p.db.QueryRow(ctx, selectPickQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPickNotFound
		}
		return nil, fmt.Errorf("get pick: %w", err)
	}
	return pk, nil
}

// CreatePick inserts a pick. Referenced rows are not pre-checked: the store
// reports a duplicate (user, game) pair as 23505 and a missing user, game or
// team as 23503, which map to distinct sentinel errors.
func (p *Postgres) CreatePick(ctx context.Context, pick entities.Pick) (*entities.Pick, error) {
	pk, err := scanPick(p.db.QueryRow(ctx, insertPickQuery,
		pick.UserID, pick.GameID, pick.TeamID, pick.TieBreakerScore))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrPickExists
			case "23503":
				return nil, entities.ErrUnknownReference
			}
		}
		p.log.Errorw("failed to insert pick", "error", err, "user_id", pick.UserID, "game_id", pick.GameID)
		return nil, fmt.Errorf("insert pick: %w", err)
	}

	p.log.Infow("pick created", "pick_id", pk.ID, "user_id", pk.UserID, "game_id", pk.GameID)
	return pk, nil
}
