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
	userColumns = `id, username, password, password_exp_date, admin_yn, create_date, update_date, delete_date`

	listUsersQuery = `SELECT ` + userColumns + ` FROM users WHERE delete_date IS NULL ORDER BY id`

	selectUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id=$1 AND delete_date IS NULL`

	selectUserByUsernameQuery = `SELECT ` + userColumns + ` FROM users WHERE username=$1`

	insertUserQuery = `
INSERT INTO users(username, password, password_exp_date, admin_yn)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

	updateUsernameQuery = `
UPDATE users SET username=$2, update_date=NOW()
WHERE id=$1 AND delete_date IS NULL
RETURNING ` + userColumns

	softDeleteUserQuery = `
UPDATE users SET delete_date=NOW(), update_date=NOW()
WHERE id=$1 AND delete_date IS NULL
RETURNING id`

	restoreUserQuery = `
UPDATE users SET delete_date=NULL, update_date=NOW()
WHERE id=$1 AND delete_date IS NOT NULL
RETURNING id`
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.PasswordExpires,
		&u.Admin, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	u.Status = entities.UserActive
	if u.DeletedAt != nil {
		u.Status = entities.UserDeleted
	}
	return &u, nil
}

// ListUsers returns all users that are not soft-deleted.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetUser returns an active user by id; soft-deleted rows are treated as missing.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername returns a user by username, including soft-deleted rows.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByUsernameQuery, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user row. A username collision is reported by the
// unique index even when the check-then-insert race fires.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery,
		user.Username, user.Password, user.PasswordExpires, user.Admin))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// UpdateUsername renames an active user.
func (p *Postgres) UpdateUsername(ctx context.Context, id int64, username string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, updateUsernameQuery, id, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to update username", "error", err, "user_id", id)
		return nil, fmt.Errorf("update username: %w", err)
	}

	p.log.Infow("username updated", "user_id", id, "username", username)
	return u, nil
}

// SoftDeleteUser marks an active user deleted.
func (p *Postgres) SoftDeleteUser(ctx context.Context, id int64) error {
	var deletedID int64
	if err := p.db.QueryRow(ctx, softDeleteUserQuery, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrUserNotFound
		}
		p.log.Errorw("failed to soft-delete user", "error", err, "user_id", id)
		return fmt.Errorf("soft delete user: %w", err)
	}

	p.log.Infow("user soft-deleted", "user_id", id)
	return nil
}

// RestoreUser clears the delete marker of a soft-deleted user. Active or
// missing users both report not found.
func (p *Postgres) RestoreUser(ctx context.Context, id int64) error {
	var restoredID int64
	if err := p.db.QueryRow(ctx, restoreUserQuery, id).Scan(&restoredID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrUserNotFound
		}
		p.log.Errorw("failed to restore user", "error", err, "user_id", id)
		return fmt.Errorf("restore user: %w", err)
	}

	p.log.Infow("user restored", "user_id", id)
	return nil
}
