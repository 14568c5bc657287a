package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// passwordTTL is how long a generated password stays valid.
const passwordTTL = 90 * 24 * time.Hour

// Users returns all active users.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// User returns an active user by id.
func (u *Usecase) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, id)
}

// CreateUser signs up a user with a generated password. The username must be
// free among active and soft-deleted users alike.
func (u *Usecase) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		u.log.Errorw("failed to create user: missing username")
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	if err := u.checkUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(randomPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.repo.CreateUser(ctx, entities.User{
		Username:        username,
		Password:        string(hash),
		PasswordExpires: time.Now().Add(passwordTTL),
		Admin:           false,
	})
}

// UpdateUsername renames a user. A request that changes nothing is reported
// as ErrNoChanges rather than silently succeeding.
func (u *Usecase) UpdateUsername(ctx context.Context, id int64, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Username == username {
		return nil, entities.ErrNoChanges
	}

	if err := u.checkUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	return u.repo.UpdateUsername(ctx, id, username)
}

// DeleteUser soft-deletes a user.
func (u *Usecase) DeleteUser(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.SoftDeleteUser(ctx, id)
}

// RestoreUser reactivates a soft-deleted user.
func (u *Usecase) RestoreUser(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RestoreUser(ctx, id)
}

// checkUsernameFree reports ErrUserExists when any row, active or deleted,
// holds the username. The unique index remains the backstop for the
// check-then-insert window.
func (u *Usecase) checkUsernameFree(ctx context.Context, username string) error {
	_, err := u.repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return fmt.Errorf("%w: username %q is taken", entities.ErrUserExists, username)
	case errors.Is(err, entities.ErrUserNotFound):
		return nil
	default:
		return err
	}
}
