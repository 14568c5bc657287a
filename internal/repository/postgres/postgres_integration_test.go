package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/HumboldtCodeClub/pickem-api/config"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	// Teams.
	gb, err := repo.CreateTeam(ctx, entities.Team{City: "Green Bay", Name: "Packers", Abbr: "GB"})
	require.NoError(t, err)
	require.NotZero(t, gb.ID)

	chi, err := repo.CreateTeam(ctx, entities.Team{City: "Chicago", Name: "Bears", Abbr: "CHI"})
	require.NoError(t, err)

	_, err = repo.CreateTeam(ctx, entities.Team{City: "Green Bay", Name: "Packers", Abbr: "GB"})
	require.ErrorIs(t, err, entities.ErrTeamExists)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	byAbbr, err := repo.GetTeamByAbbr(ctx, "GB")
	require.NoError(t, err)
	require.Equal(t, gb.ID, byAbbr.ID)

	_, err = repo.GetTeamByAbbr(ctx, "XX")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	// Users.
	alice, err := repo.CreateUser(ctx, entities.User{
		Username:        "alice",
		Password:        "$2a$10$hash",
		PasswordExpires: time.Now().Add(90 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, entities.UserActive, alice.Status)
	require.Nil(t, alice.DeletedAt)

	_, err = repo.CreateUser(ctx, entities.User{
		Username:        "alice",
		Password:        "$2a$10$hash",
		PasswordExpires: time.Now().Add(90 * 24 * time.Hour),
	})
	require.ErrorIs(t, err, entities.ErrUserExists)

	renamed, err := repo.UpdateUsername(ctx, alice.ID, "carol")
	require.NoError(t, err)
	require.Equal(t, "carol", renamed.Username)

	require.NoError(t, repo.SoftDeleteUser(ctx, alice.ID))

	_, err = repo.GetUser(ctx, alice.ID)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	// Username lookups span soft-deleted rows.
	deleted, err := repo.GetUserByUsername(ctx, "carol")
	require.NoError(t, err)
	require.Equal(t, entities.UserDeleted, deleted.Status)
	require.NotNil(t, deleted.DeletedAt)

	// The unique index also spans soft-deleted rows.
	_, err = repo.CreateUser(ctx, entities.User{
		Username:        "carol",
		Password:        "$2a$10$hash",
		PasswordExpires: time.Now().Add(90 * 24 * time.Hour),
	})
	require.ErrorIs(t, err, entities.ErrUserExists)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	require.NoError(t, repo.RestoreUser(ctx, alice.ID))

	restored, err := repo.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserActive, restored.Status)

	require.ErrorIs(t, repo.RestoreUser(ctx, alice.ID), entities.ErrUserNotFound)
	require.ErrorIs(t, repo.RestoreUser(ctx, 9999), entities.ErrUserNotFound)

	// Games.
	kickoff := time.Date(2024, 9, 8, 13, 0, 0, 0, time.UTC)
	game, err := repo.CreateGame(ctx, entities.Game{
		Season:     2024,
		Week:       1,
		GameType:   entities.DefaultGameType,
		Start:      kickoff,
		HomeTeamID: gb.ID,
		AwayTeamID: chi.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, game.HomeTeam)
	require.Equal(t, "GB", game.HomeTeam.Abbr)
	require.NotNil(t, game.AwayTeam)
	require.Equal(t, "CHI", game.AwayTeam.Abbr)

	games, err := repo.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.NotNil(t, games[0].HomeTeam)

	fetched, err := repo.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.AwayTeam)

	_, err = repo.GetGame(ctx, 9999)
	require.ErrorIs(t, err, entities.ErrGameNotFound)

	// Picks.
	score := 41
	pick, err := repo.CreatePick(ctx, entities.Pick{
		UserID:          alice.ID,
		GameID:          game.ID,
		TeamID:          gb.ID,
		TieBreakerScore: &score,
	})
	require.NoError(t, err)
	require.NotZero(t, pick.ID)

	_, err = repo.CreatePick(ctx, entities.Pick{
		UserID: alice.ID,
		GameID: game.ID,
		TeamID: chi.ID,
	})
	require.ErrorIs(t, err, entities.ErrPickExists)

	_, err = repo.CreatePick(ctx, entities.Pick{
		UserID: alice.ID,
		GameID: game.ID + 100,
		TeamID: gb.ID,
	})
	require.ErrorIs(t, err, entities.ErrUnknownReference)

	picks, err := repo.ListPicks(ctx)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	require.NotNil(t, picks[0].TieBreakerScore)
	require.Equal(t, score, *picks[0].TieBreakerScore)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=pickem_password",
			"POSTGRES_USER=pickem_username",
			"POSTGRES_DB=pickem_database",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           port,
			Username:       "pickem_username",
			Password:       "pickem_password",
			Name:           "pickem_database",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=pickem_username password=pickem_password dbname=pickem_database sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
