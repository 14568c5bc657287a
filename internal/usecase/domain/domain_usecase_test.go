package domain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
	"github.com/HumboldtCodeClub/pickem-api/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUsername(ctx context.Context, id int64, username string) (*entities.User, error) {
	args := m.Called(ctx, id, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) SoftDeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) RestoreUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeamByAbbr(ctx context.Context, abbr string) (*entities.Team, error) {
	args := m.Called(ctx, abbr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListGames(ctx context.Context) ([]entities.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Game), args.Error(1)
}

func (m *repoMock) GetGame(ctx context.Context, id int64) (*entities.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

func (m *repoMock) CreateGame(ctx context.Context, game entities.Game) (*entities.Game, error) {
	args := m.Called(ctx, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

func (m *repoMock) ListPicks(ctx context.Context) ([]entities.Pick, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Pick), args.Error(1)
}

func (m *repoMock) GetPick(ctx context.Context, id int64) (*entities.Pick, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pick), args.Error(1)
}

func (m *repoMock) CreatePick(ctx context.Context, pick entities.Pick) (*entities.Pick, error) {
	args := m.Called(ctx, pick)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pick), args.Error(1)
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func TestRandomPassword(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := randomPassword()
		require.Len(t, pw, 11)
		require.Equal(t, byte('-'), pw[3])
		require.Equal(t, byte('-'), pw[7])
		for pos, ch := range pw {
			if pos == 3 || pos == 7 {
				continue
			}
			require.Contains(t, passwordCharset, string(ch))
		}
	}
}

func TestUsecase_CreateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateUser(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserDuplicateIncludesDeleted(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	deleted := time.Now()
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(&entities.User{
		ID:        7,
		Username:  "alice",
		Status:    entities.UserDeleted,
		DeletedAt: &deleted,
	}, nil)

	_, err := uc.CreateUser(context.Background(), "alice")
	require.ErrorIs(t, err, entities.ErrUserExists)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserGeneratesCredentials(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, entities.ErrUserNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		if u.Username != "alice" || u.Admin {
			return false
		}
		if !strings.HasPrefix(u.Password, "$2") {
			return false
		}
		ttl := time.Until(u.PasswordExpires)
		return ttl > 89*24*time.Hour && ttl <= 90*24*time.Hour
	})).Return(&entities.User{ID: 1, Username: "alice", Status: entities.UserActive}, nil)

	user, err := uc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUsernameNoChanges(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetUser", mock.Anything, int64(1)).Return(&entities.User{
		ID:       1,
		Username: "alice",
		Status:   entities.UserActive,
	}, nil)

	_, err := uc.UpdateUsername(context.Background(), 1, "alice")
	require.ErrorIs(t, err, entities.ErrNoChanges)
	repo.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUsernameDuplicate(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetUser", mock.Anything, int64(1)).Return(&entities.User{
		ID:       1,
		Username: "alice",
		Status:   entities.UserActive,
	}, nil)
	repo.On("GetUserByUsername", mock.Anything, "bob").Return(&entities.User{
		ID:       2,
		Username: "bob",
		Status:   entities.UserActive,
	}, nil)

	_, err := uc.UpdateUsername(context.Background(), 1, "bob")
	require.ErrorIs(t, err, entities.ErrUserExists)
	repo.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUsernameDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetUser", mock.Anything, int64(1)).Return(&entities.User{
		ID:       1,
		Username: "alice",
		Status:   entities.UserActive,
	}, nil)
	repo.On("GetUserByUsername", mock.Anything, "bob").Return(nil, entities.ErrUserNotFound)
	repo.On("UpdateUsername", mock.Anything, int64(1), "bob").Return(&entities.User{
		ID:       1,
		Username: "bob",
		Status:   entities.UserActive,
	}, nil)

	user, err := uc.UpdateUsername(context.Background(), 1, "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateTeam(context.Background(), entities.Team{City: "Green Bay"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTeam(context.Background(), entities.Team{City: "Green Bay", Name: "Packers", Abbr: "PACK"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestUsecase_CreateGameBadTimestamp(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateGame(context.Background(), entities.GameDraft{
		Season:       2024,
		Week:         1,
		Start:        "next sunday",
		HomeTeamAbbr: "GB",
		AwayTeamAbbr: "CHI",
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetTeamByAbbr", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}

func TestUsecase_CreateGameUnknownTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetTeamByAbbr", mock.Anything, "XX").Return(nil, entities.ErrTeamNotFound)

	_, err := uc.CreateGame(context.Background(), entities.GameDraft{
		Season:       2024,
		Week:         1,
		Start:        "2024-09-08 13:00:00",
		HomeTeamAbbr: "XX",
		AwayTeamAbbr: "CHI",
	})
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	repo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}

func TestUsecase_CreateGameDefaultsType(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetTeamByAbbr", mock.Anything, "GB").Return(&entities.Team{ID: 1, Abbr: "GB"}, nil)
	repo.On("GetTeamByAbbr", mock.Anything, "CHI").Return(&entities.Team{ID: 2, Abbr: "CHI"}, nil)
	repo.On("CreateGame", mock.Anything, mock.MatchedBy(func(g entities.Game) bool {
		return g.GameType == entities.DefaultGameType && g.HomeTeamID == 1 && g.AwayTeamID == 2
	})).Return(&entities.Game{ID: 3, Season: 2024, Week: 1, GameType: entities.DefaultGameType}, nil)

	game, err := uc.CreateGame(context.Background(), entities.GameDraft{
		Season:       2024,
		Week:         1,
		Start:        "2024-09-08 13:00:00",
		HomeTeamAbbr: "GB",
		AwayTeamAbbr: "CHI",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), game.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_CreatePickValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreatePick(context.Background(), entities.Pick{UserID: 1, GameID: 0, TeamID: 2})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreatePick", mock.Anything, mock.Anything)
}

func TestUsecase_CreatePickDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	score := 37
	expected := &entities.Pick{ID: 1, UserID: 1, GameID: 2, TeamID: 3, TieBreakerScore: &score}
	repo.On("CreatePick", mock.Anything, mock.MatchedBy(func(p entities.Pick) bool {
		return p.UserID == 1 && p.GameID == 2 && p.TeamID == 3
	})).Return(expected, nil)

	pick, err := uc.CreatePick(context.Background(), entities.Pick{UserID: 1, GameID: 2, TeamID: 3, TieBreakerScore: &score})
	require.NoError(t, err)
	require.Equal(t, expected, pick)
	repo.AssertExpectations(t)
}
