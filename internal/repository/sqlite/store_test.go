package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/volley-draw/internal/domain"
)

func openTestDB(t *testing.T) *PlayerRepository {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPlayerRepository(db)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestPlayerRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	setter := &domain.Player{Name: "Alice", Position: domain.PositionSetter}
	libero := &domain.Player{Name: "Bob", Position: domain.PositionLibero}
	require.NoError(t, repo.Create(ctx, setter))
	require.NoError(t, repo.Create(ctx, libero))
	assert.Equal(t, int64(1), setter.ID)
	assert.Equal(t, int64(2), libero.ID)

	players, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, *setter, *players[0])
	assert.Equal(t, *libero, *players[1])

	counts, err := repo.CountByPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Position]int{domain.PositionSetter: 1, domain.PositionLibero: 1}, counts)

	require.NoError(t, repo.Delete(ctx, setter.ID))
	assert.ErrorIs(t, repo.Delete(ctx, setter.ID), domain.ErrPlayerNotFound)

	players, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
}

func TestPlayerRepository_RejectsUnknownPosition(t *testing.T) {
	repo := openTestDB(t)
	err := repo.Create(context.Background(), &domain.Player{Name: "X", Position: "coach"})
	assert.Error(t, err)
}

func TestSessionRepository_RoundTripAndOrdering(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "draws.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSessionRepository(db)
	base := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	teams := []domain.Team{
		{
			Name:    domain.TeamName(0),
			Colors:  domain.TeamColors(0),
			Setter:  &domain.Player{ID: 1, Name: "Alice", Position: domain.PositionSetter},
			Libero:  &domain.Player{ID: 2, Name: "Bob", Position: domain.PositionLibero},
			Players: []*domain.Player{{ID: 5, Name: "Eve", Position: domain.PositionGeneric}},
		},
	}
	older := &domain.Session{GameFormat: domain.FormatSmall, TeamCount: 2, Teams: teams}
	newer := &domain.Session{GameFormat: domain.FormatLarge, TeamCount: 3, Teams: teams}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatSmall, got.GameFormat)
	assert.Equal(t, 2, got.TeamCount)
	assert.Equal(t, teams, got.Teams)
	assert.True(t, older.CreatedAt.Equal(got.CreatedAt))

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.Get(ctx, older.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), domain.ErrSessionNotFound)
}

func TestRepositories_DatabaseErrors(t *testing.T) {
	dbErr := errors.New("disk I/O error")

	tests := []struct {
		name     string
		mockFunc func(sqlmock.Sqlmock)
		call     func(*PlayerRepository, *SessionRepository) error
	}{
		{
			name: "list players",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, position FROM players`)).WillReturnError(dbErr)
			},
			call: func(p *PlayerRepository, _ *SessionRepository) error {
				_, err := p.List(context.Background())
				return err
			},
		},
		{
			name: "create player",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(`INSERT INTO players`)).
					WithArgs("Alice", "setter", sqlmock.AnyArg()).
					WillReturnError(dbErr)
			},
			call: func(p *PlayerRepository, _ *SessionRepository) error {
				return p.Create(context.Background(), &domain.Player{Name: "Alice", Position: domain.PositionSetter})
			},
		},
		{
			name: "delete session",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(`DELETE FROM game_sessions WHERE id = ?`)).
					WithArgs(int64(3)).
					WillReturnError(dbErr)
			},
			call: func(_ *PlayerRepository, s *SessionRepository) error {
				return s.Delete(context.Background(), 3)
			},
		},
		{
			name: "get session",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`FROM game_sessions`)).
					WithArgs(int64(9)).
					WillReturnError(dbErr)
			},
			call: func(_ *PlayerRepository, s *SessionRepository) error {
				_, err := s.Get(context.Background(), 9)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mockFunc(mock)
			err = tt.call(NewPlayerRepository(db), NewSessionRepository(db))
			assert.ErrorIs(t, err, dbErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_CorruptTeams(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "game_type", "number_of_teams", "teams", "created_at"}).
		AddRow(int64(1), "small", 2, "{not json", int64(0))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM game_sessions`)).WillReturnRows(rows)

	_, err = NewSessionRepository(db).List(context.Background())
	assert.ErrorContains(t, err, "decode teams of session 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
