package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/volley-draw/internal/domain"
)

// SessionRepository реализует repository.SessionRepository для PostgreSQL.
// Команды хранятся в колонке JSONB как снимок на момент сохранения.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository создает новый экземпляр SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// List возвращает все сессии, новые первыми
func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `
		SELECT id, game_type, number_of_teams, teams, created_at
		FROM game_sessions
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Get получает сессию по ID
func (r *SessionRepository) Get(ctx context.Context, id int64) (*domain.Session, error) {
	query := `
		SELECT id, game_type, number_of_teams, teams, created_at
		FROM game_sessions
		WHERE id = $1
	`

	s, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return s, nil
}

// Create сохраняет сессию, ID и время создания назначает база данных
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	teams, err := json.Marshal(session.Teams)
	if err != nil {
		return fmt.Errorf("failed to encode teams: %w", err)
	}

	query := `
		INSERT INTO game_sessions (game_type, number_of_teams, teams)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query, session.GameFormat, session.TeamCount, teams).
		Scan(&session.ID, &session.CreatedAt)
}

// Delete удаляет сессию по ID
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM game_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s     domain.Session
		teams []byte
	)
	if err := row.Scan(&s.ID, &s.GameFormat, &s.TeamCount, &teams, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(teams, &s.Teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams of session %d: %w", s.ID, err)
	}
	return &s, nil
}
