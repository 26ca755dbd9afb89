package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aidar/volley-draw/internal/domain"
)

// SessionRepository implements repository.SessionRepository on SQLite.
// Teams are stored as a JSON snapshot.
type SessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionRepository wraps an opened SQLite handle.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_type, number_of_teams, teams, created_at
		FROM game_sessions
		ORDER BY created_at DESC, id DESC`)
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

func (r *SessionRepository) Get(ctx context.Context, id int64) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, game_type, number_of_teams, teams, created_at
		FROM game_sessions
		WHERE id = ?`, id)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	teams, err := json.Marshal(session.Teams)
	if err != nil {
		return fmt.Errorf("encode teams: %w", err)
	}

	createdAt := r.now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO game_sessions (game_type, number_of_teams, teams, created_at) VALUES (?, ?, ?, ?)`,
		string(session.GameFormat), session.TeamCount, string(teams), toMillis(createdAt),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	session.ID = id
	session.CreatedAt = fromMillis(toMillis(createdAt))

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM game_sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s         domain.Session
		format    string
		teams     string
		createdAt int64
	)
	if err := row.Scan(&s.ID, &format, &s.TeamCount, &teams, &createdAt); err != nil {
		return nil, err
	}
	s.GameFormat = domain.GameFormat(format)
	s.CreatedAt = fromMillis(createdAt)
	if err := json.Unmarshal([]byte(teams), &s.Teams); err != nil {
		return nil, fmt.Errorf("decode teams of session %d: %w", s.ID, err)
	}
	return &s, nil
}
