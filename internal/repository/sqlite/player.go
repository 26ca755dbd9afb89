package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aidar/volley-draw/internal/domain"
)

// PlayerRepository implements repository.PlayerRepository on SQLite.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository wraps an opened SQLite handle.
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, position FROM players ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []*domain.Player{}
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}

	return players, rows.Err()
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO players (name, position, created_at) VALUES (?, ?, ?)`,
		player.Name, string(player.Position), toMillis(time.Now()),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	player.ID = id

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

func (r *PlayerRepository) CountByPosition(ctx context.Context) (map[domain.Position]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT position, COUNT(*) FROM players GROUP BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Position]int, 3)
	for rows.Next() {
		var (
			pos   string
			count int
		)
		if err := rows.Scan(&pos, &count); err != nil {
			return nil, err
		}
		counts[domain.Position(pos)] = count
	}

	return counts, rows.Err()
}
