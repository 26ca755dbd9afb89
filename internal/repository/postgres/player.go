package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/volley-draw/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository для PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List возвращает всех игроков в порядке регистрации
func (r *PlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	query := `
		SELECT id, name, position
		FROM players
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
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

// Create сохраняет игрока, ID присваивается последовательностью
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (name, position)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, player.Name, player.Position).Scan(&player.ID)
}

// Delete удаляет игрока по ID
func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// CountByPosition возвращает количество игроков на каждой позиции
func (r *PlayerRepository) CountByPosition(ctx context.Context) (map[domain.Position]int, error) {
	query := `
		SELECT position, COUNT(*)
		FROM players
		GROUP BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Position]int, 3)
	for rows.Next() {
		var (
			pos   domain.Position
			count int
		)
		if err := rows.Scan(&pos, &count); err != nil {
			return nil, err
		}
		counts[pos] = count
	}

	return counts, rows.Err()
}
