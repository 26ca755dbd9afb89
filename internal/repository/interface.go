package repository

import (
	"context"

	"github.com/aidar/volley-draw/internal/domain"
)

// PlayerRepository определяет методы для работы с зарегистрированными игроками
type PlayerRepository interface {
	// List возвращает всех игроков в порядке регистрации
	List(ctx context.Context) ([]*domain.Player, error)

	// Create сохраняет игрока и присваивает ему ID
	Create(ctx context.Context, player *domain.Player) error

	// Delete удаляет игрока по ID
	Delete(ctx context.Context, id int64) error

	// CountByPosition возвращает количество игроков на каждой позиции
	CountByPosition(ctx context.Context) (map[domain.Position]int, error)
}

// SessionRepository определяет методы для работы с историей жеребьевок
type SessionRepository interface {
	// List возвращает все сессии, новые первыми
	List(ctx context.Context) ([]*domain.Session, error)

	// Get получает сессию по ID
	Get(ctx context.Context, id int64) (*domain.Session, error)

	// Create сохраняет сессию, присваивает ID и время создания
	Create(ctx context.Context, session *domain.Session) error

	// Delete удаляет сессию по ID
	Delete(ctx context.Context, id int64) error
}
