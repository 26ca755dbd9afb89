package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aidar/volley-draw/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository в памяти процесса
type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]domain.Player
	nextID  int64
}

// NewPlayerRepository создает пустое хранилище игроков
func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		players: make(map[int64]domain.Player),
		nextID:  1,
	}
}

// List возвращает копии всех игроков, упорядоченные по ID
func (r *PlayerRepository) List(_ context.Context) ([]*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]*domain.Player, 0, len(r.players))
	for _, p := range r.players {
		p := p
		players = append(players, &p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	return players, nil
}

// Create присваивает игроку следующий ID и сохраняет его
func (r *PlayerRepository) Create(_ context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player.ID = r.nextID
	r.nextID++
	r.players[player.ID] = *player

	return nil
}

// Delete удаляет игрока по ID
func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(r.players, id)

	return nil
}

// CountByPosition возвращает количество игроков на каждой позиции
func (r *PlayerRepository) CountByPosition(_ context.Context) (map[domain.Position]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.Position]int, 3)
	for _, p := range r.players {
		counts[p.Position]++
	}

	return counts, nil
}
