package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aidar/volley-draw/internal/domain"
)

// SessionRepository реализует repository.SessionRepository в памяти процесса
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
	nextID   int64
	now      func() time.Time
}

// NewSessionRepository создает пустое хранилище сессий
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[int64]*domain.Session),
		nextID:   1,
		now:      time.Now,
	}
}

// List возвращает все сессии, новые первыми
func (r *SessionRepository) List(_ context.Context) ([]*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, cloneSession(s))
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
		}
		return sessions[i].ID > sessions[j].ID
	})

	return sessions, nil
}

// Get получает сессию по ID
func (r *SessionRepository) Get(_ context.Context, id int64) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return cloneSession(s), nil
}

// Create сохраняет копию сессии, присваивая ID и время создания
func (r *SessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = r.nextID
	r.nextID++
	session.CreatedAt = r.now().UTC()
	r.sessions[session.ID] = cloneSession(session)

	return nil
}

// Delete удаляет сессию по ID
func (r *SessionRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

// cloneSession копирует сессию вместе с игроками, чтобы сохраненные данные
// нельзя было изменить через возвращенные указатели
func cloneSession(s *domain.Session) *domain.Session {
	out := *s
	out.Teams = make([]domain.Team, len(s.Teams))
	for i, t := range s.Teams {
		out.Teams[i] = domain.Team{
			Name:    t.Name,
			Colors:  t.Colors,
			Setter:  clonePlayer(t.Setter),
			Libero:  clonePlayer(t.Libero),
			Players: make([]*domain.Player, len(t.Players)),
		}
		for j, p := range t.Players {
			out.Teams[i].Players[j] = clonePlayer(p)
		}
	}
	return &out
}

func clonePlayer(p *domain.Player) *domain.Player {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
