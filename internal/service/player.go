package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/repository"
)

const maxPlayerNameLength = 100

// PlayerService handles registration of players
type PlayerService struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

// List returns all registered players
func (s *PlayerService) List(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.List(ctx)
}

// Create validates and registers a new player
func (s *PlayerService) Create(ctx context.Context, name, position string) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxPlayerNameLength {
		return nil, domain.ErrInvalidPlayerName
	}

	pos, err := domain.ParsePosition(position)
	if err != nil {
		return nil, err
	}

	player := &domain.Player{
		Name:     name,
		Position: pos,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Delete removes a player. Already saved sessions keep their own copy of the player.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	return s.playerRepo.Delete(ctx, id)
}
