package service

import (
	"context"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/repository"
)

// FormatCapacity describes how many teams the roster supports in one format
type FormatCapacity struct {
	PlayersPerTeam int  `json:"playersPerTeam"`
	MaxTeams       int  `json:"maxTeams"`
	CanDraw        bool `json:"canDraw"`
}

// RosterStats represents a summary of the registered roster
type RosterStats struct {
	Total    int                                  `json:"total"`
	Setters  int                                  `json:"setters"`
	Liberos  int                                  `json:"liberos"`
	Generics int                                  `json:"generics"`
	Formats  map[domain.GameFormat]FormatCapacity `json:"formats"`
}

// StatsService handles roster statistics queries
type StatsService struct {
	playerRepo repository.PlayerRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(playerRepo repository.PlayerRepository) *StatsService {
	return &StatsService{playerRepo: playerRepo}
}

// RosterStats returns position counts and the largest drawable team count per format
func (s *StatsService) RosterStats(ctx context.Context) (*RosterStats, error) {
	counts, err := s.playerRepo.CountByPosition(ctx)
	if err != nil {
		return nil, err
	}

	stats := &RosterStats{
		Setters:  counts[domain.PositionSetter],
		Liberos:  counts[domain.PositionLibero],
		Generics: counts[domain.PositionGeneric],
		Formats:  make(map[domain.GameFormat]FormatCapacity, 2),
	}
	stats.Total = stats.Setters + stats.Liberos + stats.Generics

	for _, f := range []domain.GameFormat{domain.FormatSmall, domain.FormatLarge} {
		maxTeams := min(stats.Setters, stats.Liberos, stats.Total/f.PlayersPerTeam(), domain.MaxTeams)
		stats.Formats[f] = FormatCapacity{
			PlayersPerTeam: f.PlayersPerTeam(),
			MaxTeams:       maxTeams,
			CanDraw:        maxTeams >= domain.MinTeams,
		}
	}

	return stats, nil
}
