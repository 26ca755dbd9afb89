package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/metrics"
	"github.com/aidar/volley-draw/internal/repository"
)

// DrawService draws teams from the current roster
type DrawService struct {
	playerRepo repository.PlayerRepository
	assigner   *TeamAssigner
	logger     *slog.Logger
}

// NewDrawService creates a new DrawService
func NewDrawService(playerRepo repository.PlayerRepository, assigner *TeamAssigner, logger *slog.Logger) *DrawService {
	return &DrawService{
		playerRepo: playerRepo,
		assigner:   assigner,
		logger:     logger,
	}
}

// Draw validates the request, loads the roster and splits it into teams.
// Nothing is persisted; the caller decides whether to save the result.
func (s *DrawService) Draw(ctx context.Context, format domain.GameFormat, teamCount int) ([]domain.Team, error) {
	if !format.Valid() {
		return nil, domain.ErrInvalidGameFormat
	}
	if !domain.ValidTeamCount(teamCount) {
		return nil, domain.ErrInvalidTeamCount
	}

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	teams, err := s.assigner.Assign(roster, format, teamCount)

	dropped := 0
	if err == nil {
		dropped = len(roster) - teamCount*format.PlayersPerTeam()
	}
	metrics.ObserveDraw(string(format), teamCount, len(roster), dropped, err)

	if err != nil {
		s.logger.InfoContext(ctx, "Team draw rejected",
			"format", format,
			"teams", teamCount,
			"roster", len(roster),
			"error", err,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Teams drawn",
		"format", format,
		"teams", teamCount,
		"roster", len(roster),
		"dropped", dropped,
	)

	return teams, nil
}
