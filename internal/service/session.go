package service

import (
	"context"
	"fmt"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/repository"
)

// SessionService handles the history of saved draws
type SessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
	}
}

// List returns saved sessions, newest first
func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessionRepo.List(ctx)
}

// Get retrieves one saved session
func (s *SessionService) Get(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessionRepo.Get(ctx, id)
}

// Create stores an already drawn set of teams
func (s *SessionService) Create(ctx context.Context, format domain.GameFormat, teamCount int, teams []domain.Team) (*domain.Session, error) {
	if !format.Valid() {
		return nil, domain.ErrInvalidGameFormat
	}
	if !domain.ValidTeamCount(teamCount) {
		return nil, domain.ErrInvalidTeamCount
	}
	if err := validateTeams(format, teamCount, teams); err != nil {
		return nil, err
	}

	session := &domain.Session{
		GameFormat: format,
		TeamCount:  teamCount,
		Teams:      teams,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Delete removes a saved session
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.sessionRepo.Delete(ctx, id)
}

// validateTeams checks that the submitted teams have the shape a draw produces
func validateTeams(format domain.GameFormat, teamCount int, teams []domain.Team) error {
	if len(teams) != teamCount {
		return fmt.Errorf("%w: expected %d teams, got %d", domain.ErrInvalidSession, teamCount, len(teams))
	}

	perTeam := format.PlayersPerTeam() - 2
	for i, t := range teams {
		if t.Setter == nil || t.Libero == nil {
			return fmt.Errorf("%w: team %d must have a setter and a libero", domain.ErrInvalidSession, i+1)
		}
		if len(t.Players) != perTeam {
			return fmt.Errorf("%w: team %d must have %d players besides setter and libero, got %d",
				domain.ErrInvalidSession, i+1, perTeam, len(t.Players))
		}
		for _, p := range t.Players {
			if p == nil {
				return fmt.Errorf("%w: team %d contains an empty player", domain.ErrInvalidSession, i+1)
			}
		}
	}

	return nil
}
