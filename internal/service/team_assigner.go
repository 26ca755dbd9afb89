package service

import (
	"math/rand/v2"

	"github.com/aidar/volley-draw/internal/domain"
)

// TeamAssigner splits a roster into teams with one setter and one libero each.
// It keeps no mutable state: every call builds its own random generator,
// so concurrent draws never share anything.
type TeamAssigner struct {
	seed func() (uint64, uint64)
}

// NewTeamAssigner creates a TeamAssigner seeded from the runtime random source
func NewTeamAssigner() *TeamAssigner {
	return &TeamAssigner{
		seed: func() (uint64, uint64) {
			return rand.Uint64(), rand.Uint64()
		},
	}
}

// Assign draws teamCount teams from roster.
// Preconditions are checked in order: setters, liberos, total roster size.
// The roster slice is never modified.
func (a *TeamAssigner) Assign(roster []*domain.Player, format domain.GameFormat, teamCount int) ([]domain.Team, error) {
	if teamCount < 1 || teamCount > domain.MaxTeams {
		return nil, domain.ErrInvalidTeamCount
	}
	if !format.Valid() {
		return nil, domain.ErrInvalidGameFormat
	}

	setters, liberos, generics := partitionByPosition(roster)

	if len(setters) < teamCount {
		return nil, &domain.InsufficientPlayersError{Kind: domain.ShortageSetters, Required: teamCount, Available: len(setters)}
	}
	if len(liberos) < teamCount {
		return nil, &domain.InsufficientPlayersError{Kind: domain.ShortageLiberos, Required: teamCount, Available: len(liberos)}
	}

	playersPerTeam := format.PlayersPerTeam()
	if required := teamCount * playersPerTeam; len(roster) < required {
		return nil, &domain.InsufficientPlayersError{Kind: domain.ShortageTotal, Required: required, Available: len(roster)}
	}

	rng := rand.New(rand.NewPCG(a.seed()))

	setters = shuffle(rng, setters)
	liberos = shuffle(rng, liberos)
	generics = shuffle(rng, generics)

	teams := make([]domain.Team, teamCount)
	for i := range teams {
		teams[i] = domain.Team{
			Name:   domain.TeamName(i),
			Colors: domain.TeamColors(i),
			Setter: setters[i],
			Libero: liberos[i],
		}
	}

	remaining := make([]*domain.Player, 0, len(generics)+len(setters)+len(liberos)-2*teamCount)
	remaining = append(remaining, generics...)
	remaining = append(remaining, setters[teamCount:]...)
	remaining = append(remaining, liberos[teamCount:]...)
	remaining = shuffle(rng, remaining)

	// Players beyond teamCount*perTeam are left out of the draw.
	perTeam := playersPerTeam - 2
	for i := range teams {
		chunk := remaining[i*perTeam : (i+1)*perTeam]
		teams[i].Players = append([]*domain.Player(nil), chunk...)
	}

	return teams, nil
}

func partitionByPosition(roster []*domain.Player) (setters, liberos, generics []*domain.Player) {
	for _, p := range roster {
		switch p.Position {
		case domain.PositionSetter:
			setters = append(setters, p)
		case domain.PositionLibero:
			liberos = append(liberos, p)
		default:
			generics = append(generics, p)
		}
	}
	return setters, liberos, generics
}

// shuffle returns a uniformly permuted copy of items (Fisher-Yates)
func shuffle[T any](rng *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
