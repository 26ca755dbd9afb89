package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	// ErrInsufficientPlayers базовая ошибка для всех InsufficientPlayersError
	ErrInsufficientPlayers = errors.New("insufficient players")

	// ErrPlayerNotFound возвращается когда игрок не найден
	ErrPlayerNotFound = errors.New("player not found")

	// ErrSessionNotFound возвращается когда сохраненная сессия не найдена
	ErrSessionNotFound = errors.New("game session not found")

	// ErrInvalidPosition возвращается для неизвестной позиции
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidGameFormat возвращается для неизвестного формата игры
	ErrInvalidGameFormat = errors.New("invalid game type")

	// ErrInvalidTeamCount возвращается когда количество команд вне диапазона
	ErrInvalidTeamCount = errors.New("invalid number of teams")

	// ErrInvalidPlayerName возвращается для пустого или слишком длинного имени
	ErrInvalidPlayerName = errors.New("invalid player name")

	// ErrInvalidSession возвращается когда сохраняемые команды не соответствуют формату
	ErrInvalidSession = errors.New("invalid session data")
)

// ShortageKind указывает, какой группы игроков не хватило
type ShortageKind string

// Виды нехватки игроков, проверяются именно в таком порядке
const (
	ShortageSetters ShortageKind = "setters"
	ShortageLiberos ShortageKind = "liberos"
	ShortageTotal   ShortageKind = "total"
)

// InsufficientPlayersError возвращается движком жеребьевки, если ростер не
// позволяет собрать запрошенное количество команд
type InsufficientPlayersError struct {
	Kind      ShortageKind
	Required  int
	Available int
}

func (e *InsufficientPlayersError) Error() string {
	var what string
	switch e.Kind {
	case ShortageSetters:
		what = "setters"
	case ShortageLiberos:
		what = "liberos"
	default:
		what = "players"
	}
	return fmt.Sprintf("not enough %s: required %d, available %d", what, e.Required, e.Available)
}

// Is позволяет сравнивать ошибку с ErrInsufficientPlayers через errors.Is
func (e *InsufficientPlayersError) Is(target error) bool {
	return target == ErrInsufficientPlayers
}

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeBadRequest          ErrorCode = "BAD_REQUEST"
	CodeInsufficientPlayers ErrorCode = "INSUFFICIENT_PLAYERS"
	CodeInvalidPosition     ErrorCode = "INVALID_POSITION"
	CodeInvalidGameFormat   ErrorCode = "INVALID_GAME_TYPE"
	CodeInvalidTeamCount    ErrorCode = "INVALID_TEAM_COUNT"
	CodeInvalidPlayerName   ErrorCode = "INVALID_NAME"
	CodeInvalidSession      ErrorCode = "INVALID_SESSION"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInsufficientPlayers):
		return CodeInsufficientPlayers
	case errors.Is(err, ErrInvalidPosition):
		return CodeInvalidPosition
	case errors.Is(err, ErrInvalidGameFormat):
		return CodeInvalidGameFormat
	case errors.Is(err, ErrInvalidTeamCount):
		return CodeInvalidTeamCount
	case errors.Is(err, ErrInvalidPlayerName):
		return CodeInvalidPlayerName
	case errors.Is(err, ErrInvalidSession):
		return CodeInvalidSession
	case errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrSessionNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
