package domain

import "strings"

// Position представляет игровую позицию игрока
type Position string

// Возможные позиции
const (
	PositionSetter  Position = "setter"  // Связующий, ровно один на команду
	PositionLibero  Position = "libero"  // Либеро, ровно один на команду
	PositionGeneric Position = "generic" // Остальные игроки
)

// positionAliases допускает исходные португальские названия позиций
var positionAliases = map[string]Position{
	"setter":     PositionSetter,
	"levantador": PositionSetter,
	"libero":     PositionLibero,
	"líbero":     PositionLibero,
	"generic":    PositionGeneric,
	"jogador":    PositionGeneric,
}

// ParsePosition разбирает строковое значение позиции
func ParsePosition(s string) (Position, error) {
	p, ok := positionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidPosition
	}
	return p, nil
}

// Valid возвращает true для одной из трех известных позиций
func (p Position) Valid() bool {
	switch p {
	case PositionSetter, PositionLibero, PositionGeneric:
		return true
	}
	return false
}

// Player представляет зарегистрированного игрока
type Player struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
}
