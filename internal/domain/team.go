package domain

import "strings"

// GameFormat определяет количество игроков в команде
type GameFormat string

// Поддерживаемые форматы игры
const (
	FormatSmall GameFormat = "small" // 4 игрока в команде
	FormatLarge GameFormat = "large" // 6 игроков в команде
)

var formatAliases = map[string]GameFormat{
	"small":    FormatSmall,
	"quarteto": FormatSmall,
	"large":    FormatLarge,
	"sexteto":  FormatLarge,
}

// ParseGameFormat разбирает строковое значение формата
func ParseGameFormat(s string) (GameFormat, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidGameFormat
	}
	return f, nil
}

// Valid возвращает true для одного из двух известных форматов
func (f GameFormat) Valid() bool {
	return f == FormatSmall || f == FormatLarge
}

// PlayersPerTeam возвращает размер команды для формата
func (f GameFormat) PlayersPerTeam() int {
	if f == FormatSmall {
		return 4
	}
	return 6
}

// ColorScheme описывает цветовую схему команды для отображения
type ColorScheme struct {
	Background string `json:"bg"`
	Border     string `json:"border"`
	Text       string `json:"text"`
	Badge      string `json:"badge"`
}

// Team представляет одну команду результата жеребьевки.
// Всегда содержит одного связующего, одного либеро и PlayersPerTeam-2 остальных игроков.
type Team struct {
	Name    string      `json:"name"`
	Colors  ColorScheme `json:"colors"`
	Setter  *Player     `json:"setter"`
	Libero  *Player     `json:"libero"`
	Players []*Player   `json:"players"`
}

// Members возвращает всех игроков команды: связующего, либеро и остальных
func (t *Team) Members() []*Player {
	members := make([]*Player, 0, len(t.Players)+2)
	if t.Setter != nil {
		members = append(members, t.Setter)
	}
	if t.Libero != nil {
		members = append(members, t.Libero)
	}
	return append(members, t.Players...)
}

var teamLabels = [...]string{"A", "B", "C", "D"}

var teamColors = [...]ColorScheme{
	{Background: "from-blue-50 to-blue-100", Border: "border-blue-200", Text: "text-blue-800", Badge: "bg-blue-200 text-blue-800"},
	{Background: "from-red-50 to-red-100", Border: "border-red-200", Text: "text-red-800", Badge: "bg-red-200 text-red-800"},
	{Background: "from-green-50 to-green-100", Border: "border-green-200", Text: "text-green-800", Badge: "bg-green-200 text-green-800"},
	{Background: "from-purple-50 to-purple-100", Border: "border-purple-200", Text: "text-purple-800", Badge: "bg-purple-200 text-purple-800"},
}

// Ограничения на количество команд в одной жеребьевке.
// MaxTeams задается размером палитры названий и цветов.
const (
	MinTeams = 2
	MaxTeams = len(teamLabels)
)

// TeamName возвращает отображаемое имя команды с индексом i
func TeamName(i int) string {
	return "Team " + teamLabels[i]
}

// TeamColors возвращает цветовую схему команды с индексом i
func TeamColors(i int) ColorScheme {
	return teamColors[i]
}

// ValidTeamCount проверяет, что количество команд поддерживается
func ValidTeamCount(n int) bool {
	return n >= MinTeams && n <= MaxTeams
}
