package domain

import "time"

// Session представляет сохраненный результат жеребьевки
type Session struct {
	ID         int64      `json:"id"`
	GameFormat GameFormat `json:"gameType"`
	TeamCount  int        `json:"numberOfTeams"`
	Teams      []Team     `json:"teams"`
	CreatedAt  time.Time  `json:"createdAt"`
}
