package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/service"
)

// DrawHandler обрабатывает запросы на жеребьевку
type DrawHandler struct {
	drawService *service.DrawService
}

// NewDrawHandler создает новый DrawHandler
func NewDrawHandler(drawService *service.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// DrawRequest представляет тело запроса на жеребьевку
type DrawRequest struct {
	GameType      string `json:"gameType"`
	NumberOfTeams int    `json:"numberOfTeams"`
}

// DrawResponse содержит команды, результат не сохраняется автоматически
type DrawResponse struct {
	Teams []domain.Team `json:"teams"`
}

// Draw обрабатывает POST /api/sort-teams
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	format, err := domain.ParseGameFormat(req.GameType)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	teams, err := h.drawService.Draw(r.Context(), format, req.NumberOfTeams)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DrawResponse{Teams: teams})
}
