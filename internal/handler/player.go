package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/volley-draw/internal/service"
)

// PlayerHandler обрабатывает эндпоинты игроков
type PlayerHandler struct {
	playerService *service.PlayerService
	statsService  *service.StatsService
}

// NewPlayerHandler создает новый PlayerHandler
func NewPlayerHandler(playerService *service.PlayerService, statsService *service.StatsService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		statsService:  statsService,
	}
}

// CreatePlayerRequest представляет тело запроса на регистрацию игрока
type CreatePlayerRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// List обрабатывает GET /api/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, players)
}

// Create обрабатывает POST /api/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	player, err := h.playerService.Create(r.Context(), req.Name, req.Position)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, player)
}

// Delete обрабатывает DELETE /api/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid player id")
		return
	}

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Stats обрабатывает GET /api/players/stats
func (h *PlayerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.RosterStats(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}
