package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/volley-draw/internal/domain"
	"github.com/aidar/volley-draw/internal/service"
)

// SessionHandler обрабатывает эндпоинты истории жеребьевок
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler создает новый SessionHandler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSessionRequest представляет тело запроса на сохранение жеребьевки
type CreateSessionRequest struct {
	GameType      string        `json:"gameType"`
	NumberOfTeams int           `json:"numberOfTeams"`
	Teams         []domain.Team `json:"teams"`
}

// List обрабатывает GET /api/game-sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, sessions)
}

// Get обрабатывает GET /api/game-sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid session id")
		return
	}

	session, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, session)
}

// Create обрабатывает POST /api/game-sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	format, err := domain.ParseGameFormat(req.GameType)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	session, err := h.sessionService.Create(r.Context(), format, req.NumberOfTeams, req.Teams)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, session)
}

// Delete обрабатывает DELETE /api/game-sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid session id")
		return
	}

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
