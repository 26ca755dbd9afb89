package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/volley-draw/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details *ShortageDetail `json:"details,omitempty"`
}

// ShortageDetail описывает, каких игроков не хватило для жеребьевки
type ShortageDetail struct {
	Kind      domain.ShortageKind `json:"kind"`
	Required  int                 `json:"required"`
	Available int                 `json:"available"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var shortage *domain.InsufficientPlayersError
	if errors.As(err, &shortage) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{
			Error: ErrorDetail{
				Code:    string(domain.CodeInsufficientPlayers),
				Message: shortage.Error(),
				Details: &ShortageDetail{
					Kind:      shortage.Kind,
					Required:  shortage.Required,
					Available: shortage.Available,
				},
			},
		})
		return
	}

	code := domain.MapErrorToCode(err)
	switch code {
	case domain.CodeInvalidPosition, domain.CodeInvalidGameFormat, domain.CodeInvalidTeamCount,
		domain.CodeInvalidPlayerName, domain.CodeInvalidSession:
		RespondWithError(w, r, http.StatusBadRequest, string(code), err.Error())
	case domain.CodeNotFound:
		RespondWithError(w, r, http.StatusNotFound, string(code), err.Error())
	default:
		RespondWithError(w, r, http.StatusInternalServerError, string(domain.CodeInternal), "internal server error")
	}
}
