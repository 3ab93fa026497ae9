package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UkralStul/posts-service/internal/domain"

	"github.com/google/uuid"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	ErrorID string `json:"errorId,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusFor сопоставляет вид ошибки с HTTP-статусом.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError - единая точка превращения ошибок в HTTP-ответы.
// Подробности внутренних ошибок клиенту не отдаются, только errorId.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{Kind: domain.KindName(err)}

	if status == http.StatusInternalServerError {
		body.ErrorID = uuid.NewString()
		body.Message = "internal error"
		h.logger.Error(r.Context(), "request failed",
			"error", err,
			"error_id", body.ErrorID,
		)
	} else {
		var de *domain.Error
		if errors.As(err, &de) {
			body.Message = de.Error()
		} else {
			body.Message = err.Error()
		}
		h.logger.Debug(r.Context(), "request rejected", "status", status, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
