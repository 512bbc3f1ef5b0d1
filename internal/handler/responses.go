package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to a pooled buffer first; headers are already sent, so an
	// encode failure can only be logged.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs the failure and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error("Failed to "+opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage converts domain errors to HTTP status codes
// and messages a player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrBalanceNotFound):
		return http.StatusBadRequest, ErrMsgBalanceNotFound
	case errors.Is(err, domain.ErrOverdrawn):
		return http.StatusBadRequest, ErrMsgOverdrawn
	case errors.Is(err, domain.ErrInvalidLevel):
		return http.StatusBadRequest, ErrMsgInvalidLevel
	case errors.Is(err, domain.ErrLevelCapExceeded):
		return http.StatusBadRequest, ErrMsgLevelCapExceeded
	case errors.Is(err, domain.ErrAlreadyUpgrading):
		return http.StatusConflict, ErrMsgAlreadyUpgrading
	case errors.Is(err, domain.ErrNothingToClaim):
		return http.StatusBadRequest, ErrMsgNothingToClaim
	case errors.Is(err, domain.ErrStakedItemNotFound):
		return http.StatusBadRequest, ErrMsgStakedItemNotFound
	case errors.Is(err, domain.ErrItemNotStaked):
		return http.StatusBadRequest, ErrMsgItemNotStaked
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusBadRequest, ErrMsgCapacityExceeded
	case errors.Is(err, domain.ErrSlotCapExceeded):
		return http.StatusBadRequest, ErrMsgSlotCapExceeded
	case errors.Is(err, domain.ErrIneligibleResource):
		return http.StatusBadRequest, ErrMsgIneligibleResource
	case errors.Is(err, domain.ErrDuplicateStake):
		return http.StatusBadRequest, ErrMsgDuplicateStake
	case errors.Is(err, domain.ErrTemplateMisconfigured):
		return http.StatusBadRequest, ErrMsgTemplateBroken
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFound
	case errors.Is(err, domain.ErrComponentCountMismatch),
		errors.Is(err, domain.ErrInvalidComponents):
		return http.StatusBadRequest, ErrMsgWrongComponents
	case errors.Is(err, domain.ErrForgedAsset):
		return http.StatusBadRequest, ErrMsgForgedAsset
	case errors.Is(err, domain.ErrRatioNotFound):
		return http.StatusBadRequest, ErrMsgRatioNotFound
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusBadRequest, ErrMsgAssetNotFound
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusBadRequest, ErrMsgTemplateNotFound
	case errors.Is(err, domain.ErrInvalidMemo):
		return http.StatusBadRequest, ErrMsgInvalidMemoError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgUnauthorizedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
