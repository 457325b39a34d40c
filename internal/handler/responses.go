package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ironvale/bountyhall/internal/domain"
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

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log.
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

// User-facing error messages for engine errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgBountyNotFoundError  = "Bounty not found"
	ErrMsgNotAvailableError    = "That bounty cannot be accepted right now"
	ErrMsgNotActiveError       = "That bounty is not active"
	ErrMsgNotReadyError        = "That bounty is not ready to claim"
	ErrMsgBountyLockedError    = "That bounty is still locked. Defeat the required boss first"
	ErrMsgRewardUnavailableErr = "That reward is not available for this bounty"
	ErrMsgDeliveryFailedError  = "Could not deliver the reward. Free up inventory space and try again"
)

// mapEngineErrorToUserMessage converts engine errors to HTTP status
// codes and messages a player (or the overlay showing them) can act on.
func mapEngineErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrBountyNotFound):
		return http.StatusNotFound, ErrMsgBountyNotFoundError
	case errors.Is(err, domain.ErrBountyNotAvailable):
		return http.StatusConflict, ErrMsgNotAvailableError
	case errors.Is(err, domain.ErrBountyNotActive):
		return http.StatusConflict, ErrMsgNotActiveError
	case errors.Is(err, domain.ErrBountyNotReady):
		return http.StatusConflict, ErrMsgNotReadyError
	case errors.Is(err, domain.ErrBountyLocked):
		return http.StatusForbidden, ErrMsgBountyLockedError
	case errors.Is(err, domain.ErrRewardUnavailable):
		return http.StatusBadRequest, ErrMsgRewardUnavailableErr
	case errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusConflict, ErrMsgDeliveryFailedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	if unwrapped := errors.Unwrap(err); unwrapped != nil && unwrapped != err {
		return mapEngineErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
