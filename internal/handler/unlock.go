package handler

import (
	"context"
	"net/http"
)

// UnlockService manages the persisted progression flags.
type UnlockService interface {
	SetUnlocked(ctx context.Context, key string) error
	ClearUnlocked(ctx context.Context, key string) error
	Unlocked(ctx context.Context) ([]string, error)
}

// UnlockRequest names a progression flag.
type UnlockRequest struct {
	Key string `json:"key"`
}

// UnlocksResponse lists the set progression flags.
type UnlocksResponse struct {
	Unlocked []string `json:"unlocked"`
}

// HandleSetUnlock records a progression flag (a defeated boss). The
// invalidate callback flushes the unlock cache so new content shows up
// on the next board read.
func HandleSetUnlock(svc UnlockService, invalidate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnlockRequest
		if err := decodeJSONBody(r, &req); err != nil || req.Key == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.SetUnlocked(r.Context(), req.Key); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if invalidate != nil {
			invalidate()
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "flag set"})
	}
}

// HandleClearUnlock removes a progression flag.
func HandleClearUnlock(svc UnlockService, invalidate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnlockRequest
		if err := decodeJSONBody(r, &req); err != nil || req.Key == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.ClearUnlocked(r.Context(), req.Key); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if invalidate != nil {
			invalidate()
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "flag cleared"})
	}
}

// HandleGetUnlocks lists the set progression flags.
func HandleGetUnlocks(svc UnlockService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flags, err := svc.Unlocked(r.Context())
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, UnlocksResponse{Unlocked: flags})
	}
}
