package handler

import (
	"context"
	"net/http"
)

// AdminService exposes destructive maintenance operations.
type AdminService interface {
	ResetAll(ctx context.Context) (int, error)
}

// ResetResponse reports how many profile records a reset removed.
type ResetResponse struct {
	Message        string `json:"message"`
	RecordsRemoved int    `json:"records_removed"`
}

// HandleAdminReset wipes all bounty state for the player profile. The
// bank balance is preserved.
func HandleAdminReset(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.ResetAll(r.Context())
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, ResetResponse{
			Message:        "bounty state reset",
			RecordsRemoved: removed,
		})
	}
}
