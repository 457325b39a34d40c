package handler

import (
	"context"
	"net/http"

	"github.com/ironvale/bountyhall/internal/capture"
)

// TrackerService receives game events reported by the host.
type TrackerService interface {
	OnKillEvent(ctx context.Context, kill capture.Event) error
	OnGatherEvent(ctx context.Context, itemID string, count int) error
	CheckDayReset(ctx context.Context) error
}

// KillEventRequest reports a creature death.
type KillEventRequest struct {
	TargetID   string `json:"target_id"`
	SpawnLevel int    `json:"spawn_level"`
	BossName   string `json:"boss_name,omitempty"`
}

// HandleKillEvent credits a death against active kill bounties.
func HandleKillEvent(svc TrackerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req KillEventRequest
		if err := decodeJSONBody(r, &req); err != nil || req.TargetID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		err := svc.OnKillEvent(r.Context(), capture.Event{
			TargetID:   req.TargetID,
			SpawnLevel: req.SpawnLevel,
			BossName:   req.BossName,
		})
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "kill recorded"})
	}
}

// GatherEventRequest reports an item pickup.
type GatherEventRequest struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// HandleGatherEvent credits a pickup against active gather bounties.
func HandleGatherEvent(svc TrackerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GatherEventRequest
		if err := decodeJSONBody(r, &req); err != nil || req.ItemID == "" || req.Count <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.OnGatherEvent(r.Context(), req.ItemID, req.Count); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "gather recorded"})
	}
}

// HandleDayCheck triggers the day-boundary sweep. Hosts call it on a
// timer; repeat calls within the same day are no-ops.
func HandleDayCheck(svc TrackerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckDayReset(r.Context()); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "day checked"})
	}
}
