package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/engine"
)

// BountyService is the slice of the engine the HTTP layer needs.
type BountyService interface {
	Day() int
	SecondsUntilNextDay() float64
	VisibleBounties(ctx context.Context, day int) ([]engine.VisibleBounty, error)
	GetState(ctx context.Context, id string) (domain.BountyState, error)
	GetProgress(ctx context.Context, id string) (int, error)
	BossName(ctx context.Context, id string) (string, error)
	AcceptBounty(ctx context.Context, id string) error
	AbandonBounty(ctx context.Context, id string) error
	ResolveRewards(ctx context.Context, id string) ([]domain.RewardOption, error)
	Claim(ctx context.Context, id string, category domain.RewardCategory) error
}

// BoardResponse is the bounty board view for one day.
type BoardResponse struct {
	Day                 int                    `json:"day"`
	SecondsUntilNextDay float64                `json:"seconds_until_next_day"`
	Bounties            []engine.VisibleBounty `json:"bounties"`
}

// BountyStatusResponse is the state of a single bounty record.
type BountyStatusResponse struct {
	BountyID string             `json:"bounty_id"`
	State    domain.BountyState `json:"state"`
	Progress int                `json:"progress"`
	BossName string             `json:"boss_name,omitempty"`
}

// HandleGetBoard returns the visible bounty list. The optional "day"
// query parameter overrides the calendar, mainly for overlay previews.
func HandleGetBoard(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := svc.Day()
		if raw := r.URL.Query().Get("day"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			day = parsed
		}

		bounties, err := svc.VisibleBounties(r.Context(), day)
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, BoardResponse{
			Day:                 day,
			SecondsUntilNextDay: svc.SecondsUntilNextDay(),
			Bounties:            bounties,
		})
	}
}

// HandleGetBounty returns state, progress and boss name for one bounty.
func HandleGetBounty(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ctx := r.Context()

		state, err := svc.GetState(ctx, id)
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		progress, err := svc.GetProgress(ctx, id)
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		name, err := svc.BossName(ctx, id)
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, BountyStatusResponse{
			BountyID: id,
			State:    state,
			Progress: progress,
			BossName: name,
		})
	}
}

// HandleAcceptBounty accepts an available bounty.
func HandleAcceptBounty(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.AcceptBounty(r.Context(), id); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "bounty accepted"})
	}
}

// HandleAbandonBounty abandons an active bounty, discarding progress.
func HandleAbandonBounty(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.AbandonBounty(r.Context(), id); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "bounty abandoned"})
	}
}

// RewardsResponse is the four-option reward menu for a bounty.
type RewardsResponse struct {
	BountyID string                `json:"bounty_id"`
	Options  []domain.RewardOption `json:"options"`
}

// HandleGetRewards returns the deterministic reward menu for a bounty.
func HandleGetRewards(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		options, err := svc.ResolveRewards(r.Context(), id)
		if err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, RewardsResponse{BountyID: id, Options: options})
	}
}

// ClaimRequest selects the reward category for a claim.
type ClaimRequest struct {
	Category string `json:"category"`
}

// HandleClaimBounty claims a ready bounty with the chosen reward.
func HandleClaimBounty(svc BountyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req ClaimRequest
		if err := decodeJSONBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		category := domain.RewardCategory(req.Category)
		if !validCategory(category) {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.Claim(r.Context(), id, category); err != nil {
			status, msg := mapEngineErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "bounty claimed"})
	}
}

func validCategory(category domain.RewardCategory) bool {
	for _, c := range domain.RewardCategories {
		if c == category {
			return true
		}
	}
	return false
}
