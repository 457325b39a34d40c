package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/engine"
)

func eventsRouter(eng *engine.Engine) chi.Router {
	r := chi.NewRouter()
	r.Post("/events/kill", HandleKillEvent(eng))
	r.Post("/events/gather", HandleGatherEvent(eng))
	r.Post("/day/check", HandleDayCheck(eng))
	r.Post("/admin/reset", HandleAdminReset(eng))
	return r
}

func TestHandleKillEvent(t *testing.T) {
	ctx := context.Background()
	eng := testEngine(t)
	router := eventsRouter(eng)

	require.NoError(t, eng.AcceptBounty(ctx, "kill_gloom_wolf"))

	rec := doRequest(t, router, http.MethodPost, "/events/kill",
		KillEventRequest{TargetID: "GloomWolf"})
	require.Equal(t, http.StatusOK, rec.Code)

	progress, err := eng.GetProgress(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, 1, progress)
}

func TestHandleKillEvent_MissingTarget(t *testing.T) {
	eng := testEngine(t)
	rec := doRequest(t, eventsRouter(eng), http.MethodPost, "/events/kill",
		KillEventRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGatherEvent_Validation(t *testing.T) {
	eng := testEngine(t)
	router := eventsRouter(eng)

	rec := doRequest(t, router, http.MethodPost, "/events/gather",
		GatherEventRequest{ItemID: "PineResin", Count: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/events/gather",
		GatherEventRequest{ItemID: "PineResin", Count: 3})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDayCheck(t *testing.T) {
	eng := testEngine(t)
	rec := doRequest(t, eventsRouter(eng), http.MethodPost, "/day/check", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleAdminReset(t *testing.T) {
	ctx := context.Background()
	eng := testEngine(t)
	router := eventsRouter(eng)

	require.NoError(t, eng.AcceptBounty(ctx, "kill_gloom_wolf"))

	rec := doRequest(t, router, http.MethodPost, "/admin/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	progress, err := eng.GetProgress(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
}
