package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/catalog"
	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/engine"
	"github.com/ironvale/bountyhall/internal/profile"
	"github.com/ironvale/bountyhall/internal/stream"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	defs := []domain.BountyDefinition{
		{
			ID: "kill_thicket_boar", Title: "Boar Cull", Kind: domain.BountyKindKill,
			TargetID: "ThicketBoar", Amount: 5, BaseReward: 100, DifficultyTier: domain.TierEasy,
		},
	}
	eng, err := engine.New(engine.Deps{
		Catalog: catalog.New(defs),
		Records: profile.NewRecords(profile.NewMemoryStore()),
		Config:  config.DefaultEngine(),
	})
	require.NoError(t, err)

	hub := stream.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	return NewServer(Options{Port: 0, APIKey: "test-key"}, eng, hub)
}

func TestServer_HealthzIsPublic(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_APIRequiresKey(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_BoardWithKey(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kill_thicket_boar")
}

func TestServer_AcceptFlow(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bounties/kill_thicket_boar/accept", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/bounties/kill_thicket_boar/", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec = httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.StateActive))
}

func TestServer_MetricsEndpointIsPublic(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
