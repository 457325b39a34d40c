// Package server wires the engine behind an authenticated HTTP API.
// Host glue (the game-side plugin) is the only expected client; the
// event stream additionally serves overlay UIs.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ironvale/bountyhall/internal/engine"
	"github.com/ironvale/bountyhall/internal/handler"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/metrics"
	"github.com/ironvale/bountyhall/internal/stream"
)

// Options configures the HTTP server.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	StorePinger    handler.Pinger

	// Optional store-backed progression flags with a cache flush hook.
	Unlocks           handler.UnlockService
	InvalidateUnlocks func()
}

type Server struct {
	httpServer *http.Server
	hub        *stream.Hub
}

// NewServer builds the router over the engine and stream hub.
func NewServer(opts Options, eng *engine.Engine, hub *stream.Hub) *Server {
	r := chi.NewRouter()

	// Middleware executes in the order defined, outermost first.
	detector := NewSuspiciousActivityDetector()
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.StorePinger))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/bounties", handler.HandleGetBoard(eng))
		r.Route("/bounties/{id}", func(r chi.Router) {
			r.Get("/", handler.HandleGetBounty(eng))
			r.Get("/rewards", handler.HandleGetRewards(eng))
			r.Post("/accept", handler.HandleAcceptBounty(eng))
			r.Post("/abandon", handler.HandleAbandonBounty(eng))
			r.Post("/claim", handler.HandleClaimBounty(eng))
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/kill", handler.HandleKillEvent(eng))
			r.Post("/gather", handler.HandleGatherEvent(eng))
			r.Get("/stream", stream.Handler(hub))
		})

		r.Post("/day/check", handler.HandleDayCheck(eng))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reset", handler.HandleAdminReset(eng))

			if opts.Unlocks != nil {
				r.Get("/unlocks", handler.HandleGetUnlocks(opts.Unlocks))
				r.Post("/unlocks", handler.HandleSetUnlock(opts.Unlocks, opts.InvalidateUnlocks))
				r.Post("/unlocks/clear", handler.HandleClearUnlock(opts.Unlocks, opts.InvalidateUnlocks))
			}
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		hub: hub,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics probes would drown the log.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
