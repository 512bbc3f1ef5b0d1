// Package server wires the HTTP surface: routing, authentication, metrics,
// and request logging.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dapplicaio/FarmGame/internal/blend"
	"github.com/dapplicaio/FarmGame/internal/database"
	"github.com/dapplicaio/FarmGame/internal/handler"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/metrics"
	"github.com/dapplicaio/FarmGame/internal/progression"
	"github.com/dapplicaio/FarmGame/internal/staking"
	"github.com/dapplicaio/FarmGame/internal/swap"
)

// Server hosts the HTTP API.
type Server struct {
	httpServer *http.Server
}

// Services bundles the service layer the routes dispatch to.
type Services struct {
	Ledger      ledger.Service
	Staking     staking.Service
	Progression progression.Service
	Blend       blend.Service
	Swap        swap.Service
	Deposits    *staking.Router
}

// NewServer creates a Server with the full route table.
func NewServer(port int, apiKey, adminKey string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware executes in order defined, outermost first
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/deposit", handler.HandleDeposit(svcs.Deposits))
		r.Post("/claim", handler.HandleClaim(svcs.Staking))
		r.Post("/item/upgrade", handler.HandleUpgradeItem(svcs.Progression))
		r.Post("/farming-item/upgrade", handler.HandleUpgradeFarmingItem(svcs.Progression))
		r.Post("/swap", handler.HandleSwap(svcs.Swap))
		r.Get("/balances", handler.HandleGetBalances(svcs.Ledger))

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminMiddleware(adminKey))
			r.Post("/recipe", handler.HandleAddRecipe(svcs.Blend))
			r.Post("/ratio", handler.HandleSetRatio(svcs.Swap))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
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

		// Health and metrics probes would drown out the real traffic
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
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAdminKey) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
