// Package server exposes the dashboard HTTP API: health, readiness, and
// metrics endpoints plus the JSON aggregation routes the chart frontend
// consumes, and a small embedded dashboard page.
package server

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/parks-dashboard/internal/dataset"
	"github.com/couchcryptid/parks-dashboard/internal/geo"
	"github.com/couchcryptid/parks-dashboard/internal/observability"
	"github.com/couchcryptid/parks-dashboard/internal/report"
)

//go:embed static
var staticFiles embed.FS

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server wires the gin router over the loaded snapshot and report handle.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	logger     *slog.Logger

	snapshot *dataset.Snapshot
	mapping  *geo.Mapping
	reports  *report.Reports
	ready    ReadinessChecker
}

// NewServer builds the router and all routes. The snapshot and mapping are
// read-only; no route mutates them.
func NewServer(addr string, snapshot *dataset.Snapshot, mapping *geo.Mapping, reports *report.Reports, logger *slog.Logger, metrics *observability.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:   router,
		logger:   logger,
		snapshot: snapshot,
		mapping:  mapping,
		reports:  reports,
		ready:    snapshot,
	}

	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger, metrics))

	router.GET("/healthz", s.handleHealth)
	router.GET("/readyz", s.handleReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/dataset", s.handleDataset)
		api.GET("/areas", s.handleAreas)
		api.GET("/governorates", s.handleGovernorates)
		api.GET("/towns", s.handleTowns)
		api.GET("/summary", s.handleSummary)
		api.GET("/reports/existence", s.handleExistence)
		api.GET("/reports/conditions", s.handleConditions)
		api.GET("/reports/breakdown", s.handleBreakdown)
	}

	router.GET("/", s.handleIndex)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.ready.CheckReadiness(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) handleIndex(c *gin.Context) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
