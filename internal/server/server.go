// Package server exposes the detection engine over HTTP.
package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/config"
	"github.com/loadout-gg/loadout/internal/engine"
)

// Server wraps the HTTP components for loadout.
type Server struct {
	echo  *echo.Echo
	cfg   *config.Config
	store *catalog.Store
	eng   *engine.Engine
}

// New wires the routes. The caller owns the store and engine lifecycles.
func New(cfg *config.Config, store *catalog.Store, eng *engine.Engine) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{echo: e, cfg: cfg, store: store, eng: eng}

	e.GET("/healthz", s.handleHealth)
	e.POST("/v1/detect", s.handleDetect)
	e.GET("/v1/history/stats", s.handleHistoryStats)

	e.GET("/admin/catalog", s.handleCatalogInfo)
	e.POST("/admin/reload", s.handleReload)

	return s
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
