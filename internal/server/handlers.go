package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loadout-gg/loadout/internal/engine"
)

type detectRequest struct {
	// Either raw OCR text or an already-parsed attribute map; when both are
	// present the attribute map wins.
	Text       string         `json:"text"`
	Attributes map[string]int `json:"attributes"`
}

type detectResponse struct {
	engine.Result
	Matched bool `json:"matched"`
	Changed bool `json:"changed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleDetect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
	}
	if req.Text == "" && req.Attributes == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text or attributes is required"})
	}

	attrs := engine.AttributeSet(req.Attributes)
	if attrs == nil {
		attrs = engine.ParseAttributes(req.Text)
	}

	// Empty attribute sets are a normal input: the result is unknown with
	// zero confidence, not an error.
	res, changed := s.eng.Detect(attrs)

	return c.JSON(http.StatusOK, detectResponse{
		Result:  res,
		Matched: res.Profile != nil,
		Changed: changed,
	})
}

func (s *Server) handleHistoryStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.eng.History().Statistics())
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

type catalogSpaceInfo struct {
	Name       string `json:"name"`
	Categories int    `json:"categories"`
}

type catalogInfoResponse struct {
	Spaces   []catalogSpaceInfo `json:"spaces"`
	Profiles int                `json:"profiles"`
	LoadedAt time.Time          `json:"loaded_at"`
}

func (s *Server) handleCatalogInfo(c echo.Context) error {
	patterns := s.store.Patterns()
	info := catalogInfoResponse{
		Spaces:   make([]catalogSpaceInfo, 0, len(patterns.Spaces)),
		Profiles: len(s.store.Profiles()),
		LoadedAt: s.store.LoadedAt(),
	}
	for _, sp := range patterns.Spaces {
		info.Spaces = append(info.Spaces, catalogSpaceInfo{
			Name:       sp.Name,
			Categories: len(sp.Categories),
		})
	}
	return c.JSON(http.StatusOK, info)
}

type reloadResponse struct {
	Message    string    `json:"message"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

func (s *Server) handleReload(c echo.Context) error {
	if err := s.store.Reload(); err != nil {
		// The previous catalog is still being served.
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, reloadResponse{
		Message:    "catalogs reloaded",
		ReloadedAt: s.store.LoadedAt(),
	})
}
