package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loadout-gg/loadout/internal/catalog"
	"github.com/loadout-gg/loadout/internal/config"
	"github.com/loadout-gg/loadout/internal/engine"
)

func newTestServer() *Server {
	cfg, _ := config.Load("nonexistent.yaml")
	store := catalog.NewStoreFromCatalogs(catalog.Defaults(), catalog.DefaultProfiles())
	eng := engine.New(store, engine.Options{
		MatchThreshold: cfg.Engine.MatchThreshold,
		HistorySize:    cfg.Engine.HistorySize,
		ChangeEpsilon:  cfg.Engine.ChangeEpsilon,
	})
	return New(cfg, store, eng)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDetectWithAttributes(t *testing.T) {
	s := newTestServer()
	rec := doJSON(t, s, http.MethodPost, "/v1/detect",
		`{"attributes":{"Rifle Weapons":4,"Marksman":3}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Build      string  `json:"build"`
		Weapon     string  `json:"weapon"`
		Confidence float64 `json:"confidence"`
		Matched    bool    `json:"matched"`
		Changed    bool    `json:"changed"`
		Profile    *struct {
			Name string `json:"name"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Build != "rifleman" || resp.Weapon != "rifle" {
		t.Fatalf("detection = %+v", resp)
	}
	if !resp.Matched || resp.Profile == nil || resp.Profile.Name != "rifleman_dps" {
		t.Fatalf("expected rifleman_dps match, got %+v", resp)
	}
	if !resp.Changed {
		t.Fatal("first detection must report changed")
	}
}

func TestDetectWithText(t *testing.T) {
	s := newTestServer()
	rec := doJSON(t, s, http.MethodPost, "/v1/detect",
		`{"text":"Rifle Weapons IV\nMarksman III"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"build":"rifleman"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestDetectRequiresInput(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/v1/detect", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDetectNoMatchIsNotAnError(t *testing.T) {
	s := newTestServer()
	rec := doJSON(t, s, http.MethodPost, "/v1/detect",
		`{"attributes":{"Cooking":5}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("no-match must be 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"matched":false`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"build":"unknown"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHistoryStats(t *testing.T) {
	s := newTestServer()
	doJSON(t, s, http.MethodPost, "/v1/detect", `{"attributes":{"Rifle Weapons":4}}`)
	doJSON(t, s, http.MethodPost, "/v1/detect", `{"attributes":{"Rifle Weapons":4}}`)

	rec := doJSON(t, s, http.MethodGet, "/v1/history/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats struct {
		Total  int            `json:"total"`
		Builds map[string]int `json:"builds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Total != 2 || stats.Builds["rifleman"] != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestCatalogInfoAndReload(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodGet, "/admin/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"build"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodPost, "/admin/reload", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reload status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
