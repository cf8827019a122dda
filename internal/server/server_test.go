package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/feileberlin/krwl.in-sub005/pkg/bookmarks"
	"github.com/feileberlin/krwl.in-sub005/pkg/config"
	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := bookmarks.NewFileStore(t.TempDir())
	require.NoError(t, err)

	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(config.Default(), logger, store)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func testEvents() []event.Event {
	start := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	return []event.Event{
		{ID: "a", Title: "Concert", Start: start, DistanceKm: 1, Anchor: geom.Point{X: 400, Y: 300}},
		{ID: "b", Title: "Market", Start: start, DistanceKm: 2, Anchor: geom.Point{X: 900, Y: 500}},
	}
}

func TestHandlePlacements(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/placements", map[string]any{
		"events":   testEvents(),
		"viewport": geom.Viewport{Width: 1280, Height: 800},
		"seed":     42,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		PassID     string `json:"pass_id"`
		Placements []struct {
			Strategy string `json:"strategy"`
		} `json:"placements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.PassID)
	require.Len(t, result.Placements, 2)
}

func TestHandlePlacements_PartialPlacementConfig(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/placements", map[string]any{
		"events":    testEvents(),
		"viewport":  geom.Viewport{Width: 1280, Height: 800},
		"placement": map[string]any{"padding": 20},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Placements []json.RawMessage `json:"placements"`
		Stats      struct {
			EventCount int `json:"event_count"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, 2, result.Stats.EventCount)
	require.Len(t, result.Placements, 2)
}

func TestHandlePlacements_RequiresEvents(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/placements", map[string]any{
		"viewport": geom.Viewport{Width: 1280, Height: 800},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestHandlePlacements_MalformedBody(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/placements", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePreviewSVG(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/preview.svg", map[string]any{
		"events":   testEvents(),
		"viewport": geom.Viewport{Width: 1280, Height: 800},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "<svg"))
}

func TestHandleHover(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/hover", map[string]any{
		"anchor":   geom.Point{X: 950, Y: 400},
		"viewport": geom.Viewport{Width: 1000, Height: 800},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Placement struct {
			Edge string  `json:"edge"`
			Left float64 `json:"left"`
		} `json:"placement"`
		Connector struct {
			Start geom.Point `json:"start"`
		} `json:"connector"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "right", result.Placement.Edge)
	require.Equal(t, 770.0, result.Placement.Left)
	require.Equal(t, geom.Point{X: 950, Y: 400}, result.Connector.Start)
}

func TestHandleHover_RejectsBadViewport(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/hover", map[string]any{
		"anchor":   geom.Point{X: 10, Y: 10},
		"viewport": geom.Viewport{Width: 0, Height: 0},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_VIEWPORT")
}

func TestBookmarkEndpoints(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/bookmarks/evt-1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"bookmarked":true`)

	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	list := httptest.NewRecorder()
	handler.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	require.Contains(t, list.Body.String(), "evt-1")

	rec = postJSON(t, handler, "/api/bookmarks/evt-1/toggle", nil)
	require.Contains(t, rec.Body.String(), `"bookmarked":false`)
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
