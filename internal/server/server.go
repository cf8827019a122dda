// Package server implements the HTTP preview API. It exposes the placement
// pipeline over JSON so a browser frontend can request passes, hover
// callouts, and bookmark toggles without shipping the engine to the client.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/feileberlin/krwl.in-sub005/internal/server/httputil"
	"github.com/feileberlin/krwl.in-sub005/pkg/bookmarks"
	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/config"
	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
	"github.com/feileberlin/krwl.in-sub005/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown on context cancellation.
const shutdownTimeout = 5 * time.Second

// Server serves the preview API.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	runner *pipeline.Runner
	store  bookmarks.Store
}

// New creates a preview server. The bookmark store may be nil, in which case
// bookmark endpoints respond with 404.
func New(cfg config.Config, logger *log.Logger, store bookmarks.Store) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		runner: pipeline.NewRunner(logger),
		store:  store,
	}
}

// Handler builds the chi router with all API routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httputil.Observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/placements", s.handlePlacements)
	r.Post("/api/preview.svg", s.handlePreviewSVG)
	r.Post("/api/hover", s.handleHover)

	if s.store != nil {
		r.Get("/api/bookmarks", s.handleBookmarks)
		r.Post("/api/bookmarks/{id}/toggle", s.handleBookmarkToggle)
	}

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// handleHealth responds 200 for liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePlacements runs one placement pass and returns the positioned
// callouts as JSON.
func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

// handlePreviewSVG runs one placement pass and returns the rendered SVG.
func (s *Server) handlePreviewSVG(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	opts.Formats = []string{pipeline.FormatSVG}

	if s.store != nil {
		set, err := s.store.All(r.Context())
		if err != nil {
			httputil.WriteError(w, s.logger, err)
			return
		}
		opts.Bookmarks = set
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

// hoverRequest is the body of POST /api/hover.
type hoverRequest struct {
	Anchor   geom.Point    `json:"anchor"`
	Size     geom.Size     `json:"size,omitempty"`
	Viewport geom.Viewport `json:"viewport"`
}

// handleHover computes the edge-anchored hover callout for one marker.
func (s *Server) handleHover(w http.ResponseWriter, r *http.Request) {
	var req hoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, s.logger, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode hover request"))
		return
	}
	if err := errors.ValidateAnchor(req.Anchor.X, req.Anchor.Y); err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}
	if req.Viewport.Width <= 0 || req.Viewport.Height <= 0 {
		httputil.WriteError(w, s.logger, errors.New(errors.ErrCodeInvalidViewport, "viewport must be positive, got %gx%g", req.Viewport.Width, req.Viewport.Height))
		return
	}

	result := pipeline.Hover(req.Anchor, req.Size, req.Viewport, s.placementConfig())
	httputil.WriteJSON(w, http.StatusOK, result)
}

// handleBookmarks lists all bookmarked event IDs.
func (s *Server) handleBookmarks(w http.ResponseWriter, r *http.Request) {
	set, err := s.store.All(r.Context())
	if err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"bookmarks": ids})
}

// handleBookmarkToggle flips the bookmark state for one event.
func (s *Server) handleBookmarkToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateEventID(id); err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}

	bookmarked, err := s.store.Toggle(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, s.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "bookmarked": bookmarked})
}

// decodeOptions reads pipeline options from the request body and applies the
// server's configured placement tuning where the request left it unset.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		httputil.WriteError(w, s.logger, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode placement request"))
		return opts, false
	}

	// The server never reads files on behalf of a client.
	opts.Input = ""
	if opts.Events == nil {
		httputil.WriteError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "events are required"))
		return opts, false
	}
	if opts.Placement == (callout.Config{}) {
		opts.Placement = s.placementConfig()
	}
	return opts, true
}

func (s *Server) placementConfig() callout.Config {
	if s.cfg.Placement == (callout.Config{}) {
		return callout.DefaultConfig()
	}
	return s.cfg.Placement
}
