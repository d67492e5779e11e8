// Package server exposes the import pipeline and the interactive
// mutation protocol over HTTP.
//
// The server owns the live graph store and its interaction controller.
// The original event model is strictly single-threaded; HTTP introduces
// concurrency, so every handler that touches the store runs under one
// mutex, which preserves the run-to-completion semantics of an event
// turn.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
	"github.com/flowdeck/flowdeck/pkg/reconcile"
	"github.com/flowdeck/flowdeck/pkg/render"
	"github.com/flowdeck/flowdeck/pkg/session"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// maxImportBytes caps the accepted upload size.
const maxImportBytes = 16 << 20

// Server holds the live graph and serves the diagram API.
type Server struct {
	mu     sync.Mutex
	graph  *store.Graph
	ctrl   *session.Controller
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server with an empty live graph.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	g := store.New()
	return &Server{
		graph:  g,
		ctrl:   session.New(g),
		runner: runner,
		logger: logger,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/graph", s.handleGraph)
	r.Get("/graph.svg", s.handleGraphSVG)
	r.Post("/import", s.handleImport)
	r.Post("/nodes/{id}/copy", s.handleCopy)
	r.Delete("/nodes/{id}", s.handleDelete)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGraph returns the current live graph contents.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.graph.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// handleGraphSVG renders the current live graph as SVG.
func (s *Server) handleGraphSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.graph.Snapshot()
	s.mu.Unlock()

	svg, err := render.SVG(r.Context(), render.ToDOT(snap))
	if err != nil {
		s.logger.Error("render failed", "err", err)
		writeError(w, http.StatusInternalServerError, flowerrors.Wrap(flowerrors.ErrCodeInternal, err, "render failed"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// ImportResponse reports the outcome of one import.
type ImportResponse struct {
	Nodes    int      `json:"nodes"`
	Edges    int      `json:"edges"`
	Skipped  []string `json:"skipped,omitempty"`
	CacheHit bool     `json:"cache_hit,omitempty"`
}

// handleImport accepts a raw document, runs the import pipeline, and
// replaces the live graph on success. The document kind comes from the
// "kind" query parameter, or from the "filename" parameter's extension.
// A fatal parse failure leaves the previous graph untouched and yields
// exactly one error message.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	parser, err := requestParser(r)
	if err != nil {
		status := http.StatusUnsupportedMediaType
		if flowerrors.Is(err, flowerrors.ErrCodeInvalidFilename) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, flowerrors.Wrap(flowerrors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}
	defer r.Body.Close()

	res, err := s.runner.Import(r.Context(), parser, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, flowerrors.Wrap(flowerrors.ErrCodeInvalidDocument, err, "import failed"))
		return
	}

	s.mu.Lock()
	rep := reconcile.Apply(res.Diagram, s.graph)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, ImportResponse{
		Nodes:    rep.NodesInserted,
		Edges:    rep.EdgesInserted,
		Skipped:  append(res.Skipped, rep.SkippedEdges...),
		CacheHit: res.CacheHit,
	})
}

// handleCopy duplicates a node and connects it to the original,
// mirroring the Copy action of the selection dialog.
func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctrl.Click(id); err != nil {
		writeError(w, http.StatusNotFound, flowerrors.Wrap(flowerrors.ErrCodeNodeNotFound, err, "node %s not found", id))
		return
	}
	newID, err := s.ctrl.Copy()
	if err != nil {
		s.logger.Error("copy failed", "node", id, "err", err)
		writeError(w, http.StatusInternalServerError, flowerrors.Wrap(flowerrors.ErrCodeInternal, err, "copy failed"))
		return
	}

	n, _ := s.graph.Node(newID)
	writeJSON(w, http.StatusCreated, n)
}

// handleDelete removes a node and its incident edges, mirroring the
// Delete action of the selection dialog.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctrl.Click(id); err != nil {
		writeError(w, http.StatusNotFound, flowerrors.Wrap(flowerrors.ErrCodeNodeNotFound, err, "node %s not found", id))
		return
	}
	if err := s.ctrl.Delete(); err != nil {
		s.logger.Error("delete failed", "node", id, "err", err)
		writeError(w, http.StatusInternalServerError, flowerrors.Wrap(flowerrors.ErrCodeInternal, err, "delete failed"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Graph returns the live store, for wiring and tests.
func (s *Server) Graph() *store.Graph { return s.graph }

func requestParser(r *http.Request) (diagram.Parser, error) {
	if kind := r.URL.Query().Get("kind"); kind != "" {
		p, err := diagram.ByKind(kind)
		if err != nil {
			return nil, flowerrors.Wrap(flowerrors.ErrCodeInvalidKind, err, "unsupported document kind %q", kind)
		}
		return p, nil
	}
	if name := r.URL.Query().Get("filename"); name != "" {
		if err := flowerrors.ValidateFilename(name); err != nil {
			return nil, err
		}
		p, err := diagram.Detect(name)
		if err != nil {
			return nil, flowerrors.Wrap(flowerrors.ErrCodeUnsupported, err, "cannot detect document kind from %q", name)
		}
		return p, nil
	}
	return nil, flowerrors.Wrap(flowerrors.ErrCodeUnsupported, diagram.ErrUnsupported, "document kind not specified; pass kind= or filename=")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Code:  string(flowerrors.GetCode(err)),
		Error: flowerrors.UserMessage(err),
	})
}

// Sanity check that the store satisfies both mutation capabilities.
var (
	_ reconcile.Store = (*store.Graph)(nil)
	_ session.Store   = (*store.Graph)(nil)
)
