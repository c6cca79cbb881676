package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/query"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes an editor over a JSON API.
type Server struct {
	Editor  *session.Editor
	Streams *StreamManager

	logger   *slog.Logger
	metrics  *metrics
	registry *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures a logger for the Server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server for the editor with its own metrics registry.
func NewServer(editor *session.Editor, opts ...Option) *Server {
	s := &Server{
		Editor:   editor,
		Streams:  NewStreamManager(),
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	s.metrics.observeTree(editor.Snapshot())
	return s
}

// NewHandler creates a new HTTP handler for the editor.
func NewHandler(editor *session.Editor, opts ...Option) http.Handler {
	return NewServer(editor, opts...).Handler()
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(s.validate)

	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/tree", s.GetTree)
	r.Put("/tree", s.PutTree)
	r.Get("/nodes/{id}", s.GetNode)
	r.Put("/nodes/{id}", s.PatchNode)
	r.Delete("/nodes/{id}", s.DeleteNode)
	r.Post("/nodes/{id}/branches", s.AddBranch)
	r.Delete("/nodes/{id}/branches/{label}", s.RemoveBranch)
	r.Post("/save", s.Save)
	r.Get("/graph", s.GetGraph)
	r.Get("/query", s.Query)
	r.Get("/events", s.SubscribeEvents)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

// Notify tells subscribers that the document changed outside the API,
// for example after a reload from disk.
func (s *Server) Notify(event string) {
	s.metrics.observeTree(s.Editor.Snapshot())
	s.Streams.Broadcast(event)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app":     "arbor-http",
		"version": strings.TrimSpace(arbor.Version),
		"path":    s.Editor.Path(),
		"dirty":   s.Editor.Dirty(),
	})
}

// GetTree handles the GET /tree request. ?format=yaml returns YAML.
func (s *Server) GetTree(w http.ResponseWriter, r *http.Request) {
	format := codec.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = codec.FormatJSON
	}
	if format != codec.FormatJSON && format != codec.FormatYAML {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
		return
	}

	data, err := codec.MarshalFormat(s.Editor.Snapshot(), format)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if format == codec.FormatYAML {
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Write(data)
}

// PutTree handles the PUT /tree request, replacing the whole document.
func (s *Server) PutTree(w http.ResponseWriter, r *http.Request) {
	root, err := codec.Decode(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Editor.Replace(root)
	s.changed("tree")
	s.writeTree(w, http.StatusOK, s.Editor.Snapshot())
}

// GetNode handles the GET /nodes/{id} request.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request) {
	id := param(r, "id")
	n, ok := s.Editor.Find(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id))
		return
	}
	s.writeTree(w, http.StatusOK, n)
}

// PatchNode handles the PUT /nodes/{id} request with a session.Patch body.
func (s *Server) PatchNode(w http.ResponseWriter, r *http.Request) {
	var patch session.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	n, err := s.Editor.Apply(param(r, "id"), patch)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.changed("node")
	s.writeTree(w, http.StatusOK, n)
}

// DeleteNode handles the DELETE /nodes/{id} request.
func (s *Server) DeleteNode(w http.ResponseWriter, r *http.Request) {
	if err := s.Editor.RemoveNode(param(r, "id")); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.changed("node")
	w.WriteHeader(http.StatusNoContent)
}

// AddBranch handles the POST /nodes/{id}/branches request.
func (s *Server) AddBranch(w http.ResponseWriter, r *http.Request) {
	child, err := s.Editor.AddBranch(param(r, "id"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.changed("branch")
	s.writeTree(w, http.StatusCreated, child)
}

// RemoveBranch handles the DELETE /nodes/{id}/branches/{label} request.
func (s *Server) RemoveBranch(w http.ResponseWriter, r *http.Request) {
	if err := s.Editor.RemoveBranch(param(r, "id"), param(r, "label")); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.changed("branch")
	w.WriteHeader(http.StatusNoContent)
}

// Save handles the POST /save request.
func (s *Server) Save(w http.ResponseWriter, r *http.Request) {
	if err := s.Editor.Save(); err != nil {
		s.logger.Error("Save failed", "err", err)
		s.writeError(w, statusFor(err), err)
		return
	}
	s.metrics.saves.Inc()
	s.Streams.Broadcast("saved")
	writeJSON(w, http.StatusOK, map[string]string{"path": s.Editor.Path()})
}

// GetGraph handles the GET /graph request. ?format=dot returns Graphviz.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	format := graph.Format(r.URL.Query().Get("format"))
	out, err := graph.Render(s.Editor.Snapshot(), format, nil)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, out)
}

type queryMatch struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Text  string   `json:"text"`
	Depth int      `json:"depth"`
	Path  []string `json:"path"`
}

// Query handles the GET /query?q= request.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	matches, err := query.Select(s.Editor.Snapshot(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	out := make([]queryMatch, 0, len(matches))
	for _, m := range matches {
		path := m.Path
		if path == nil {
			path = []string{}
		}
		out = append(out, queryMatch{ID: m.Node.ID, Label: m.Node.Label, Text: m.Node.DisplayText(), Depth: m.Depth, Path: path})
	}
	writeJSON(w, http.StatusOK, out)
}

// changed records a mutation made through the API.
func (s *Server) changed(kind string) {
	s.metrics.edits.WithLabelValues(kind).Inc()
	s.Notify("changed")
}

// -- Helpers --

// param reads a path parameter. chi matches on RawPath when the request
// carries one (an escaped "/" or a non-canonical escape), and only then is
// the value still escaped. Otherwise it comes from the decoded Path.
func param(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRootRemoval), errors.Is(err, session.ErrNoPath):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeTree(w http.ResponseWriter, status int, n domain.Node) {
	data, err := codec.Marshal(n)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "err", err)
	} else {
		s.logger.Debug("Request rejected", "status", status, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
