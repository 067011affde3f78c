package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/internal/logging"
	"github.com/aretw0/sequencer/internal/metrics"
	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// SequenceRequest is the JSON body of POST /api/sequences.
// Omitted fields take the configured form defaults.
type SequenceRequest struct {
	Kind      string   `json:"kind"`
	FirstTerm *float64 `json:"first_term,omitempty"`
	Step      *float64 `json:"step,omitempty"`
	TermCount *float64 `json:"term_count,omitempty"`
}

// ErrorResponse is the JSON body of every rejected API request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Server serves the HTML form and the JSON API.
type Server struct {
	Defaults config.FormDefaults
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithDefaults sets the values omitted fields and fresh forms start with.
func WithDefaults(d config.FormDefaults) Option {
	return func(s *Server) {
		s.Defaults = d
	}
}

// WithMetrics records calculations and exposes them at /metrics.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// NewHandler creates the HTTP handler with every route mounted.
func NewHandler(opts ...Option) (http.Handler, error) {
	server := &Server{
		Defaults: config.Default().Defaults,
		Logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	specRouter, err := newSpecRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(server.Logger))

	r.Get("/", server.GetForm)
	r.Post("/", server.PostForm)
	r.Get("/about", server.GetAbout)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Group(func(r chi.Router) {
		r.Use(enableCORS)
		r.Use(validateRequests(specRouter, server.Logger))
		r.Get("/health", server.GetHealth)
		r.Get("/info", server.GetInfo(doc.Info.Version))
		r.Get("/api/sequences", server.GetSequence)
		r.Post("/api/sequences", server.CreateSequence)
		r.Options("/api/sequences", func(w http.ResponseWriter, r *http.Request) {})
	})

	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics.Handler())
	}

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "status", ww.Status())
		})
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Sequencer API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// CreateSequence handles the POST /api/sequences request.
func (s *Server) CreateSequence(w http.ResponseWriter, r *http.Request) {
	var body SequenceRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		s.Logger.Warn("CreateSequence: Invalid request body", "error", err)
		return
	}
	s.respond(w, "http", body)
}

// GetSequence handles the GET /api/sequences request.
func (s *Server) GetSequence(w http.ResponseWriter, r *http.Request) {
	var body SequenceRequest
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"kind", &body.Kind},
		{"first_term", &body.FirstTerm},
		{"step", &body.Step},
		{"term_count", &body.TermCount},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, b.name == "kind", b.name, query, b.dest); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %v", b.name, err), b.name)
			s.Logger.Warn("GetSequence: Invalid query parameter", "param", b.name, "error", err)
			return
		}
	}
	s.respond(w, "http", body)
}

func (s *Server) respond(w http.ResponseWriter, source string, body SequenceRequest) {
	req, err := body.toDomain(s.Defaults)
	if err != nil {
		var ve *sequence.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusUnprocessableEntity, ve.Error(), ve.Field)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "kind")
		return
	}

	report, err := sequencer.Calculate(req)
	s.Metrics.Observe(source, req, err)
	if err != nil {
		var ve *sequence.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusUnprocessableEntity, ve.Error(), ve.Field)
			return
		}
		s.Logger.Error("Calculation failed", "kind", req.Kind, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, report, s.Logger)
}

// toDomain fills omitted fields from the defaults and parses the kind.
func (b SequenceRequest) toDomain(d config.FormDefaults) (sequence.Request, error) {
	kind, err := sequence.ParseKind(b.Kind)
	if err != nil {
		return sequence.Request{}, err
	}
	req := d.Request(kind)
	if b.FirstTerm != nil {
		req.FirstTerm = *b.FirstTerm
	}
	if b.Step != nil {
		req.Step = *b.Step
	}
	if b.TermCount != nil {
		if req.TermCount, err = sequence.TermCount(*b.TermCount); err != nil {
			return sequence.Request{}, err
		}
	}
	return req, nil
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.Logger)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(apiVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"app":         "sequencer-http",
			"version":     strings.TrimSpace(sequencer.Version),
			"api_version": apiVersion,
		}, s.Logger)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Field: field})
}
