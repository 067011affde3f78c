package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/internal/logging"
	"github.com/aretw0/sequencer/internal/metrics"
	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const aboutURI = "sequencer://about"

// CalculateArgs are the arguments of the calculate_sequence and
// describe_sequence tools. Omitted values take the configured defaults.
type CalculateArgs struct {
	Kind      string   `json:"kind"`
	FirstTerm *float64 `json:"first_term"`
	Step      *float64 `json:"step"`
	TermCount *float64 `json:"term_count"`
}

// Server exposes the calculator as an MCP server.
type Server struct {
	defaults  config.FormDefaults
	metrics   *metrics.Recorder
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithDefaults sets the values omitted tool arguments take.
func WithDefaults(d config.FormDefaults) Option {
	return func(s *Server) { s.defaults = d }
}

// WithMetrics records every tool calculation.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		defaults:  config.Default().Defaults,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("sequencer-mcp", strings.TrimSpace(sequencer.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.sseHandler(baseURL),
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// sseHandler mounts the SSE transport and, when metrics are enabled, /metrics.
func (s *Server) sseHandler(baseURL string) http.Handler {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sequenceParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("kind", mcp.Required(),
			mcp.Enum(sequence.Arithmetic.String(), sequence.Geometric.String()),
			mcp.Description("Sequence type")),
		mcp.WithNumber("first_term", mcp.Description("First term a₁ (optional)")),
		mcp.WithNumber("step", mcp.Description("Common difference d or common ratio r (optional)")),
		mcp.WithNumber("term_count", mcp.Min(1), mcp.Max(sequence.MaxTerms),
			mcp.Description("Number of terms n (optional)")),
	}
}

func (s *Server) registerTools() {
	// TOOL: calculate_sequence
	calcOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Calculate an arithmetic or geometric sequence: its terms, formula, last term and sum."),
		mcp.WithOutputSchema[sequencer.Report](),
	}, sequenceParams()...)
	s.mcpServer.AddTool(mcp.NewTool("calculate_sequence", calcOpts...),
		mcp.NewStructuredToolHandler(s.handleCalculate))

	// TOOL: describe_sequence
	describeOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Calculate a sequence and return the results as a markdown document."),
	}, sequenceParams()...)
	s.mcpServer.AddTool(mcp.NewTool("describe_sequence", describeOpts...), s.handleDescribe)
}

func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (sequencer.Report, error) {
	report, err := s.calculate(args)
	if err != nil {
		return sequencer.Report{}, err
	}
	return *report, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := s.calculate(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report.Markdown()), nil
}

func (s *Server) calculate(args map[string]any) (*sequencer.Report, error) {
	req, err := s.decodeRequest(args)
	if err != nil {
		s.logger.Warn("MCP: Arguments rejected", "error", err)
		return nil, err
	}

	report, err := sequencer.Calculate(req)
	s.metrics.Observe("mcp", req, err)
	if err != nil {
		if !sequence.IsValidation(err) {
			s.logger.Error("MCP: Calculation failed", "kind", req.Kind, "error", err)
		}
		return nil, err
	}
	return report, nil
}

// decodeRequest converts loosely typed tool arguments into a request.
func (s *Server) decodeRequest(raw map[string]any) (sequence.Request, error) {
	var args CalculateArgs
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &args,
	})
	if err != nil {
		return sequence.Request{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return sequence.Request{}, fmt.Errorf("invalid arguments: %w", err)
	}

	kind, err := sequence.ParseKind(args.Kind)
	if err != nil {
		return sequence.Request{}, err
	}
	req := s.defaults.Request(kind)
	if args.FirstTerm != nil {
		if err := sequence.CheckFinite("first_term", *args.FirstTerm); err != nil {
			return sequence.Request{}, err
		}
		req.FirstTerm = *args.FirstTerm
	}
	if args.Step != nil {
		if err := sequence.CheckFinite("step", *args.Step); err != nil {
			return sequence.Request{}, err
		}
		req.Step = *args.Step
	}
	if args.TermCount != nil {
		if req.TermCount, err = sequence.TermCount(*args.TermCount); err != nil {
			return sequence.Request{}, err
		}
	}
	return req, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sequencer://about
	s.mcpServer.AddResource(mcp.NewResource(aboutURI, "About Sequences",
		mcp.WithResourceDescription("Definitions and formulas of arithmetic and geometric sequences"),
		mcp.WithMIMEType("text/markdown"),
	), s.readAbout)
}

func (s *Server) readAbout(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      aboutURI,
			MIMEType: "text/markdown",
			Text:     sequencer.About(),
		},
	}, nil
}
