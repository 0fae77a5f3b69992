// Package server exposes the tagging pipeline over HTTP: a health probe,
// a POST /tag endpoint, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/go-reftag/internal/config"
	"github.com/example/go-reftag/internal/tagging"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Tagger labels a text against reference strings, one instance per
// sentence. A non-empty scheme overrides the configured coding scheme.
type Tagger interface {
	Tag(ctx context.Context, text string, refs []string, scheme string) ([]tagging.Instance, error)
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes   int
	workers        int
	requestTimeout time.Duration
	logger         *slog.Logger
	registry       *prometheus.Registry
}

func defaultOptions() options {
	return options{
		maxTextBytes:   1 << 20,
		workers:        4,
		requestTimeout: 30 * time.Second,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for POST /tag.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of concurrent tagging calls.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request tagging deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistry sets the Prometheus registry backing /metrics. By default
// each handler gets its own registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *options) { o.registry = r }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	tagger Tagger
	opts   options
	sem    chan struct{} // semaphore for worker pool
	log    *slog.Logger
	met    *metrics
}

// NewHandler returns an http.Handler serving /health, POST /tag, and
// /metrics.
func NewHandler(tagger Tagger, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.registry == nil {
		opts.registry = prometheus.NewRegistry()
	}

	h := &handler{
		tagger: tagger,
		opts:   opts,
		log:    opts.logger,
		met:    newMetrics(opts.registry),
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/tag", h.handleTag)
	mux.Handle("/metrics", promhttp.HandlerFor(opts.registry, promhttp.HandlerOpts{}))
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type tagRequest struct {
	Text         string   `json:"text"`
	References   []string `json:"references"`
	CodingScheme string   `json:"coding_scheme"`
}

type tagResponse struct {
	Instances []tagging.Instance `json:"instances"`
}

func (h *handler) handleTag(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.met.requests.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Body == nil {
		h.met.requests.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "request body is required")
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.met.requests.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if req.Text == "" {
		h.met.requests.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "text field is required")
		return
	}

	if len(req.Text) > h.opts.maxTextBytes {
		h.met.requests.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return
	}

	// Acquire a worker slot, honouring cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
		case <-r.Context().Done():
			h.met.requests.WithLabelValues("cancelled").Inc()
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return
		}
		defer func() { <-h.sem }()
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	instances, err := h.tagger.Tag(ctx, req.Text, req.References, req.CodingScheme)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.met.requests.WithLabelValues("timeout").Inc()
			h.log.WarnContext(r.Context(), "tagging timed out",
				slog.Int("text_len", len(req.Text)),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusGatewayTimeout, "tagging timed out")
			return
		}
		h.met.requests.WithLabelValues("error").Inc()
		h.log.ErrorContext(r.Context(), "tagging failed",
			slog.Int("text_len", len(req.Text)),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.met.requests.WithLabelValues("ok").Inc()
	h.met.instances.Add(float64(len(instances)))
	h.met.duration.Observe(elapsed.Seconds())

	h.log.InfoContext(r.Context(), "tagging complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("references", len(req.References)),
		slog.Int("instances", len(instances)),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	)

	if instances == nil {
		instances = []tagging.Instance{}
	}
	writeJSON(w, http.StatusOK, tagResponse{Instances: instances})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful
// shutdown.
type Server struct {
	cfg             config.Config
	tagger          Tagger
	shutdownTimeout time.Duration
}

func New(cfg config.Config, tagger Tagger) *Server {
	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Server{
		cfg:             cfg,
		tagger:          tagger,
		shutdownTimeout: timeout,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	h := NewHandler(s.tagger,
		WithWorkers(s.cfg.Server.Workers),
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
		WithRequestTimeout(s.cfg.Server.RequestTimeout),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

// ProbeHTTP checks the health endpoint of a running server.
func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
