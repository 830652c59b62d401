// Package server exposes the membership procedure over HTTP.
//
//	POST /v1/membership  {"candidate":[..],"generators":[[..],..]}
//	POST /v1/bar         {"generators":[[..],..]}
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/centraliser/instance"
	"github.com/katalvlaran/centraliser/membership"
	"github.com/katalvlaran/centraliser/quotient"
	"github.com/katalvlaran/centraliser/semigroup"
	"github.com/katalvlaran/centraliser/transformation"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// statusClientClosedRequest reports a decision abandoned because the client
// went away. Nobody reads it; it keeps such requests out of the 5xx count.
const statusClientClosedRequest = 499

// Config holds the handler's dependencies. The zero value serves with a
// discarding logger, a private registry and no limits.
type Config struct {
	Logger logrus.FieldLogger
	// Registry receives the decision metrics and backs GET /metrics.
	Registry *prometheus.Registry
	// MaxElements bounds every enumeration; <= 0 means no bound.
	MaxElements int
	// Timeout bounds each decision; 0 means none.
	Timeout time.Duration
}

// Server implements the HTTP endpoints.
type Server struct {
	logger      logrus.FieldLogger
	metrics     *membership.Metrics
	maxElements int
	timeout     time.Duration
}

// NewHandler builds the router. It fails if the metrics cannot be
// registered, e.g. because cfg.Registry already carries them.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	m, err := membership.NewMetrics(cfg.Registry)
	if err != nil {
		return nil, err
	}
	s := &Server{
		logger:      cfg.Logger,
		metrics:     m,
		maxElements: cfg.MaxElements,
		timeout:     cfg.Timeout,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/membership", s.Membership)
		r.Post("/bar", s.Bar)
	})

	return r, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type barRequest struct {
	Generators [][]int `json:"generators"`
}

type barResponse struct {
	Blocks  [][]int `json:"blocks"`
	Sources []int   `json:"sources"`
	Sinks   []int   `json:"sinks"`
}

// Membership handles POST /v1/membership.
func (s *Server) Membership(w http.ResponseWriter, r *http.Request) {
	log := s.logger.WithField("request_id", middleware.GetReqID(r.Context()))

	var in instance.Instance
	if !s.decode(w, r, &in) {
		return
	}
	f, gens, err := in.Transformations()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	res, err := membership.Decide(f, gens,
		membership.WithContext(ctx),
		membership.WithLogger(log),
		membership.WithMetrics(s.metrics),
		membership.WithMaxElements(s.maxElements),
	)
	if err != nil {
		status := statusFor(err)
		entry := log.WithError(err).WithField("status", status)
		if status == statusClientClosedRequest {
			entry.Debug("membership request cancelled by client")
		} else {
			entry.Warn("membership request failed")
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Bar handles POST /v1/bar.
func (s *Server) Bar(w http.ResponseWriter, r *http.Request) {
	var req barRequest
	if !s.decode(w, r, &req) {
		return
	}
	gens := make([]transformation.Transformation, len(req.Generators))
	for k, row := range req.Generators {
		g, err := transformation.New(row)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		gens[k] = g
	}
	n, err := transformation.ValidateGenerators(gens)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	p, err := quotient.BarContext(r.Context(), n, gens)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	resp := barResponse{Blocks: make([][]int, 0, p.Len()), Sources: p.Sources(), Sinks: p.Sinks()}
	for _, b := range p.Blocks() {
		resp.Blocks = append(resp.Blocks, b)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.logger.WithError(err).Debug("invalid request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})

		return false
	}

	return true
}

// statusFor maps decision errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, transformation.ErrEmptyGenerators),
		errors.Is(err, transformation.ErrDegreeMismatch),
		errors.Is(err, transformation.ErrImageOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, semigroup.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
