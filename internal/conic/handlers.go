package conic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/observability"
	"conic-visualizer/internal/render"
	"conic-visualizer/internal/report"
	"conic-visualizer/internal/session"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// tracer is the conic domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("conic")

// Default canvas size used when a request does not name one.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options configures a Handler. Zero fields take their defaults.
type Options struct {
	Tolerance geometry.Tolerance
	Width     int
	Height    int
}

// Handler serves the conic endpoints on top of a session store and a
// renderer.
type Handler struct {
	store     *session.Store
	renderer  *render.Renderer
	tolerance geometry.Tolerance
	width     int
	height    int
}

func NewHandler(store *session.Store, renderer *render.Renderer, opts Options) *Handler {
	h := &Handler{
		store:     store,
		renderer:  renderer,
		tolerance: opts.Tolerance,
		width:     opts.Width,
		height:    opts.Height,
	}
	if h.tolerance == (geometry.Tolerance{}) {
		h.tolerance = geometry.DefaultTolerance
	}
	if h.width <= 0 {
		h.width = DefaultWidth
	}
	if h.height <= 0 {
		h.height = DefaultHeight
	}
	return h
}

// ---------------------------------------------------------------------------
// Handlers: calculations
// ---------------------------------------------------------------------------

// Solve handles POST /conic/solve. It computes a descriptor without touching
// any session.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "conic.solve",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req SolveRequest
	if !h.decodeSolveRequest(ctx, span, logger, "solve", r, &req, w) {
		return
	}

	d, err := h.solve(ctx, span, req.Kind, req.params(), geometry.Solve)
	if err != nil {
		recordSolveError(ctx, span, logger, "solve", err, w)
		return
	}

	logger.Info("conic solved",
		zap.Stringer("kind", d.Kind()),
		zap.Float64("eccentricity", d.Eccentricity()),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, newSolveResponse(d, reportLanguage(r, req.Lang)))
}

// Calculate handles POST /conic/sessions/{id}/calculate. On success the
// result becomes the session's current descriptor; on failure the previous
// descriptor is kept.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "conic.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	s, ok := h.session(ctx, span, logger, "calculate", r, w)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("session.id", s.ID))

	var req SolveRequest
	if !h.decodeSolveRequest(ctx, span, logger, "calculate", r, &req, w) {
		return
	}

	d, err := h.solve(ctx, span, req.Kind, req.params(), s.Calculate)
	if err != nil {
		recordSolveError(ctx, span, logger, "calculate", err, w)
		return
	}

	logger.Info("session conic updated",
		zap.String("session_id", s.ID),
		zap.Stringer("kind", d.Kind()),
		zap.Float64("eccentricity", d.Eccentricity()),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, newSolveResponse(d, reportLanguage(r, req.Lang)))
}

func (h *Handler) decodeSolveRequest(ctx context.Context, span trace.Span, logger *zap.Logger, op string, r *http.Request, req *SolveRequest, w http.ResponseWriter) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op, "invalid request body", err, http.StatusBadRequest, w)
		return false
	}
	if !validKind(req.Kind) {
		observability.RecordError(ctx, span, logger, errorCounter, op, "kind must be one of parabola, ellipse, hyperbola",
			fmt.Errorf("kind %d", int(req.Kind)), http.StatusBadRequest, w)
		return false
	}
	return true
}

// solve runs compute, recording the parameters, duration and outcome on
// span and the conic instruments.
func (h *Handler) solve(ctx context.Context, span trace.Span, kind geometry.Kind, p geometry.Params, compute func(geometry.Kind, geometry.Params) (geometry.Descriptor, error)) (geometry.Descriptor, error) {
	span.SetAttributes(
		attribute.String("conic.kind", kind.String()),
		attribute.Float64("conic.param.a", p.A),
		attribute.Float64("conic.param.b", p.B),
		attribute.Float64("conic.param.c", p.C),
		attribute.Float64("conic.param.center_x", p.CenterX),
		attribute.Float64("conic.param.center_y", p.CenterY),
	)

	start := time.Now()
	d, err := compute(kind, p)
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6 // ms

	if err != nil {
		return nil, err
	}

	attrs := metric.WithAttributes(attribute.String("kind", kind.String()))
	solveCounter.Add(ctx, 1, attrs)
	solveHistogram.Record(ctx, elapsed, attrs)
	eccentricityGauge.Record(ctx, d.Eccentricity(), attrs)

	span.AddEvent("solve.complete", trace.WithAttributes(
		attribute.Float64("eccentricity", d.Eccentricity()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("conic.eccentricity", d.Eccentricity()))
	span.SetStatus(codes.Ok, "")

	return d, nil
}

// recordSolveError answers a failed solve: 422 for a domain violation,
// 400 for anything else.
func recordSolveError(ctx context.Context, span trace.Span, logger *zap.Logger, op string, err error, w http.ResponseWriter) {
	status := http.StatusBadRequest
	var domainErr *geometry.DomainError
	if errors.As(err, &domainErr) {
		status = http.StatusUnprocessableEntity
		span.SetAttributes(
			attribute.String("conic.error.kind", domainErr.Kind.String()),
			attribute.String("conic.error.param", domainErr.Param),
		)
	}
	observability.RecordError(ctx, span, logger, errorCounter, op, err.Error(), err, status, w)
}

func newSolveResponse(d geometry.Descriptor, tag language.Tag) SolveResponse {
	sample := geometry.Verify(d)

	var buf strings.Builder
	// strings.Builder never fails.
	_ = report.Write(&buf, d, sample, tag)

	return SolveResponse{
		Descriptor: newDescriptorResponse(d),
		Sample:     sample,
		Residual:   sample.Residual(d.Eccentricity()),
		Report:     buf.String(),
	}
}

// ---------------------------------------------------------------------------
// Handlers: sessions
// ---------------------------------------------------------------------------

// CreateSession handles POST /conic/sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()

	observability.LoggerWithTrace(r.Context()).Info("session created",
		zap.String("session_id", s.ID),
		observability.RequestIDField(r.Context()),
	)

	writeJSON(w, http.StatusCreated, newSessionResponse(s))
}

// GetSession handles GET /conic/sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, ok := h.session(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx), "get_session", r, w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(s))
}

// DeleteSession handles DELETE /conic/sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if !h.store.Delete(id) {
		observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx), errorCounter,
			"delete_session", "session not found", fmt.Errorf("session %q", id), http.StatusNotFound, w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pan handles POST /conic/sessions/{id}/pan.
func (h *Handler) Pan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	logger := observability.LoggerWithTrace(ctx)

	s, ok := h.session(ctx, span, logger, "pan", r, w)
	if !ok {
		return
	}

	var req PanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "pan", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if !finite(req.DX, req.DY) {
		observability.RecordError(ctx, span, logger, errorCounter, "pan", "invalid numeric input",
			fmt.Errorf("dx=%g dy=%g", req.DX, req.DY), http.StatusBadRequest, w)
		return
	}

	writeJSON(w, http.StatusOK, newViewportResponse(s.Pan(req.DX, req.DY)))
}

// Zoom handles POST /conic/sessions/{id}/zoom.
func (h *Handler) Zoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	logger := observability.LoggerWithTrace(ctx)

	s, ok := h.session(ctx, span, logger, "zoom", r, w)
	if !ok {
		return
	}

	var req ZoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "zoom", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if !finite(req.DeltaY) {
		observability.RecordError(ctx, span, logger, errorCounter, "zoom", "invalid numeric input",
			fmt.Errorf("delta_y=%g", req.DeltaY), http.StatusBadRequest, w)
		return
	}

	writeJSON(w, http.StatusOK, newViewportResponse(s.Zoom(req.DeltaY)))
}

// ResetViewport handles POST /conic/sessions/{id}/reset.
func (h *Handler) ResetViewport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, ok := h.session(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx), "reset", r, w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newViewportResponse(s.ResetViewport()))
}

// Hover handles GET /conic/sessions/{id}/hover?px=&py=&width=&height=.
func (h *Handler) Hover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	logger := observability.LoggerWithTrace(ctx)

	s, ok := h.session(ctx, span, logger, "hover", r, w)
	if !ok {
		return
	}

	q := r.URL.Query()
	px, errX := strconv.ParseFloat(q.Get("px"), 64)
	py, errY := strconv.ParseFloat(q.Get("py"), 64)
	if err := errors.Join(errX, errY); err != nil || !finite(px, py) {
		if err == nil {
			err = fmt.Errorf("px=%g py=%g", px, py)
		}
		observability.RecordError(ctx, span, logger, errorCounter, "hover", "px and py must be finite numbers", err, http.StatusBadRequest, w)
		return
	}
	width, height, err := h.canvasSize(q.Get("width"), q.Get("height"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "hover", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	writeJSON(w, http.StatusOK, s.Hover(px, py, width, height, h.tolerance))
}

// Plot handles GET /conic/sessions/{id}/plot.png?width=&height=.
func (h *Handler) Plot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "conic.plot",
		trace.WithAttributes(attribute.String("request.id", observability.RequestIDFromContext(ctx))),
	)
	defer span.End()

	s, ok := h.session(ctx, span, logger, "plot", r, w)
	if !ok {
		return
	}

	q := r.URL.Query()
	width, height, err := h.canvasSize(q.Get("width"), q.Get("height"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "plot", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	d, vp := s.Snapshot()
	span.SetAttributes(
		attribute.Int("plot.width", width),
		attribute.Int("plot.height", height),
		attribute.Float64("plot.scale", vp.Scale),
		attribute.Bool("plot.has_conic", d != nil),
	)

	var buf bytes.Buffer
	if err := h.renderer.PNG(&buf, d, vp, width, height); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "plot", "rendering failed", err, http.StatusInternalServerError, w)
		return
	}
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// session looks up the session named by the {id} URL parameter, answering
// 404 when it does not exist.
func (h *Handler) session(ctx context.Context, span trace.Span, logger *zap.Logger, op string, r *http.Request, w http.ResponseWriter) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	s, ok := h.store.Get(id)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, op, "session not found",
			fmt.Errorf("session %q", id), http.StatusNotFound, w)
		return nil, false
	}
	return s, true
}

// canvasSize parses optional width and height query values.
func (h *Handler) canvasSize(rawWidth, rawHeight string) (int, int, error) {
	width, height := h.width, h.height
	var err error
	if rawWidth != "" {
		if width, err = strconv.Atoi(rawWidth); err != nil {
			return 0, 0, fmt.Errorf("width must be an integer")
		}
	}
	if rawHeight != "" {
		if height, err = strconv.Atoi(rawHeight); err != nil {
			return 0, 0, fmt.Errorf("height must be an integer")
		}
	}
	if width <= 0 || height <= 0 || width > render.MaxSize || height > render.MaxSize {
		return 0, 0, fmt.Errorf("width and height must be between 1 and %d", render.MaxSize)
	}
	return width, height, nil
}

func newSessionResponse(s *session.Session) SessionResponse {
	d, vp := s.Snapshot()
	return SessionResponse{
		SessionID:     s.ID,
		Viewport:      vp,
		LabelInterval: vp.LabelInterval(),
		Descriptor:    newDescriptorResponse(d),
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validKind(k geometry.Kind) bool {
	for _, known := range geometry.Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// reportLanguage picks the report language from the request body, falling back
// to the Accept-Language header.
func reportLanguage(r *http.Request, lang string) language.Tag {
	if strings.TrimSpace(lang) == "" {
		lang = r.Header.Get("Accept-Language")
	}
	return report.ParseLanguage(lang)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
