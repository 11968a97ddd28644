package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conic-visualizer/internal/conic"
	"conic-visualizer/internal/observability"
	"conic-visualizer/internal/render"
	"conic-visualizer/internal/session"
	"conic-visualizer/internal/testutil"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *session.Store) {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := conic.InitMetrics(); err != nil {
		t.Fatalf("initializing conic metrics: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("creating renderer: %v", err)
	}
	t.Cleanup(func() { _ = renderer.Close() })

	store := session.NewStore(16, time.Minute)
	return NewRouter(conic.NewHandler(store, renderer, conic.Options{})), store
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckStatus(t, w, http.StatusOK)

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterSolveSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router, _ := newTestRouter(t)

	body := []byte(`{"kind":"parabola","params":{"a":1,"b":0,"c":0}}`)
	req := httptest.NewRequest(http.MethodPost, "/conic/solve", bytes.NewReader(body))
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckStatus(t, w, http.StatusOK)

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Result().Body, &payload)

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	descriptor, ok := payload["descriptor"].(map[string]any)
	if !ok {
		t.Fatalf("expected descriptor object, got %#v", payload["descriptor"])
	}
	if descriptor["kind"] != "parabola" {
		t.Fatalf("expected kind parabola, got %#v", descriptor["kind"])
	}
}

func TestNewRouterDomainErrorIsUnprocessable(t *testing.T) {
	router, _ := newTestRouter(t)

	body := []byte(`{"kind":"parabola","params":{"a":0,"b":1,"c":1}}`)
	req := httptest.NewRequest(http.MethodPost, "/conic/solve", bytes.NewReader(body))
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckStatus(t, w, http.StatusUnprocessableEntity)

	var payload map[string]string
	testutil.DecodeJSONBody(t, w.Result().Body, &payload)

	if !strings.Contains(payload["error"], "division by zero") {
		t.Fatalf("expected a division by zero message, got %q", payload["error"])
	}
	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in error JSON body")
	}
}

func TestNewRouterMetricsExposeSessionGauge(t *testing.T) {
	router, store := newTestRouter(t)

	// /metrics serves the default registry.
	if err := conic.RegisterSessionGauge(prometheus.DefaultRegisterer, store); err != nil {
		t.Fatalf("registering session gauge: %v", err)
	}

	store.Create()
	store.Create()

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/metrics", nil), router)
	testutil.CheckStatus(t, w, http.StatusOK)

	raw, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatalf("reading metrics: %v", err)
	}
	if !strings.Contains(string(raw), "conic_sessions_active 2") {
		t.Fatalf("expected conic_sessions_active 2 in metrics output:\n%s", raw)
	}
}

func TestNewRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/conic/nope", nil), router)
	testutil.CheckStatus(t, w, http.StatusNotFound)
}
