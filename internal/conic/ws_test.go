package conic

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/session"

	"github.com/gorilla/websocket"
)

func dialStream(t *testing.T, f *fixture, id string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(f.router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/conic/sessions/" + id + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readStream(t *testing.T, conn *websocket.Conn) streamOutbound {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("setting read deadline: %v", err)
	}
	var out streamOutbound
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("reading stream message: %v", err)
	}
	return out
}

func TestStreamHoverAndViewport(t *testing.T) {
	f := newFixture(t)
	id := f.newSession(t)
	s, _ := f.store.Get(id)
	if _, err := s.Calculate(geometry.KindEllipse, geometry.Params{A: 5, B: 3}); err != nil {
		t.Fatalf("calculate: %v", err)
	}

	conn := dialStream(t, f, id)

	hello := readStream(t, conn)
	if hello.Type != "viewport" || hello.Viewport == nil || hello.Viewport.Viewport != session.NewViewport() {
		t.Fatalf("expected the initial viewport, got %+v", hello)
	}

	// (5, 0) is the right vertex; on a 400x300 canvas it sits at (400, 150).
	if err := conn.WriteJSON(streamInbound{Type: "hover", PX: 400, PY: 150}); err != nil {
		t.Fatalf("writing hover: %v", err)
	}
	out := readStream(t, conn)
	if out.Type != "hover" || out.Hover == nil {
		t.Fatalf("expected a hover answer, got %+v", out)
	}
	if out.Hover.Point != geometry.Pt(5, 0) || !out.Hover.OnCurve {
		t.Errorf("unexpected hover %+v", out.Hover)
	}

	if err := conn.WriteJSON(streamInbound{Type: "zoom", DeltaY: 3}); err != nil {
		t.Fatalf("writing zoom: %v", err)
	}
	out = readStream(t, conn)
	if out.Type != "viewport" || out.Viewport == nil || !approxEqual(out.Viewport.Viewport.Scale, 36) {
		t.Fatalf("expected zoomed out viewport, got %+v", out)
	}
	if !approxEqual(s.Viewport().Scale, 36) {
		t.Errorf("zoom was not applied to the session, scale %g", s.Viewport().Scale)
	}

	if err := conn.WriteJSON(streamInbound{Type: "pan", DX: 4, DY: 8}); err != nil {
		t.Fatalf("writing pan: %v", err)
	}
	out = readStream(t, conn)
	if out.Viewport == nil || out.Viewport.Viewport.OffsetX != 4 || out.Viewport.Viewport.OffsetY != 8 {
		t.Fatalf("expected panned viewport, got %+v", out)
	}
}

func TestStreamRejectsBadMessages(t *testing.T) {
	f := newFixture(t)
	conn := dialStream(t, f, f.newSession(t))
	_ = readStream(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("writing: %v", err)
	}
	if out := readStream(t, conn); out.Type != "error" || out.Message != "invalid message" {
		t.Errorf("unexpected answer %+v", out)
	}

	if err := conn.WriteJSON(streamInbound{Type: "teleport"}); err != nil {
		t.Fatalf("writing: %v", err)
	}
	if out := readStream(t, conn); out.Type != "error" || !strings.Contains(out.Message, "teleport") {
		t.Errorf("unexpected answer %+v", out)
	}

	if err := conn.WriteJSON(streamInbound{Type: "ping"}); err != nil {
		t.Fatalf("writing: %v", err)
	}
	if out := readStream(t, conn); out.Type != "pong" {
		t.Errorf("expected pong, got %+v", out)
	}
}

func TestHandleStreamWithoutConic(t *testing.T) {
	h := NewHandler(session.NewStore(1, time.Minute), nil, Options{})
	s := session.New("s")

	out := h.handleStream(s, streamInbound{Type: "HOVER", PX: 400, PY: 300})
	if out.Type != "hover" || out.Hover.OnCurve {
		t.Errorf("hover on an empty session must not be on a curve, got %+v", out)
	}
	if out.Hover.Point != geometry.Pt(0, 0) {
		t.Errorf("expected the origin of the default 800x600 canvas, got %v", out.Hover.Point)
	}

	if out := h.handleStream(s, streamInbound{}); out.Type != "error" {
		t.Errorf("expected an error for a message without type, got %+v", out)
	}
	if out := h.handleStream(s, streamInbound{Type: "reset"}); out.Viewport == nil || out.Viewport.Viewport != session.NewViewport() {
		t.Errorf("unexpected reset answer %+v", out)
	}
}
