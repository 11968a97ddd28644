package conic

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"conic-visualizer/internal/observability"
	"conic-visualizer/internal/session"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	streamWriteWait = 10 * time.Second
	streamPongWait  = 60 * time.Second
	streamPingEvery = (streamPongWait * 9) / 10
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// streamInbound is a client message on the session stream. Which fields
// matter depends on Type: "hover" (PX, PY, Width, Height), "pan" (DX, DY),
// "zoom" (DeltaY), "reset" and "ping".
type streamInbound struct {
	Type   string  `json:"type"`
	PX     float64 `json:"px"`
	PY     float64 `json:"py"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	DeltaY float64 `json:"delta_y"`
}

type streamOutbound struct {
	Type     string            `json:"type"`
	Hover    *session.Hover    `json:"hover,omitempty"`
	Viewport *ViewportResponse `json:"viewport,omitempty"`
	Message  string            `json:"message,omitempty"`
}

// Stream handles GET /conic/sessions/{id}/ws. The client streams pointer
// positions and viewport gestures; each is answered with a hover result or
// the updated viewport.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	s, ok := h.session(ctx, trace.SpanFromContext(ctx), logger, "stream", r, w)
	if !ok {
		return
	}

	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.String("session_id", s.ID), zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(streamPongWait)); err != nil {
		logger.Warn("websocket set read deadline failed", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	writeCh := make(chan streamOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(streamPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	logger.Info("session stream opened", zap.String("session_id", s.ID))
	pushStream(writeCh, viewportMessage(s.Viewport()))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			cancel()
			<-writerDone
			logger.Info("session stream closed", zap.String("session_id", s.ID))
			return
		}
		var in streamInbound
		if err := json.Unmarshal(data, &in); err != nil {
			pushStream(writeCh, streamOutbound{Type: "error", Message: "invalid message"})
			continue
		}
		pushStream(writeCh, h.handleStream(s, in))
	}
}

func (h *Handler) handleStream(s *session.Session, in streamInbound) streamOutbound {
	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case "":
		return streamOutbound{Type: "error", Message: "type is required"}
	case "ping":
		return streamOutbound{Type: "pong"}
	case "hover":
		if !finite(in.PX, in.PY) {
			return streamOutbound{Type: "error", Message: "px and py must be finite numbers"}
		}
		width, height := in.Width, in.Height
		if width <= 0 {
			width = h.width
		}
		if height <= 0 {
			height = h.height
		}
		hover := s.Hover(in.PX, in.PY, width, height, h.tolerance)
		return streamOutbound{Type: "hover", Hover: &hover}
	case "pan":
		if !finite(in.DX, in.DY) {
			return streamOutbound{Type: "error", Message: "dx and dy must be finite numbers"}
		}
		return viewportMessage(s.Pan(in.DX, in.DY))
	case "zoom":
		if !finite(in.DeltaY) {
			return streamOutbound{Type: "error", Message: "delta_y must be a finite number"}
		}
		return viewportMessage(s.Zoom(in.DeltaY))
	case "reset":
		return viewportMessage(s.ResetViewport())
	default:
		return streamOutbound{Type: "error", Message: "unsupported type: " + in.Type}
	}
}

func viewportMessage(vp session.Viewport) streamOutbound {
	resp := newViewportResponse(vp)
	return streamOutbound{Type: "viewport", Viewport: &resp}
}

// pushStream queues out, dropping the oldest pending message when the
// writer is behind.
func pushStream(writeCh chan streamOutbound, out streamOutbound) {
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
