package testutil

import (
	"io"
	"net/http"
	"testing"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest(http.MethodPost, "/conic/solve", `{"kind":"ellipse"}`)
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q, expected application/json", ct)
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(b) != `{"kind":"ellipse"}` {
		t.Errorf("got body %q", b)
	}

	req = NewRequest(http.MethodGet, "/health", "")
	if req.ContentLength != 0 || req.Header.Get("Content-Type") != "" {
		t.Errorf("expected an empty request, got length %d and type %q", req.ContentLength, req.Header.Get("Content-Type"))
	}
}

func TestExecuteRequestAndDecode(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"session_id":"s1"}`)
	})

	w := ExecuteRequest(NewRequest(http.MethodPost, "/conic/sessions", ""), h)
	CheckStatus(t, w, http.StatusCreated)

	var got struct {
		SessionID string `json:"session_id"`
	}
	DecodeJSONBody(t, w.Body, &got)
	if got.SessionID != "s1" {
		t.Errorf("got session id %q, expected s1", got.SessionID)
	}
}
