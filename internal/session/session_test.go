package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"conic-visualizer/internal/geometry"
)

func TestCalculateReplacesDescriptor(t *testing.T) {
	s := New("s1")
	if s.Current() != nil {
		t.Fatal("new session should have no descriptor")
	}

	d, err := s.Calculate(geometry.KindParabola, geometry.Params{A: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current() != d {
		t.Fatal("current descriptor should be the one just calculated")
	}

	d2, err := s.Calculate(geometry.KindEllipse, geometry.Params{A: 5, B: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Current(); got != d2 || got.Kind() != geometry.KindEllipse {
		t.Fatalf("got %v, expected the ellipse", got)
	}
}

func TestCalculateFailureRetainsPrevious(t *testing.T) {
	s := New("s1")
	prev, err := s.Calculate(geometry.KindHyperbola, geometry.Params{A: 4, B: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.Calculate(geometry.KindEllipse, geometry.Params{A: 2, B: 2})
	if !errors.Is(err, geometry.ErrDivisionByZero) {
		t.Fatalf("got error %v, expected division by zero", err)
	}
	if s.Current() != prev {
		t.Errorf("failed calculation replaced the descriptor with %v", s.Current())
	}

	s.Clear()
	if s.Current() != nil {
		t.Error("Clear should drop the descriptor")
	}
}

func TestSessionViewport(t *testing.T) {
	s := New("s1")
	s.Pan(10, 20)
	vp := s.Zoom(1)
	if vp.OffsetX != 10 || vp.OffsetY != 20 || vp.Scale != DefaultScale*zoomOutFactor {
		t.Fatalf("got %+v", vp)
	}
	if s.Viewport() != vp {
		t.Error("Viewport should return the latest state")
	}
	if got := s.ResetViewport(); got != NewViewport() {
		t.Errorf("reset gave %+v", got)
	}
}

func TestHover(t *testing.T) {
	s := New("s1")

	h := s.Hover(400, 300, 800, 600, geometry.DefaultTolerance)
	if h.OnCurve || h.Point != geometry.Pt(0, 0) {
		t.Fatalf("got %+v without a descriptor", h)
	}

	if _, err := s.Calculate(geometry.KindEllipse, geometry.Params{A: 5, B: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (5, 0) in plot space is 200px right of the center.
	h = s.Hover(600, 300, 800, 600, geometry.DefaultTolerance)
	if !h.OnCurve || h.Point != geometry.Pt(5, 0) {
		t.Errorf("got %+v, expected (5, 0) on the curve", h)
	}
	h = s.Hover(404, 296, 800, 600, geometry.DefaultTolerance)
	if h.OnCurve {
		t.Errorf("got %+v, expected off the curve", h)
	}
	if h.Point != geometry.Pt(0.1, 0.1) {
		t.Errorf("got %v, expected (0.1, 0.1)", h.Point)
	}
}

func TestSessionConcurrentUse(t *testing.T) {
	s := New("s1")
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				s.Pan(1, 1)
				_, _ = s.Calculate(geometry.KindParabola, geometry.Params{A: float64(i + j + 1)})
				_ = s.Hover(float64(j), float64(j), 800, 600, geometry.DefaultTolerance)
			}
		}()
	}
	wg.Wait()
	if vp := s.Viewport(); vp.OffsetX != 400 || vp.OffsetY != 400 {
		t.Errorf("got offsets (%v, %v), expected (400, 400)", vp.OffsetX, vp.OffsetY)
	}
}

func TestStore(t *testing.T) {
	st := NewStore(2, time.Minute)
	a := st.Create()
	b := st.Create()
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("got ids %q and %q", a.ID, b.ID)
	}
	if got, ok := st.Get(a.ID); !ok || got != a {
		t.Fatal("expected to find the first session")
	}

	// a was used more recently than b, so b is evicted.
	c := st.Create()
	if _, ok := st.Get(b.ID); ok {
		t.Error("expected the least recently used session to be evicted")
	}
	if st.Len() != 2 {
		t.Errorf("got %d sessions, expected 2", st.Len())
	}

	if !st.Delete(c.ID) {
		t.Error("expected Delete to find the session")
	}
	if st.Delete(c.ID) {
		t.Error("expected a second Delete to report a missing session")
	}
	if _, ok := st.Get("missing"); ok {
		t.Error("expected no session for an unknown id")
	}
}

func TestStoreExpiry(t *testing.T) {
	st := NewStore(4, 20*time.Millisecond)
	s := st.Create()
	time.Sleep(60 * time.Millisecond)
	if _, ok := st.Get(s.ID); ok {
		t.Error("expected the session to expire")
	}
}
