package session

import (
	"sync"
	"time"

	"conic-visualizer/internal/geometry"
)

// Session is the state of one interactive visualizer: the current
// descriptor, if any, and the viewport. It is safe for concurrent use.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.RWMutex
	current  geometry.Descriptor
	viewport Viewport
}

// New returns an empty session with a default viewport.
func New(id string) *Session {
	return &Session{
		ID:       id,
		Created:  time.Now(),
		viewport: NewViewport(),
	}
}

// Calculate solves the conic and makes it the current descriptor. When
// solving fails the previous descriptor is kept and the error returned.
func (s *Session) Calculate(kind geometry.Kind, p geometry.Params) (geometry.Descriptor, error) {
	d, err := geometry.Solve(kind, p)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = d
	s.mu.Unlock()
	return d, nil
}

// Clear drops the current descriptor.
func (s *Session) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the current descriptor, or nil when nothing has been
// calculated yet.
func (s *Session) Current() geometry.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) Viewport() Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// Snapshot returns the descriptor and viewport as of a single instant.
func (s *Session) Snapshot() (geometry.Descriptor, Viewport) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.viewport
}

// Pan drags the viewport by (dx, dy) screen pixels.
func (s *Session) Pan(dx, dy float64) Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = s.viewport.Pan(dx, dy)
	return s.viewport
}

// Zoom applies one wheel step to the viewport.
func (s *Session) Zoom(deltaY float64) Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = s.viewport.Zoom(deltaY)
	return s.viewport
}

// ResetViewport restores the centered, default-zoom viewport.
func (s *Session) ResetViewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = NewViewport()
	return s.viewport
}

// Hover is the answer to a pointer position.
type Hover struct {
	// Point is the plot position under the pointer, rounded to two decimals.
	Point   geometry.Point `json:"point"`
	OnCurve bool           `json:"on_curve"`
}

// Hover converts a pointer position on a width×height screen to plot
// coordinates and tests it against the current descriptor.
func (s *Session) Hover(px, py float64, width, height int, tol geometry.Tolerance) Hover {
	d, vp := s.Snapshot()
	pt := vp.ToPlot(px, py, width, height)
	pt = geometry.Pt(roundCoord(pt.X), roundCoord(pt.Y))
	h := Hover{Point: pt}
	if d != nil {
		h.OnCurve = tol.IsOnCurve(d, pt)
	}
	return h
}
