package session

import (
	"math"

	"conic-visualizer/internal/geometry"
)

// DefaultScale is the initial zoom, in screen pixels per plot unit.
const DefaultScale = 40

// Zoom is clamped to [MinScale, MaxScale] pixels per plot unit.
const (
	MinScale = 0.5
	MaxScale = 1e5
)

const (
	zoomOutFactor = 0.9
	zoomInFactor  = 1.1
)

// Viewport maps the plot plane onto a screen. The plot origin sits at the
// screen center shifted by (OffsetX, OffsetY) pixels; screen y grows
// downwards while plot y grows upwards.
type Viewport struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// NewViewport returns a centered viewport at the default zoom.
func NewViewport() Viewport {
	return Viewport{Scale: DefaultScale}
}

// Origin returns the screen position of the plot origin on a width×height
// screen.
func (v Viewport) Origin(width, height int) (x, y float64) {
	return float64(width)/2 + v.OffsetX, float64(height)/2 + v.OffsetY
}

// ToPlot converts a screen position to plot coordinates.
func (v Viewport) ToPlot(px, py float64, width, height int) geometry.Point {
	cx, cy := v.Origin(width, height)
	return geometry.Pt((px-cx)/v.Scale, -(py-cy)/v.Scale)
}

// ToScreen converts plot coordinates to a screen position.
func (v Viewport) ToScreen(pt geometry.Point, width, height int) (x, y float64) {
	cx, cy := v.Origin(width, height)
	return cx + pt.X*v.Scale, cy - pt.Y*v.Scale
}

// Pan returns the viewport dragged by (dx, dy) screen pixels.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Zoom returns the viewport after one wheel step. A positive deltaY (wheel
// down) zooms out, anything else zooms in. The scale stops at MinScale and
// MaxScale.
func (v Viewport) Zoom(deltaY float64) Viewport {
	if deltaY > 0 {
		v.Scale = math.Max(v.Scale*zoomOutFactor, MinScale)
	} else {
		v.Scale = math.Min(v.Scale*zoomInFactor, MaxScale)
	}
	return v
}

// LabelInterval returns the spacing, in plot units, between numbered ticks
// on the axes at the current zoom.
func (v Viewport) LabelInterval() float64 {
	switch {
	case v.Scale < 20:
		return 5
	case v.Scale < 30:
		return 2
	case v.Scale > 80:
		return 0.5
	default:
		return 1
	}
}

// Valid reports whether the viewport can be used for drawing: the scale is
// within [MinScale, MaxScale] and both offsets are finite.
func (v Viewport) Valid() bool {
	return v.Scale >= MinScale && v.Scale <= MaxScale &&
		!math.IsNaN(v.OffsetX) && !math.IsNaN(v.OffsetY) &&
		!math.IsInf(v.OffsetX, 0) && !math.IsInf(v.OffsetY, 0)
}

// roundCoord rounds to the two decimals shown next to the pointer.
func roundCoord(f float64) float64 {
	return math.Round(f*100) / 100
}
