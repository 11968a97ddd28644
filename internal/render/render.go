// Package render draws a conic and its focus–directrix elements on the
// coordinate plane.
package render

import (
	"fmt"
	"io"
	"math"
	"sync"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/session"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxSize bounds each image dimension.
const MaxSize = 4096

// plotExtent is how far from the origin, in plot units, open curves are
// sampled.
const plotExtent = 20

// sampleStep is the x distance between consecutive samples of an open curve.
const sampleStep = 0.1

// Theme holds the colors used for each element, as hex strings.
type Theme struct {
	Background string
	Grid       string
	Axes       string
	AxisLabel  string
	TickLabel  string
	Curve      string
	Focus      string
	Directrix  string
}

// DarkTheme is the default palette.
var DarkTheme = Theme{
	Background: "#1e1e1e",
	Grid:       "#2a2a2a",
	Axes:       "#444444",
	AxisLabel:  "#64B5F6",
	TickLabel:  "#999999",
	Curve:      "#4CAF50",
	Focus:      "#FF5252",
	Directrix:  "#64B5F6",
}

// Renderer rasterizes descriptors. It owns the font faces, so one Renderer
// should be shared and closed at shutdown. It is safe for concurrent use.
type Renderer struct {
	Theme Theme

	mu       sync.Mutex
	source   *text.FontSource
	axisFace text.Face
	tickFace text.Face
}

// New loads the embedded Go Regular font and returns a renderer using
// [DarkTheme].
func New() (*Renderer, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &Renderer{
		Theme:    DarkTheme,
		source:   source,
		axisFace: source.Face(13),
		tickFace: source.Face(11),
	}, nil
}

// Close releases the font source.
func (r *Renderer) Close() error {
	return r.source.Close()
}

// PNG renders the plane as seen through vp on a width×height image and
// writes it to w as PNG. d may be nil, in which case only the grid and axes
// are drawn.
func (r *Renderer) PNG(w io.Writer, d geometry.Descriptor, vp session.Viewport, width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return fmt.Errorf("image size %dx%d out of range (1..%d)", width, height, MaxSize)
	}
	if !vp.Valid() {
		return fmt.Errorf("invalid viewport %+v", vp)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dc := gg.NewContext(width, height)
	defer dc.Close()

	c := canvas{dc: dc, vp: vp, width: width, height: height, theme: r.Theme}
	if err := c.plane(r.axisFace); err != nil {
		return err
	}
	if d != nil {
		if err := c.conic(d); err != nil {
			return err
		}
		c.ticks(r.tickFace)
	}
	return dc.EncodePNG(w)
}

// canvas is the state of one drawing pass.
type canvas struct {
	dc     *gg.Context
	vp     session.Viewport
	width  int
	height int
	theme  Theme
}

func (c *canvas) screen(pt geometry.Point) (float64, float64) {
	return c.vp.ToScreen(pt, c.width, c.height)
}

// minGridStep is the narrowest grid spacing, in pixels, that is still drawn.
const minGridStep = 2

// plane draws the background, the grid at every plot unit and both axes.
// The grid is left out when its lines would sit closer than minGridStep.
func (c *canvas) plane(face text.Face) error {
	dc := c.dc
	w, h := float64(c.width), float64(c.height)
	cx, cy := c.vp.Origin(c.width, c.height)
	step := c.vp.Scale

	dc.ClearWithColor(gg.Hex(c.theme.Background))

	if step >= minGridStep {
		dc.SetHexColor(c.theme.Grid)
		dc.SetLineWidth(1)
		for x := math.Mod(cx, step); x < w; x += step {
			dc.DrawLine(x, 0, x, h)
		}
		for y := math.Mod(cy, step); y < h; y += step {
			dc.DrawLine(0, y, w, y)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("drawing grid: %w", err)
		}
	}

	dc.SetHexColor(c.theme.Axes)
	dc.SetLineWidth(2)
	dc.DrawLine(0, cy, w, cy)
	dc.DrawLine(cx, 0, cx, h)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("drawing axes: %w", err)
	}

	dc.SetFont(face)
	dc.SetHexColor(c.theme.AxisLabel)
	dc.DrawString("X", w-20, cy-10)
	dc.DrawString("Y", cx+10, 20)
	return nil
}

// ticks numbers the integer positions along both axes that are multiples of
// the viewport's label interval.
func (c *canvas) ticks(face text.Face) {
	dc := c.dc
	w, h := float64(c.width), float64(c.height)
	cx, cy := c.vp.Origin(c.width, c.height)
	interval := c.vp.LabelInterval()

	dc.SetFont(face)
	dc.SetHexColor(c.theme.TickLabel)
	for i := -plotExtent; i <= plotExtent; i++ {
		if i == 0 || math.Mod(float64(i), interval) != 0 {
			continue
		}
		label := fmt.Sprint(i)
		if x := cx + float64(i)*c.vp.Scale; x >= 0 && x <= w {
			dc.DrawString(label, x-5, cy+15)
		}
		if y := cy - float64(i)*c.vp.Scale; y >= 0 && y <= h {
			dc.DrawString(label, cx+5, y+4)
		}
	}
}
