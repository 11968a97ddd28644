package render

import (
	"fmt"

	"conic-visualizer/internal/geometry"
)

const (
	curveWidth     = 2
	focusRadius    = 5
	directrixWidth = 2
	dashLength     = 5
)

func (c *canvas) conic(d geometry.Descriptor) error {
	switch d := d.(type) {
	case geometry.Parabola:
		return c.parabola(d)
	case geometry.Ellipse:
		return c.ellipse(d)
	case geometry.Hyperbola:
		return c.hyperbola(d)
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
}

func (c *canvas) parabola(p geometry.Parabola) error {
	pts := ParabolaSamples(p)
	if err := c.polyline(pts); err != nil {
		return fmt.Errorf("drawing parabola: %w", err)
	}
	if err := c.foci(p.Focus); err != nil {
		return err
	}
	_, y := c.screen(geometry.Pt(0, p.DirectrixY))
	return c.directrices(func() {
		c.dc.DrawLine(0, y, float64(c.width), y)
	})
}

func (c *canvas) ellipse(e geometry.Ellipse) error {
	dc := c.dc
	x, y := c.screen(e.Center)
	dc.SetHexColor(c.theme.Curve)
	dc.SetLineWidth(curveWidth)
	// A is always the horizontal semi-axis, whatever the orientation.
	dc.DrawEllipse(x, y, e.A*c.vp.Scale, e.B*c.vp.Scale)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("drawing ellipse: %w", err)
	}
	if err := c.foci(e.Focus1, e.Focus2); err != nil {
		return err
	}
	return c.directrices(func() {
		if e.IsHorizontal {
			c.vertical(e.Directrix1)
			c.vertical(e.Directrix2)
		} else {
			c.horizontal(e.Directrix1)
			c.horizontal(e.Directrix2)
		}
	})
}

func (c *canvas) hyperbola(h geometry.Hyperbola) error {
	for _, branch := range HyperbolaBranches(h) {
		if err := c.polyline(branch); err != nil {
			return fmt.Errorf("drawing hyperbola: %w", err)
		}
	}
	if err := c.foci(h.Focus1, h.Focus2); err != nil {
		return err
	}
	return c.directrices(func() {
		c.vertical(h.Directrix1)
		c.vertical(h.Directrix2)
	})
}

func (c *canvas) polyline(pts []geometry.Point) error {
	if len(pts) < 2 {
		return nil
	}
	dc := c.dc
	dc.SetHexColor(c.theme.Curve)
	dc.SetLineWidth(curveWidth)
	x, y := c.screen(pts[0])
	dc.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = c.screen(pt)
		dc.LineTo(x, y)
	}
	return dc.Stroke()
}

func (c *canvas) foci(pts ...geometry.Point) error {
	dc := c.dc
	dc.SetHexColor(c.theme.Focus)
	for _, pt := range pts {
		x, y := c.screen(pt)
		dc.DrawCircle(x, y, focusRadius)
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("drawing foci: %w", err)
	}
	return nil
}

// directrices strokes whatever lines draw adds, dashed.
func (c *canvas) directrices(draw func()) error {
	dc := c.dc
	dc.SetHexColor(c.theme.Directrix)
	dc.SetLineWidth(directrixWidth)
	dc.SetDash(dashLength, dashLength)
	defer dc.ClearDash()
	draw()
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("drawing directrices: %w", err)
	}
	return nil
}

// vertical adds the full-height line x = at.
func (c *canvas) vertical(at float64) {
	x, _ := c.screen(geometry.Pt(at, 0))
	c.dc.DrawLine(x, 0, x, float64(c.height))
}

// horizontal adds the full-width line y = at.
func (c *canvas) horizontal(at float64) {
	_, y := c.screen(geometry.Pt(0, at))
	c.dc.DrawLine(0, y, float64(c.width), y)
}
