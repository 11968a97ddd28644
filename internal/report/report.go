// Package report formats the textual result of a calculation: the formulas
// behind each conic, the derived geometry, and the numerical
// focus–directrix check.
package report

import (
	"bytes"
	"fmt"
	"io"

	"conic-visualizer/internal/geometry"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders the report for d and its verification sample s in the
// given language.
func Write(w io.Writer, d geometry.Descriptor, s geometry.Sample, tag language.Tag) error {
	rw := &reportWriter{w: w, p: newPrinter(tag)}
	switch d := d.(type) {
	case geometry.Parabola:
		rw.parabola(d, s)
	case geometry.Ellipse:
		rw.ellipse(d, s)
	case geometry.Hyperbola:
		rw.hyperbola(d, s)
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
	return rw.err
}

// String returns the report for d, verifying it on the fly.
func String(d geometry.Descriptor, tag language.Tag) string {
	var buf bytes.Buffer
	_ = Write(&buf, d, geometry.Verify(d), tag)
	return buf.String()
}

type reportWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (rw *reportWriter) line(key message.Reference, args ...any) {
	if rw.err != nil {
		return
	}
	if _, err := rw.p.Fprintf(rw.w, key, args...); err != nil {
		rw.err = err
		return
	}
	_, rw.err = io.WriteString(rw.w, "\n")
}

func (rw *reportWriter) blank() {
	if rw.err != nil {
		return
	}
	_, rw.err = io.WriteString(rw.w, "\n")
}

func (rw *reportWriter) parabola(p geometry.Parabola, s geometry.Sample) {
	rw.line("PARABOLA")
	rw.blank()
	rw.line("Equation: %s", "y = Ax² + Bx + C")
	rw.line("y = %vx² + %vx + %v", p.A, p.B, p.C)
	rw.blank()

	rw.line("Formulas:")
	rw.line("Vertex: h = -B/(2A), k = C - B²/(4A)")
	rw.line("Focal parameter: p = 1/(4A)")
	rw.line("Focus: F = (h, k + p)")
	rw.line("Directrix: y = k - p")
	rw.line("Eccentricity: e = 1 (always)")
	rw.blank()

	rw.line("Results:")
	rw.line("Vertex: (%.3f, %.3f)", p.Vertex.X, p.Vertex.Y)
	rw.line("Focus: (%.3f, %.3f)", p.Focus.X, p.Focus.Y)
	rw.line("Directrix: y = %.3f", p.DirectrixY)
	rw.line("Eccentricity: e = %.3f", p.Eccentricity())
	rw.blank()

	rw.line("Numerical check:")
	rw.line("Test point P: (%.3f, %.3f)", s.TestPoint.X, s.TestPoint.Y)
	rw.line("|PF| = %.6f", s.DistToFocus)
	rw.line("dist(P, directrix) = %.6f", s.DistToDirectrix)
	rw.line("|PF| / dist(P, directrix) = %.6f ≈ %.6f", s.Ratio, p.Eccentricity())
}

func (rw *reportWriter) ellipse(e geometry.Ellipse, s geometry.Sample) {
	axis, upper := "y", "Y"
	orientation := "Orientation: vertical (B ≥ A)"
	if e.IsHorizontal {
		axis, upper = "x", "X"
		orientation = "Orientation: horizontal (A > B)"
	}

	rw.line("ELLIPSE")
	rw.blank()
	rw.line("Equation: %s", "(x-h)²/a² + (y-k)²/b² = 1")
	rw.line("(x-%v)²/%v² + (y-%v)²/%v² = 1", e.Center.X, e.A, e.Center.Y, e.B)
	rw.line(orientation)
	rw.blank()

	rw.line("Formulas:")
	rw.line("Major axis: %v, minor axis: %v", e.MajorAxis, e.MinorAxis)
	rw.line("Focal distance: c = √(major² - minor²)")
	rw.line("Foci: on the %s axis", upper)
	rw.line("Directrices: %s = center ± major²/c", axis)
	rw.line("Eccentricity: e = c/major")
	rw.blank()

	rw.results(e.Center, e.A, e.B, e.C, e.Focus1, e.Focus2, axis, e.Directrix1, e.Directrix2, e.E)
	rw.check(s, e.E)
}

func (rw *reportWriter) hyperbola(h geometry.Hyperbola, s geometry.Sample) {
	rw.line("HYPERBOLA")
	rw.blank()
	rw.line("Equation: %s", "(x-h)²/a² - (y-k)²/b² = 1")
	rw.line("(x-%v)²/%v² - (y-%v)²/%v² = 1", h.Center.X, h.A, h.Center.Y, h.B)
	rw.blank()

	rw.line("Formulas:")
	rw.line("Focal distance: c = √(a² + b²)")
	rw.line("Foci: F₁ = (h+c, k), F₂ = (h-c, k)")
	rw.line("Directrices: x = h ± a²/c")
	rw.line("Eccentricity: e = c/a")
	rw.blank()

	rw.results(h.Center, h.A, h.B, h.C, h.Focus1, h.Focus2, "x", h.Directrix1, h.Directrix2, h.E)
	rw.check(s, h.E)
}

// results writes the section shared by ellipses and hyperbolas.
func (rw *reportWriter) results(center geometry.Point, a, b, c float64, f1, f2 geometry.Point, axis string, d1, d2, e float64) {
	rw.line("Results:")
	rw.line("Center: (%v, %v)", center.X, center.Y)
	rw.line("Semi-axes: a = %v, b = %v", a, b)
	rw.line("Focal distance: c = %.3f", c)
	rw.line("Focus 1: (%.3f, %.3f)", f1.X, f1.Y)
	rw.line("Focus 2: (%.3f, %.3f)", f2.X, f2.Y)
	rw.line("Directrix 1: %s = %.3f", axis, d1)
	rw.line("Directrix 2: %s = %.3f", axis, d2)
	rw.line("Eccentricity: e = %.6f", e)
	rw.blank()
}

func (rw *reportWriter) check(s geometry.Sample, e float64) {
	rw.line("Numerical check:")
	rw.line("Test point P: (%.3f, %.3f)", s.TestPoint.X, s.TestPoint.Y)
	rw.line("|PF₁| = %.6f", s.DistToFocus)
	rw.line("dist(P, directrix₁) = %.6f", s.DistToDirectrix)
	rw.line("|PF| / dist(P, directrix) = %.6f ≈ %.6f", s.Ratio, e)
}
