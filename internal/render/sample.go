package render

import "conic-visualizer/internal/geometry"

// ParabolaSamples returns points on p for x from -20 to 20 in steps of 0.1.
func ParabolaSamples(p geometry.Parabola) []geometry.Point {
	n := int(2*plotExtent/sampleStep + 0.5)
	pts := make([]geometry.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := -plotExtent + float64(i)*sampleStep
		pts = append(pts, geometry.Pt(x, p.Eval(x)))
	}
	return pts
}

// HyperbolaBranches returns the four half-branches of h (right upper, right
// lower, left upper, left lower), each sampled outwards from a vertex for
// horizontal offsets from A to 20. They are empty when A exceeds 20.
func HyperbolaBranches(h geometry.Hyperbola) [4][]geometry.Point {
	var branches [4][]geometry.Point
	for i := 0; ; i++ {
		dx := h.A + float64(i)*sampleStep
		if dx > plotExtent {
			break
		}
		dy := h.BranchHeight(dx)
		cx, cy := h.Center.X, h.Center.Y
		branches[0] = append(branches[0], geometry.Pt(cx+dx, cy+dy))
		branches[1] = append(branches[1], geometry.Pt(cx+dx, cy-dy))
		branches[2] = append(branches[2], geometry.Pt(cx-dx, cy+dy))
		branches[3] = append(branches[3], geometry.Pt(cx-dx, cy-dy))
	}
	return branches
}
