package conic

import (
	"fmt"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/session"
)

// SolveRequest is the JSON body for POST /conic/solve and
// POST /conic/sessions/{id}/calculate. When Params is omitted the default
// parameters for Kind are used.
type SolveRequest struct {
	Kind   geometry.Kind    `json:"kind"`
	Params *geometry.Params `json:"params,omitempty"`
	Lang   string           `json:"lang,omitempty"` // report language, e.g. "pt-BR"
}

func (req SolveRequest) params() geometry.Params {
	if req.Params == nil {
		return geometry.DefaultParams(req.Kind)
	}
	return *req.Params
}

// DescriptorResponse carries a solved conic. Exactly one of the variant
// fields is set, matching Kind.
type DescriptorResponse struct {
	Kind         geometry.Kind       `json:"kind"`
	Eccentricity float64             `json:"eccentricity"`
	Parabola     *geometry.Parabola  `json:"parabola,omitempty"`
	Ellipse      *geometry.Ellipse   `json:"ellipse,omitempty"`
	Hyperbola    *geometry.Hyperbola `json:"hyperbola,omitempty"`
}

func newDescriptorResponse(d geometry.Descriptor) *DescriptorResponse {
	if d == nil {
		return nil
	}
	resp := &DescriptorResponse{Kind: d.Kind(), Eccentricity: d.Eccentricity()}
	switch d := d.(type) {
	case geometry.Parabola:
		resp.Parabola = &d
	case geometry.Ellipse:
		resp.Ellipse = &d
	case geometry.Hyperbola:
		resp.Hyperbola = &d
	default:
		panic(fmt.Sprintf("unhandled descriptor %T", d))
	}
	return resp
}

// SolveResponse is the JSON response for a successful calculation.
type SolveResponse struct {
	Descriptor *DescriptorResponse `json:"descriptor"`
	Sample     geometry.Sample     `json:"sample"`
	Residual   float64             `json:"residual"` // |ratio - eccentricity|
	Report     string              `json:"report"`
}

// SessionResponse describes a session's visible state.
type SessionResponse struct {
	SessionID     string              `json:"session_id"`
	Viewport      session.Viewport    `json:"viewport"`
	LabelInterval float64             `json:"label_interval"`
	Descriptor    *DescriptorResponse `json:"descriptor,omitempty"`
}

// PanRequest drags the viewport by screen pixels.
type PanRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ZoomRequest is one mouse-wheel step; positive DeltaY zooms out.
type ZoomRequest struct {
	DeltaY float64 `json:"delta_y"`
}

// ViewportResponse is returned after the viewport moves.
type ViewportResponse struct {
	Viewport      session.Viewport `json:"viewport"`
	LabelInterval float64          `json:"label_interval"`
}

func newViewportResponse(vp session.Viewport) ViewportResponse {
	return ViewportResponse{Viewport: vp, LabelInterval: vp.LabelInterval()}
}
