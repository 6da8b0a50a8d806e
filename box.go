package zoombrush

import "math"

// Props carries the chart configuration the box functions read. Pointer
// fields are optional; nil selects the documented fallback.
type Props struct {
	Scales Scales

	// Domain is the full domain. nil falls back to OriginalDomain(Scales).
	Domain *DomainPair
	// BrushDomain is the selected domain. nil falls back to the full domain.
	BrushDomain *DomainPair

	// Dimension limits selection to one axis.
	Dimension Dimension
	// HandleWidth is the pixel thickness of resize hit regions.
	HandleWidth float64

	// Box is the current selection box, when the caller already has one.
	Box *Box
	// Start is where the current pan gesture last stood.
	Start *Point
}

// WithinBounds reports whether pt lies inside box, edges included. Corner
// order does not matter. padding inflates the box by padding/2 on every side;
// a negative padding deflates it.
func WithinBounds(pt Point, box Box, padding float64) bool {
	pad := padding / 2
	return pt.X+pad >= box.MinX() && pt.X-pad <= box.MaxX() &&
		pt.Y+pad >= box.MinY() && pt.Y-pad <= box.MaxY()
}

// DomainBox maps selected through the chart scales into a pixel box. An axis
// excluded by p.Dimension spans full instead, so a one-dimensional brush
// always covers the whole plot on its other axis.
//
// full falls back to p.Domain and then to OriginalDomain(p.Scales); selected
// falls back to full. The result is ordered (X1 <= X2, Y1 <= Y2).
func DomainBox(p Props, full, selected *DomainPair) Box {
	if full == nil {
		full = p.Domain
	}
	if full == nil {
		orig := OriginalDomain(p.Scales)
		full = &orig
	}
	if selected == nil {
		selected = full
	}

	xDomain, yDomain := selected.X, selected.Y
	if !p.Dimension.AllowsX() {
		xDomain = full.X
	}
	if !p.Dimension.AllowsY() {
		yDomain = full.Y
	}

	x1, x2 := mapDomain(p.Scales.X, xDomain)
	y1, y2 := mapDomain(p.Scales.Y, yDomain)
	return Box{
		X1: math.Min(x1, x2), X2: math.Max(x1, x2),
		Y1: math.Min(y1, y2), Y2: math.Max(y1, y2),
	}
}

// BoxDomain is the inverse of DomainBox: it maps box back to data space. Each
// domain is ascending and tagged like the matching scale's domain.
func BoxDomain(box Box, scales Scales) DomainPair {
	return DomainPair{
		X: invertSpan(scales.X, box.X1, box.X2),
		Y: invertSpan(scales.Y, box.Y1, box.Y2),
	}
}

func mapDomain(s Scale, d Domain) (float64, float64) {
	return s.Map(d.From), s.Map(d.To)
}

func invertSpan(s Scale, p1, p2 float64) Domain {
	v1, v2 := s.Invert(p1), s.Invert(p2)
	d := Domain{From: math.Min(v1, v2), To: math.Max(v1, v2)}
	return d.withKind(s.Domain())
}
