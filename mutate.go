package zoombrush

import "math"

// ResizeMutation prepares box for dragging the active handles. Each handle
// reorders the corners of its own axis so that X2 (or Y2) is the dragged
// edge: left puts the min x in X2, right the max x, top the min y, bottom the
// max y. This also repairs polarity after a drag crossed the opposite edge.
//
// Handles are independent: a handle only touches its own axis, so a corner
// (top and left) resizes both axes at once. When two handles on the same axis
// are active the later one wins.
func ResizeMutation(box Box, active []Handle) Box {
	out := box
	for _, h := range active {
		switch h {
		case HandleLeft:
			out.X1, out.X2 = math.Max(box.X1, box.X2), math.Min(box.X1, box.X2)
		case HandleRight:
			out.X1, out.X2 = math.Min(box.X1, box.X2), math.Max(box.X1, box.X2)
		case HandleTop:
			out.Y1, out.Y2 = math.Max(box.Y1, box.Y2), math.Min(box.Y1, box.Y2)
		case HandleBottom:
			out.Y1, out.Y2 = math.Min(box.Y1, box.Y2), math.Max(box.Y1, box.Y2)
		}
	}
	return out
}

// SelectionMutation starts a fresh selection at pt. Both corners of every
// axis allowed by dim collapse onto pt; the other axis keeps box's bounds.
// The result is a zero-width (or zero-height) box to be dragged outward.
func SelectionMutation(pt Point, box Box, dim Dimension) Box {
	out := box
	if dim.AllowsX() {
		out.X1, out.X2 = pt.X, pt.X
	}
	if dim.AllowsY() {
		out.Y1, out.Y2 = pt.Y, pt.Y
	}
	return out
}

// PanBox moves the selection box with the pointer. The box is p.Box when set,
// otherwise DomainBox(p, p.Domain, p.BrushDomain). Each corner is shifted by
// pt - p.Start, so dragging right moves the box right; relative to the box,
// the content underneath moves left. Without p.Start the box is returned
// unmoved. An axis excluded by p.Dimension does not move.
func PanBox(p Props, pt Point) Box {
	var box Box
	if p.Box != nil {
		box = *p.Box
	} else {
		box = DomainBox(p, p.Domain, p.BrushDomain)
	}

	var dx, dy float64
	if p.Start != nil {
		dx = p.Start.X - pt.X
		dy = p.Start.Y - pt.Y
	}
	if !p.Dimension.AllowsX() {
		dx = 0
	}
	if !p.Dimension.AllowsY() {
		dy = 0
	}

	return Box{
		X1: box.X1 - dx, X2: box.X2 - dx,
		Y1: box.Y1 - dy, Y2: box.Y2 - dy,
	}
}

// ConstrainBox slides box inside outer without resizing it. On each axis, if
// the far edge passes outer's far edge the box is shifted back onto it;
// otherwise, if the near edge passes outer's near edge, it is shifted forward.
// Corner order of box is preserved. A box larger than outer ends up flush with
// outer's far edge.
func ConstrainBox(box, outer Box) Box {
	x1, x2 := constrainSpan(box.X1, box.X2, outer.MinX(), outer.MaxX())
	y1, y2 := constrainSpan(box.Y1, box.Y2, outer.MinY(), outer.MaxY())
	return Box{X1: x1, X2: x2, Y1: y1, Y2: y2}
}

func constrainSpan(a, b, lo, hi float64) (float64, float64) {
	near, far := math.Min(a, b), math.Max(a, b)
	var shift float64
	switch {
	case far > hi:
		shift = hi - far
	case near < lo:
		shift = lo - near
	}
	return a + shift, b + shift
}
