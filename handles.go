package zoombrush

// HandleSet holds the hit region of each edge handle.
type HandleSet struct {
	Top, Bottom, Left, Right Box
}

// Get returns the region for h.
func (s HandleSet) Get(h Handle) Box {
	switch h {
	case HandleTop:
		return s.Top
	case HandleBottom:
		return s.Bottom
	case HandleLeft:
		return s.Left
	default:
		return s.Right
	}
}

// Handles builds four hit regions, each width pixels thick and centered on an
// edge of box. Left and right span the box height; top and bottom span its
// width. Top sits on the min-y edge, bottom on the max-y edge. The top and
// bottom regions store Y1 > Y2; treat them as unordered like any Box.
func Handles(box Box, width float64) HandleSet {
	minX, maxX := box.MinX(), box.MaxX()
	minY, maxY := box.MinY(), box.MaxY()
	w := width / 2
	return HandleSet{
		Left:   Box{X1: minX - w, X2: minX + w, Y1: minY, Y2: maxY},
		Right:  Box{X1: maxX - w, X2: maxX + w, Y1: minY, Y2: maxY},
		Top:    Box{X1: minX, X2: maxX, Y1: minY + w, Y2: minY - w},
		Bottom: Box{X1: minX, X2: maxX, Y1: maxY + w, Y2: maxY - w},
	}
}

// ActiveHandles returns the handles whose region contains pt, in the order
// top, bottom, left, right. A corner yields two handles. It returns nil when
// no handle matches.
func ActiveHandles(pt Point, box Box, width float64) []Handle {
	set := Handles(box, width)
	var active []Handle
	for _, h := range handleOrder {
		if WithinBounds(pt, set.Get(h), 0) {
			active = append(active, h)
		}
	}
	return active
}
