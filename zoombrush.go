package zoombrush

import (
	"fmt"
	"math"
)

// MinDomainWidth is the narrowest domain ScaleDomain will produce near zero.
// It is the reciprocal of the largest integer a float64 represents exactly.
// Away from zero the float64 spacing is coarser; see MinWidthAt.
const MinDomainWidth = 1.0 / (1<<53 - 1)

// Point is a pixel-space pointer position. Y increases downward.
type Point struct {
	X, Y float64
}

// Box is a pixel-space rectangle given by four independent coordinates.
// Corners are not ordered: a reverse drag yields X1 > X2 or Y1 > Y2, and
// every function in this package accepts such boxes. By convention X2/Y2 is
// the corner that follows the pointer during a drag.
type Box struct {
	X1, X2, Y1, Y2 float64
}

// MinX returns the smaller x coordinate.
func (b Box) MinX() float64 { return math.Min(b.X1, b.X2) }

// MaxX returns the larger x coordinate.
func (b Box) MaxX() float64 { return math.Max(b.X1, b.X2) }

// MinY returns the smaller y coordinate.
func (b Box) MinY() float64 { return math.Min(b.Y1, b.Y2) }

// MaxY returns the larger y coordinate.
func (b Box) MaxY() float64 { return math.Max(b.Y1, b.Y2) }

// Width returns the absolute horizontal extent.
func (b Box) Width() float64 { return math.Abs(b.X2 - b.X1) }

// Height returns the absolute vertical extent.
func (b Box) Height() float64 { return math.Abs(b.Y2 - b.Y1) }

// Normalized returns the box with X1 <= X2 and Y1 <= Y2.
func (b Box) Normalized() Box {
	return Box{X1: b.MinX(), X2: b.MaxX(), Y1: b.MinY(), Y2: b.MaxY()}
}

// Axis selects the horizontal or vertical component.
type Axis uint8

const (
	AxisX Axis = iota // horizontal, data x
	AxisY             // vertical, data y
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Dimension restricts an operation to one axis. The zero value is
// unconstrained.
type Dimension uint8

const (
	DimensionNone Dimension = iota // both axes
	DimensionX                     // x only; y spans the full extent
	DimensionY                     // y only; x spans the full extent
)

// AllowsX reports whether operations may change the x axis.
func (d Dimension) AllowsX() bool { return d != DimensionY }

// AllowsY reports whether operations may change the y axis.
func (d Dimension) AllowsY() bool { return d != DimensionX }

// String returns "x", "y" or "" for DimensionNone.
func (d Dimension) String() string {
	switch d {
	case DimensionX:
		return "x"
	case DimensionY:
		return "y"
	default:
		return ""
	}
}

// ParseDimension converts "x", "y" or "" to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "":
		return DimensionNone, nil
	case "x":
		return DimensionX, nil
	case "y":
		return DimensionY, nil
	}
	return DimensionNone, fmt.Errorf("zoombrush: unknown dimension %q", s)
}

// Handle names one edge of a Box.
type Handle uint8

const (
	HandleTop    Handle = iota // min y edge
	HandleBottom               // max y edge
	HandleLeft                 // min x edge
	HandleRight                // max x edge
)

// handleOrder is the order ActiveHandles tests and reports handles in.
var handleOrder = [4]Handle{HandleTop, HandleBottom, HandleLeft, HandleRight}

// String returns the lowercase edge name.
func (h Handle) String() string {
	switch h {
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	default:
		return fmt.Sprintf("Handle(%d)", uint8(h))
	}
}
