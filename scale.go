package zoombrush

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Scale maps one axis between data space and pixel space.
type Scale interface {
	// Domain returns the full data extent of the axis.
	Domain() Domain
	// Range returns the pixel positions Domain().From and Domain().To map to.
	Range() (r0, r1 float64)
	// Map converts a data value to a pixel position.
	Map(v float64) float64
	// Invert converts a pixel position back to a data value.
	Invert(px float64) float64
}

// LinearScale is a Scale with a linear data-to-pixel mapping. The zero value
// is not usable; use NewLinearScale.
type LinearScale struct {
	lin    scale.Linear
	kind   domainKind
	r0, r1 float64
}

var _ Scale = LinearScale{}

// NewLinearScale maps d.From to r0 and d.To to r1. For a vertical axis pass
// r0 > r1 so larger data values sit higher on screen.
func NewLinearScale(d Domain, r0, r1 float64) LinearScale {
	return LinearScale{
		lin:  scale.Linear{Min: d.From, Max: d.To},
		kind: d.kind,
		r0:   r0,
		r1:   r1,
	}
}

// Domain implements Scale.
func (s LinearScale) Domain() Domain {
	return Domain{From: s.lin.Min, To: s.lin.Max, kind: s.kind}
}

// Range implements Scale.
func (s LinearScale) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

// Map implements Scale.
func (s LinearScale) Map(v float64) float64 {
	return s.r0 + s.lin.Map(v)*(s.r1-s.r0)
}

// Invert implements Scale.
func (s LinearScale) Invert(px float64) float64 {
	return s.lin.Unmap((px - s.r0) / (s.r1 - s.r0))
}

// WithDomain returns a scale over d with the same pixel range. Renderers use
// it to draw the currently visible window.
func (s LinearScale) WithDomain(d Domain) LinearScale {
	return NewLinearScale(d, s.r0, s.r1)
}

// Scales holds the x and y scale of a chart.
type Scales struct {
	X, Y Scale
}

// Axis returns the scale for a.
func (s Scales) Axis(a Axis) Scale {
	if a == AxisY {
		return s.Y
	}
	return s.X
}

// OriginalDomain returns the full extent of both axes. It is the outer bound
// for every clamping operation.
func OriginalDomain(scales Scales) DomainPair {
	return DomainPair{X: scales.X.Domain(), Y: scales.Y.Domain()}
}

// DomainScale returns how many pixels one data unit of domain spans on axis.
// A zero-width domain yields an infinite or NaN ratio.
func DomainScale(domain DomainPair, scales Scales, axis Axis) float64 {
	d := domain.Axis(axis)
	r0, r1 := scales.Axis(axis).Range()
	return math.Abs(r0-r1) / (d.To - d.From)
}
