package zoombrush

import "math"

// Wheel deltas are divided by wheelDivisor and capped at maxWheelStep.
const (
	wheelDivisor = 300.0
	maxWheelStep = 0.5
)

// ScaleDomain zooms current about its midpoint by factor and clamps each bound
// to the matching bound of original. factor < 1 zooms in, factor > 1 zooms
// out. The result is ascending and, unless original itself is narrower, at
// least MinWidthAt its bounds wide, so it never collapses to a single value.
//
// With factor == 1 and current inside original the result equals current.
func ScaleDomain(current, original Domain, factor float64) Domain {
	lo, hi := current.Min(), current.Max()
	oLo, oHi := original.Min(), original.Max()
	width := hi - lo
	floor := MinWidthAt(lo, hi)
	newWidth := width * math.Abs(factor)
	if newWidth < floor {
		newWidth = floor
	}
	// Shrinking each side by half the difference keeps factor 1 exact.
	shrink := (width - newWidth) / 2

	from := math.Max(lo+shrink, oLo)
	to := math.Min(hi-shrink, oHi)
	if to-from < floor {
		// Rounding ate the width; rebuild it around the midpoint.
		mid := lo + width/2
		from = math.Max(mid-floor/2, oLo)
		to = math.Min(from+floor, oHi)
		from = math.Max(to-floor, oLo)
	}
	return Domain{From: from, To: to}.withKind(current, original)
}

// MinWidthAt returns the narrowest width a domain with bounds lo and hi may
// be zoomed to: MinDomainWidth, or four float64 steps at the larger bound
// magnitude when that is wider.
func MinWidthAt(lo, hi float64) float64 {
	m := math.Max(math.Abs(lo), math.Abs(hi))
	ulp := math.Nextafter(m, math.Inf(1)) - m
	return math.Max(MinDomainWidth, 4*ulp)
}

// PanDomain translates current by delta. A window that would leave original
// is slid back so it touches the exceeded bound with its width unchanged. A
// window wider than original is pinned to original. The result is ascending.
func PanDomain(current, original Domain, delta float64) Domain {
	lo, hi := current.Min(), current.Max()
	oLo, oHi := original.Min(), original.Max()

	width := hi - lo
	if width > oHi-oLo {
		width = oHi - oLo
	}

	from, to := lo+delta, hi+delta
	switch {
	case from < oLo:
		from, to = oLo, oLo+width
	case to > oHi:
		from, to = oHi-width, oHi
	}
	return Domain{From: from, To: to}.withKind(current, original)
}

// ClampDomain clamps each bound of d into outer. Unlike PanDomain it may
// narrow d. The result is ascending.
func ClampDomain(d, outer Domain) Domain {
	oLo, oHi := outer.Min(), outer.Max()
	clamp := func(v float64) float64 {
		return math.Max(oLo, math.Min(v, oHi))
	}
	return Domain{From: clamp(d.Min()), To: clamp(d.Max())}.withKind(d, outer)
}

// WheelScaleFactor converts a wheel delta into a ScaleDomain factor. Positive
// deltas (scrolling down) zoom out. One event changes the factor by at most
// one half.
func WheelScaleFactor(deltaY float64) float64 {
	sign := -1.0
	if deltaY > 0 {
		sign = 1
	}
	step := math.Min(math.Abs(deltaY/wheelDivisor), maxWheelStep)
	return math.Abs(1 + sign*step)
}
