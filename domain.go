package zoombrush

import (
	"math"
	"time"
)

// domainKind tags how a Domain's numbers are interpreted.
type domainKind uint8

const (
	kindNumeric  domainKind = iota // plain numbers
	kindTemporal                   // Unix milliseconds
)

// Domain is a one-dimensional data interval. From and To are not required to
// be ordered. A temporal domain stores Unix milliseconds; arithmetic is always
// done on the numbers and the tag only decides how results are read back.
type Domain struct {
	From, To float64
	kind     domainKind
}

// NewDomain returns a numeric domain.
func NewDomain(from, to float64) Domain {
	return Domain{From: from, To: to}
}

// NewTimeDomain returns a temporal domain spanning from..to.
func NewTimeDomain(from, to time.Time) Domain {
	return Domain{From: toMillis(from), To: toMillis(to), kind: kindTemporal}
}

// IsTemporal reports whether the domain holds instants.
func (d Domain) IsTemporal() bool { return d.kind == kindTemporal }

// Times returns From and To as instants. For numeric domains the values are
// still read as Unix milliseconds.
func (d Domain) Times() (from, to time.Time) {
	return fromMillis(d.From), fromMillis(d.To)
}

// Min returns the lower bound.
func (d Domain) Min() float64 { return math.Min(d.From, d.To) }

// Max returns the upper bound.
func (d Domain) Max() float64 { return math.Max(d.From, d.To) }

// Width returns the absolute extent.
func (d Domain) Width() float64 { return math.Abs(d.To - d.From) }

// Contains reports whether v lies within the domain, bounds included.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min() && v <= d.Max()
}

// ContainsDomain reports whether o lies entirely within d.
func (d Domain) ContainsDomain(o Domain) bool {
	return o.Min() >= d.Min() && o.Max() <= d.Max()
}

// Normalized returns the domain with From <= To.
func (d Domain) Normalized() Domain {
	return Domain{From: d.Min(), To: d.Max(), kind: d.kind}
}

// withKind returns d re-tagged as temporal when any of the given domains is.
func (d Domain) withKind(others ...Domain) Domain {
	for _, o := range others {
		if o.kind == kindTemporal {
			d.kind = kindTemporal
			break
		}
	}
	return d
}

// DomainPair is the visible window across both axes.
type DomainPair struct {
	X, Y Domain
}

// Axis returns the domain for a.
func (p DomainPair) Axis(a Axis) Domain {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

// WithAxis returns a copy of p with the domain for a replaced by d.
func (p DomainPair) WithAxis(a Axis, d Domain) DomainPair {
	if a == AxisY {
		p.Y = d
	} else {
		p.X = d
	}
	return p
}

func toMillis(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%1e6)/1e6
}

func fromMillis(ms float64) time.Time {
	sec, frac := math.Modf(ms / 1e3)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9)))
}
