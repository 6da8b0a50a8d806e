package zoombrush

import (
	"testing"
	"time"
)

func TestWithinBounds(t *testing.T) {
	box := Box{X1: 10, X2: 110, Y1: 20, Y2: 70}
	inverted := Box{X1: 110, X2: 10, Y1: 70, Y2: 20}

	tests := []struct {
		name    string
		pt      Point
		padding float64
		want    bool
	}{
		{"inside", Point{50, 40}, 0, true},
		{"top-left corner", Point{10, 20}, 0, true},
		{"bottom-right corner", Point{110, 70}, 0, true},
		{"outside left", Point{5, 40}, 0, false},
		{"outside right", Point{115, 40}, 0, false},
		{"outside top", Point{50, 15}, 0, false},
		{"outside bottom", Point{50, 75}, 0, false},
		{"padding reaches", Point{5, 40}, 10, true},
		{"padding too small", Point{5, 40}, 8, false},
		{"negative padding shrinks", Point{12, 40}, -8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinBounds(tt.pt, box, tt.padding); got != tt.want {
				t.Errorf("WithinBounds(%v, box, %v) = %v, want %v", tt.pt, tt.padding, got, tt.want)
			}
			if got := WithinBounds(tt.pt, inverted, tt.padding); got != tt.want {
				t.Errorf("WithinBounds(%v, inverted, %v) = %v, want %v", tt.pt, tt.padding, got, tt.want)
			}
		})
	}
}

func TestWithinBoundsOwnCorners(t *testing.T) {
	box := Box{X1: 37.5, X2: -12, Y1: 4, Y2: 99}
	corners := []Point{{box.X1, box.Y1}, {box.X1, box.Y2}, {box.X2, box.Y1}, {box.X2, box.Y2}}
	for _, c := range corners {
		if !WithinBounds(c, box, 0) {
			t.Errorf("corner %v not within its own box", c)
		}
	}
}

func TestDomainBox(t *testing.T) {
	s := testScales()
	full := DomainPair{X: NewDomain(0, 100), Y: NewDomain(0, 50)}
	selected := DomainPair{X: NewDomain(25, 50), Y: NewDomain(10, 20)}

	tests := []struct {
		name     string
		dim      Dimension
		full     *DomainPair
		selected *DomainPair
		want     Box
	}{
		{"both axes", DimensionNone, &full, &selected, Box{X1: 100, X2: 200, Y1: 180, Y2: 240}},
		{"x only", DimensionX, &full, &selected, Box{X1: 100, X2: 200, Y1: 0, Y2: 300}},
		{"y only", DimensionY, &full, &selected, Box{X1: 0, X2: 400, Y1: 180, Y2: 240}},
		{"selected defaults to full", DimensionNone, &full, nil, Box{X1: 0, X2: 400, Y1: 0, Y2: 300}},
		{"full defaults to scales", DimensionNone, nil, nil, Box{X1: 0, X2: 400, Y1: 0, Y2: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DomainBox(Props{Scales: s, Dimension: tt.dim}, tt.full, tt.selected)
			if !boxApprox(got, tt.want) {
				t.Errorf("DomainBox = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDomainBoxFullFallsBackToProps(t *testing.T) {
	s := testScales()
	propsFull := DomainPair{X: NewDomain(50, 100), Y: NewDomain(25, 50)}
	selected := DomainPair{X: NewDomain(60, 70), Y: NewDomain(30, 40)}

	got := DomainBox(Props{Scales: s, Domain: &propsFull, Dimension: DimensionX}, nil, &selected)
	want := Box{X1: 240, X2: 280, Y1: 0, Y2: 150}
	if !boxApprox(got, want) {
		t.Errorf("DomainBox = %+v, want %+v", got, want)
	}
}

func TestDomainBoxRoundTrip(t *testing.T) {
	s := testScales()
	domains := []DomainPair{
		{X: NewDomain(25, 50), Y: NewDomain(10, 20)},
		{X: NewDomain(0.1, 99.9), Y: NewDomain(1.0/3, 49)},
		{X: NewDomain(0, 100), Y: NewDomain(0, 50)},
	}
	for _, d := range domains {
		box := DomainBox(Props{Scales: s}, nil, &d)
		got := BoxDomain(box, s)
		if !approxEqual(got.X.From, d.X.From, 1e-9) || !approxEqual(got.X.To, d.X.To, 1e-9) ||
			!approxEqual(got.Y.From, d.Y.From, 1e-9) || !approxEqual(got.Y.To, d.Y.To, 1e-9) {
			t.Errorf("Domain -> Box -> Domain: %+v -> %+v -> %+v", d, box, got)
		}
		back := DomainBox(Props{Scales: s}, nil, &got)
		if !boxApprox(back, box) {
			t.Errorf("Box -> Domain -> Box: %+v -> %+v", box, back)
		}
	}
}

func TestBoxDomainInvertedBox(t *testing.T) {
	got := BoxDomain(Box{X1: 200, X2: 100, Y1: 180, Y2: 240}, testScales())
	if !domainApprox(got.X, NewDomain(25, 50)) || !domainApprox(got.Y, NewDomain(10, 20)) {
		t.Errorf("BoxDomain = %+v, want x [25,50] y [10,20]", got)
	}
}

func TestBoxDomainTemporalTag(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := Scales{
		X: NewLinearScale(NewTimeDomain(base, base.Add(time.Hour)), 0, 360),
		Y: NewLinearScale(NewDomain(0, 1), 100, 0),
	}
	got := BoxDomain(Box{X1: 60, X2: 120, Y1: 0, Y2: 100}, s)
	if !got.X.IsTemporal() {
		t.Error("x IsTemporal = false, want true")
	}
	if got.Y.IsTemporal() {
		t.Error("y IsTemporal = true, want false")
	}
	from, to := got.X.Times()
	if from.Sub(base) != 10*time.Minute || to.Sub(base) != 20*time.Minute {
		t.Errorf("x Times = (%v, %v), want +10m, +20m", from.Sub(base), to.Sub(base))
	}
}

func boxApprox(a, b Box) bool {
	return approxEqual(a.X1, b.X1, 1e-9) && approxEqual(a.X2, b.X2, 1e-9) &&
		approxEqual(a.Y1, b.Y1, 1e-9) && approxEqual(a.Y2, b.Y2, 1e-9)
}
