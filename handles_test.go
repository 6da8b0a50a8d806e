package zoombrush

import (
	"slices"
	"testing"
)

func TestHandlesRegions(t *testing.T) {
	set := Handles(Box{X1: 100, X2: 0, Y1: 50, Y2: 0}, 10)

	tests := []struct {
		h    Handle
		want Box
	}{
		{HandleLeft, Box{X1: -5, X2: 5, Y1: 0, Y2: 50}},
		{HandleRight, Box{X1: 95, X2: 105, Y1: 0, Y2: 50}},
		{HandleTop, Box{X1: 0, X2: 100, Y1: 5, Y2: -5}},
		{HandleBottom, Box{X1: 0, X2: 100, Y1: 55, Y2: 45}},
	}
	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			if got := set.Get(tt.h); got != tt.want {
				t.Errorf("Handles()[%v] = %+v, want %+v", tt.h, got, tt.want)
			}
		})
	}
}

func TestActiveHandles(t *testing.T) {
	box := Box{X1: 0, X2: 100, Y1: 0, Y2: 50}

	tests := []struct {
		name string
		pt   Point
		want []Handle
	}{
		{"top-left corner", Point{0, 0}, []Handle{HandleTop, HandleLeft}},
		{"top-right corner", Point{100, 0}, []Handle{HandleTop, HandleRight}},
		{"bottom-left corner", Point{0, 50}, []Handle{HandleBottom, HandleLeft}},
		{"bottom-right corner", Point{100, 50}, []Handle{HandleBottom, HandleRight}},
		{"left edge center", Point{0, 25}, []Handle{HandleLeft}},
		{"right edge center", Point{100, 25}, []Handle{HandleRight}},
		{"top edge center", Point{50, 0}, []Handle{HandleTop}},
		{"bottom edge center", Point{50, 50}, []Handle{HandleBottom}},
		{"near left edge", Point{3, 25}, []Handle{HandleLeft}},
		{"strictly inside", Point{50, 25}, nil},
		{"far outside", Point{500, 500}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveHandles(tt.pt, box, 8)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ActiveHandles(%v) = %v, want %v", tt.pt, got, tt.want)
			}
			if tt.want == nil && got != nil {
				t.Errorf("ActiveHandles(%v) = %#v, want nil", tt.pt, got)
			}
		})
	}
}

func TestActiveHandlesInvertedBox(t *testing.T) {
	got := ActiveHandles(Point{0, 0}, Box{X1: 100, X2: 0, Y1: 50, Y2: 0}, 8)
	want := []Handle{HandleTop, HandleLeft}
	if !slices.Equal(got, want) {
		t.Errorf("ActiveHandles on inverted box = %v, want %v", got, want)
	}
}

func TestHandleString(t *testing.T) {
	names := map[Handle]string{
		HandleTop: "top", HandleBottom: "bottom", HandleLeft: "left", HandleRight: "right",
		Handle(9): "Handle(9)",
	}
	for h, want := range names {
		if got := h.String(); got != want {
			t.Errorf("Handle(%d).String() = %q, want %q", uint8(h), got, want)
		}
	}
}
