package gesture

import (
	"math"
	"testing"

	"github.com/phanxgames/zoombrush"
)

const epsilon = 1e-9

// testScales maps x [0,100] onto 400px and y [0,50] onto 300px, y up.
func testScales() zoombrush.Scales {
	return zoombrush.Scales{
		X: zoombrush.NewLinearScale(zoombrush.NewDomain(0, 100), 0, 400),
		Y: zoombrush.NewLinearScale(zoombrush.NewDomain(0, 50), 300, 0),
	}
}

func assertDomain(t *testing.T, name string, got zoombrush.Domain, from, to float64) {
	t.Helper()
	if math.Abs(got.From-from) > epsilon || math.Abs(got.To-to) > epsilon {
		t.Errorf("%s = [%v, %v], want [%v, %v]", name, got.From, got.To, from, to)
	}
}

func pt(x, y float64) zoombrush.Point { return zoombrush.Point{X: x, Y: y} }

func assertBox(t *testing.T, name string, got, want zoombrush.Box) {
	t.Helper()
	if math.Abs(got.X1-want.X1) > epsilon || math.Abs(got.X2-want.X2) > epsilon ||
		math.Abs(got.Y1-want.Y1) > epsilon || math.Abs(got.Y2-want.Y2) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}
