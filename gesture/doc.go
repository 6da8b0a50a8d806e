// Package gesture drives the zoombrush geometry engine from pointer input.
//
// [ZoomController] pans the visible domain on drag and zooms it on wheel
// input. [BrushController] keeps a selection rectangle that can be drawn,
// dragged and resized by its edge handles. Both are plain state machines:
// feed them pointer events in screen pixels from any input source and read
// back domains and boxes to draw.
//
//	zoom, err := gesture.NewZoomController(scales, gesture.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	zoom.OnDomainChange = func(d zoombrush.DomainPair) { chart.SetDomain(d) }
//	zoom.PointerDown(zoombrush.Point{X: 120, Y: 80})
//	zoom.PointerMove(zoombrush.Point{X: 100, Y: 80})
//	zoom.PointerUp(zoombrush.Point{X: 100, Y: 80})
//
// Settings can be loaded from YAML with [ParseConfig], and recorded gestures
// replayed with [LoadScript].
package gesture
