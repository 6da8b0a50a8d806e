// Package zoombrush is the geometry engine behind interactive chart zooming
// and brushing.
//
// It converts between data domains and pixel rectangles, and computes the
// next domain or selection box for pan, zoom and brush gestures. Every
// function is pure: callers own the gesture state and pass it in. The
// [github.com/phanxgames/zoombrush/gesture] package wraps these functions in
// ready-made pointer-driven controllers.
//
// # Domains and scales
//
// A [Domain] is a closed numeric interval on one axis. Time axes use
// [NewTimeDomain]; they are stored as Unix milliseconds and stay temporal
// through every operation. A [Scale] maps an axis between data and pixels;
// [NewLinearScale] is the built-in implementation.
//
//	scales := zoombrush.Scales{
//		X: zoombrush.NewLinearScale(zoombrush.NewDomain(0, 100), 0, 400),
//		Y: zoombrush.NewLinearScale(zoombrush.NewDomain(0, 50), 300, 0),
//	}
//
// # Zooming
//
// [ScaleDomain] and [PanDomain] move the visible window inside the original
// extent, and [WheelScaleFactor] turns a wheel delta into a zoom factor:
//
//	x := zoombrush.ScaleDomain(current.X, original.X, zoombrush.WheelScaleFactor(-120))
//
// [DomainTween] eases the window between two targets over time (via [gween]).
//
// # Brushing
//
// [DomainBox] and [BoxDomain] convert a brushed domain to a pixel [Box] and
// back. [ActiveHandles] hit-tests the resize handles, and [ResizeMutation],
// [SelectionMutation], [PanBox] and [ConstrainBox] compute the box for each
// kind of drag.
//
// [gween]: https://github.com/tanema/gween
package zoombrush
