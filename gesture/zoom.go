package gesture

import (
	"log/slog"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/zoombrush"
)

// ZoomController turns pointer drags into pans and wheel events into zooms
// of a chart's visible domain. It owns the gesture state the geometry
// functions leave to their caller: the drag start point and the last domain.
//
// A ZoomController is not safe for concurrent use.
type ZoomController struct {
	cfg      Config
	scales   zoombrush.Scales
	original zoombrush.DomainPair
	domain   zoombrush.DomainPair

	panning bool
	start   zoombrush.Point

	tween *zoombrush.DomainTween
	log   *slog.Logger

	// OnDomainChange is called with the new visible domain after every
	// pan, zoom or transition step.
	OnDomainChange func(zoombrush.DomainPair)
}

// NewZoomController returns a controller showing the full extent of scales.
func NewZoomController(scales zoombrush.Scales, cfg Config) (*ZoomController, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	orig := zoombrush.OriginalDomain(scales)
	return &ZoomController{
		cfg:      cfg,
		scales:   scales,
		original: orig,
		domain:   orig,
		log:      discardLogger,
	}, nil
}

// SetLogger sets the logger used for debug events. nil discards them.
func (z *ZoomController) SetLogger(l *slog.Logger) {
	z.log = loggerOrDiscard(l)
}

// Domain returns the visible domain.
func (z *ZoomController) Domain() zoombrush.DomainPair { return z.domain }

// OriginalDomain returns the full extent the visible domain is clamped to.
func (z *ZoomController) OriginalDomain() zoombrush.DomainPair { return z.original }

// Transitioning reports whether a ZoomTo transition is running.
func (z *ZoomController) Transitioning() bool { return z.tween != nil }

// SetDomain replaces the visible domain, clamped to the original domain, and
// cancels any running transition.
func (z *ZoomController) SetDomain(d zoombrush.DomainPair) {
	z.tween = nil
	z.apply(z.clamp(d))
}

// Reset shows the full extent again.
func (z *ZoomController) Reset() {
	z.SetDomain(z.original)
}

// PointerDown starts a pan drag at pt.
func (z *ZoomController) PointerDown(pt zoombrush.Point) {
	if !z.cfg.AllowPan {
		return
	}
	z.tween = nil
	z.panning = true
	z.start = pt
	z.log.Debug("zoom.pan.start", pointAttr("point", pt))
}

// PointerMove pans the domain by the pointer movement since the last call.
// Dragging right reveals data to the left; dragging down reveals data above.
func (z *ZoomController) PointerMove(pt zoombrush.Point) {
	if !z.panning {
		return
	}
	last := z.domain
	dx := (z.start.X - pt.X) / zoombrush.DomainScale(last, z.scales, zoombrush.AxisX)
	dy := (pt.Y - z.start.Y) / zoombrush.DomainScale(last, z.scales, zoombrush.AxisY)

	next := last
	if z.cfg.zoomDim.AllowsX() {
		next.X = zoombrush.PanDomain(last.X, z.original.X, dx)
	}
	if z.cfg.zoomDim.AllowsY() {
		next.Y = zoombrush.PanDomain(last.Y, z.original.Y, dy)
	}
	z.start = pt
	z.log.Debug("zoom.pan", pointAttr("point", pt), domainAttr("domain", next))
	z.apply(next)
}

// PointerUp ends a pan drag.
func (z *ZoomController) PointerUp(pt zoombrush.Point) {
	if !z.panning {
		return
	}
	z.panning = false
	z.log.Debug("zoom.pan.end", pointAttr("point", pt))
}

// Wheel zooms about the middle of the visible domain. Positive deltaY zooms
// out.
func (z *ZoomController) Wheel(deltaY float64) {
	if !z.cfg.AllowZoom || deltaY == 0 {
		return
	}
	z.tween = nil
	factor := zoombrush.WheelScaleFactor(deltaY)

	next := z.domain
	if z.cfg.zoomDim.AllowsX() {
		next.X = z.scaleAxis(zoombrush.AxisX, factor)
	}
	if z.cfg.zoomDim.AllowsY() {
		next.Y = z.scaleAxis(zoombrush.AxisY, factor)
	}
	z.log.Debug("zoom.wheel", slog.Float64("factor", factor), domainAttr("domain", next))
	z.apply(next)
}

// ZoomTo eases the visible domain to target over duration seconds. Advance
// it with Update. Pointer and wheel input cancel the transition.
func (z *ZoomController) ZoomTo(target zoombrush.DomainPair, duration float32, fn ease.TweenFunc) {
	target = z.clamp(target)
	z.tween = zoombrush.NewDomainTween(z.domain, target, duration, fn)
	z.log.Debug("zoom.transition.start", domainAttr("target", target), slog.Any("duration", duration))
	if z.tween.Done() {
		z.tween = nil
		z.apply(target)
	}
}

// Update advances a running ZoomTo transition by dt seconds.
func (z *ZoomController) Update(dt float32) {
	if z.tween == nil {
		return
	}
	next := z.clamp(z.tween.Update(dt))
	if z.tween.Done() {
		z.tween = nil
		z.log.Debug("zoom.transition.end", domainAttr("domain", next))
	}
	z.apply(next)
}

// scaleAxis zooms one axis, never narrowing it below its minimum zoom. With
// no minimum configured the limit is the narrowest representable width.
func (z *ZoomController) scaleAxis(axis zoombrush.Axis, factor float64) zoombrush.Domain {
	current := z.domain.Axis(axis)
	limit := max(z.cfg.minimumZoom(axis), zoombrush.MinWidthAt(current.Min(), current.Max()))
	if factor < 1 {
		w := current.Width()
		if w <= limit {
			return current
		}
		if w*factor < limit {
			factor = limit / w
		}
	}
	return zoombrush.ScaleDomain(current, z.original.Axis(axis), factor)
}

func (z *ZoomController) clamp(d zoombrush.DomainPair) zoombrush.DomainPair {
	return zoombrush.DomainPair{
		X: zoombrush.ClampDomain(d.X, z.original.X),
		Y: zoombrush.ClampDomain(d.Y, z.original.Y),
	}
}

func (z *ZoomController) apply(d zoombrush.DomainPair) {
	z.domain = d
	if z.OnDomainChange != nil {
		z.OnDomainChange(d)
	}
}
