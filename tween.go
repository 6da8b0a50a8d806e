package zoombrush

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DomainTween eases a DomainPair from one window to another. Call Update(dt)
// each frame and hand the result to the renderer. There is no global
// animation manager; the caller owns the clock.
//
// gween works in float32, which cannot hold epoch milliseconds, so the tween
// only drives a 0..1 progress value and bounds are interpolated in float64.
type DomainTween struct {
	progress *gween.Tween
	from, to DomainPair
	value    DomainPair
	done     bool
}

// NewDomainTween returns a tween from from to to over duration seconds using
// the easing function fn. A nil fn means ease.Linear.
func NewDomainTween(from, to DomainPair, duration float32, fn ease.TweenFunc) *DomainTween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &DomainTween{
		progress: gween.New(0, 1, duration, fn),
		from:     from,
		to:       to,
		value:    from,
	}
	if duration <= 0 {
		t.value = to
		t.done = true
	}
	return t
}

// Update advances the tween by dt seconds and returns the current window.
// Once done it keeps returning the target exactly.
func (t *DomainTween) Update(dt float32) DomainPair {
	if t.done {
		return t.value
	}
	p, finished := t.progress.Update(dt)
	if finished {
		t.value = t.to
		t.done = true
		return t.value
	}
	f := float64(p)
	t.value = DomainPair{
		X: lerpDomain(t.from.X, t.to.X, f),
		Y: lerpDomain(t.from.Y, t.to.Y, f),
	}
	return t.value
}

// Value returns the window computed by the last Update.
func (t *DomainTween) Value() DomainPair { return t.value }

// Target returns the window the tween ends on.
func (t *DomainTween) Target() DomainPair { return t.to }

// Done reports whether the tween has reached its target.
func (t *DomainTween) Done() bool { return t.done }

func lerpDomain(a, b Domain, f float64) Domain {
	d := Domain{
		From: a.From + (b.From-a.From)*f,
		To:   a.To + (b.To-a.To)*f,
	}
	return d.withKind(a, b)
}
