package gesture

import (
	"log/slog"

	"github.com/phanxgames/zoombrush"
)

// brushState is what the pointer is doing to the brush box.
type brushState uint8

const (
	brushIdle      brushState = iota // no button held
	brushSelecting                   // drawing or resizing; X2/Y2 follow the pointer
	brushPanning                     // dragging the whole box
)

func (s brushState) String() string {
	switch s {
	case brushSelecting:
		return "selecting"
	case brushPanning:
		return "panning"
	default:
		return "idle"
	}
}

// BrushController maintains a draggable, resizable selection rectangle over
// a chart and reports the data domain it covers.
//
// On pointer down it resizes when a handle is hit, pans when the box itself
// is hit and otherwise starts a new selection. Presses outside the full plot
// area are ignored. Releasing without having dragged a selection open selects
// the full domain again.
//
// A BrushController is not safe for concurrent use.
type BrushController struct {
	cfg    Config
	scales zoombrush.Scales
	full   zoombrush.DomainPair
	brush  zoombrush.DomainPair

	state   brushState
	box     zoombrush.Box
	fullBox zoombrush.Box
	start   zoombrush.Point
	// dragX and dragY record which corner coordinates follow the pointer
	// while selecting.
	dragX, dragY bool

	log *slog.Logger

	// OnDomainChange is called with the brushed domain whenever the box
	// moves.
	OnDomainChange func(zoombrush.DomainPair)
	// OnDomainChangeEnd is called with the final brushed domain when the
	// pointer is released.
	OnDomainChangeEnd func(zoombrush.DomainPair)
}

// NewBrushController returns a controller whose brush covers the full extent
// of scales.
func NewBrushController(scales zoombrush.Scales, cfg Config) (*BrushController, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &BrushController{
		cfg:    cfg,
		scales: scales,
		full:   zoombrush.OriginalDomain(scales),
		log:    discardLogger,
	}
	b.brush = b.full
	b.fullBox = b.domainBox(b.full)
	b.box = b.fullBox
	return b, nil
}

// SetLogger sets the logger used for debug events. nil discards them.
func (b *BrushController) SetLogger(l *slog.Logger) {
	b.log = loggerOrDiscard(l)
}

// Domain returns the brushed domain.
func (b *BrushController) Domain() zoombrush.DomainPair { return b.brush }

// Box returns the brush rectangle in pixels. Its corners may be inverted
// while a drag is in progress.
func (b *BrushController) Box() zoombrush.Box { return b.box }

// FullBox returns the pixel rectangle of the full domain.
func (b *BrushController) FullBox() zoombrush.Box { return b.fullBox }

// Handles returns the resize hit regions of the current box.
func (b *BrushController) Handles() zoombrush.HandleSet {
	return zoombrush.Handles(b.box, b.cfg.HandleWidth)
}

// Active reports whether a drag is in progress.
func (b *BrushController) Active() bool { return b.state != brushIdle }

// SetDomain moves the brush to d, clamped to the full domain. Axes excluded
// by the brush dimension keep the full domain.
func (b *BrushController) SetDomain(d zoombrush.DomainPair) {
	d = zoombrush.DomainPair{
		X: zoombrush.ClampDomain(d.X, b.full.X),
		Y: zoombrush.ClampDomain(d.Y, b.full.Y),
	}
	b.box = b.domainBox(d)
	b.brush = zoombrush.BoxDomain(b.box, b.scales)
	b.state = brushIdle
}

// Reset selects the full domain.
func (b *BrushController) Reset() {
	b.SetDomain(b.full)
}

// PointerDown decides between resizing, panning and a new selection.
func (b *BrushController) PointerDown(pt zoombrush.Point) {
	current := b.box
	dim := b.cfg.brushDim

	if !zoombrush.WithinBounds(pt, b.fullBox, 0) {
		return
	}
	if handles := zoombrush.ActiveHandles(pt, current, b.cfg.HandleWidth); handles != nil && b.cfg.AllowResize {
		var dragX, dragY bool
		var grabbed []zoombrush.Handle
		for _, h := range handles {
			switch h {
			case zoombrush.HandleLeft, zoombrush.HandleRight:
				if dim.AllowsX() {
					dragX = true
					grabbed = append(grabbed, h)
				}
			case zoombrush.HandleTop, zoombrush.HandleBottom:
				if dim.AllowsY() {
					dragY = true
					grabbed = append(grabbed, h)
				}
			}
		}
		// Handles on an axis the dimension excludes are inert.
		if grabbed != nil {
			b.box = zoombrush.ResizeMutation(current, grabbed)
			b.state = brushSelecting
			b.dragX, b.dragY = dragX, dragY
			b.log.Debug("brush.resize.start", pointAttr("point", pt), slog.Any("handles", grabbed))
			return
		}
	}
	// A brush covering everything has nowhere to go, so a press inside it
	// starts a new selection instead.
	wholeDomain := current.Normalized() == b.fullBox.Normalized()
	if !wholeDomain && zoombrush.WithinBounds(pt, current, b.cfg.Padding) && b.cfg.AllowDrag {
		b.state = brushPanning
		b.start = pt
		b.log.Debug("brush.pan.start", pointAttr("point", pt))
		return
	}
	if b.cfg.AllowDraw {
		b.box = zoombrush.SelectionMutation(pt, current, dim)
		b.state = brushSelecting
		b.dragX, b.dragY = dim.AllowsX(), dim.AllowsY()
		b.log.Debug("brush.select.start", pointAttr("point", pt))
	}
}

// PointerMove drags the active corner or the whole box.
func (b *BrushController) PointerMove(pt zoombrush.Point) {
	switch b.state {
	case brushSelecting:
		if b.dragX {
			b.box.X2 = pt.X
		}
		if b.dragY {
			b.box.Y2 = pt.Y
		}
		b.box = clampCorner(b.box, b.fullBox)
	case brushPanning:
		start := b.start
		box := b.box
		panned := zoombrush.PanBox(zoombrush.Props{
			Scales:    b.scales,
			Dimension: b.cfg.brushDim,
			Box:       &box,
			Start:     &start,
		}, pt)
		b.box = zoombrush.ConstrainBox(panned, b.fullBox)
		b.start = pt
	default:
		return
	}
	b.brush = zoombrush.BoxDomain(b.box, b.scales)
	b.log.Debug("brush.move", slog.String("state", b.state.String()), boxAttr("box", b.box))
	if b.OnDomainChange != nil {
		b.OnDomainChange(b.brush)
	}
}

// PointerUp finishes the drag. A selection that never opened on a selectable
// axis falls back to the full domain.
func (b *BrushController) PointerUp(pt zoombrush.Point) {
	if b.state == brushIdle {
		return
	}
	dim := b.cfg.brushDim
	collapsed := (dim.AllowsX() && b.box.X1 == b.box.X2) || (dim.AllowsY() && b.box.Y1 == b.box.Y2)
	if b.state == brushSelecting && collapsed {
		b.box = b.fullBox
		b.log.Debug("brush.select.cleared", pointAttr("point", pt))
	}
	b.state = brushIdle
	b.brush = zoombrush.BoxDomain(b.box, b.scales)
	b.log.Debug("brush.end", domainAttr("domain", b.brush))
	if b.OnDomainChangeEnd != nil {
		b.OnDomainChangeEnd(b.brush)
	}
}

func (b *BrushController) domainBox(selected zoombrush.DomainPair) zoombrush.Box {
	full := b.full
	return zoombrush.DomainBox(zoombrush.Props{
		Scales:    b.scales,
		Dimension: b.cfg.brushDim,
	}, &full, &selected)
}

// clampCorner keeps the dragged corner (X2, Y2) inside outer.
func clampCorner(box, outer zoombrush.Box) zoombrush.Box {
	box.X2 = min(max(box.X2, outer.MinX()), outer.MaxX())
	box.Y2 = min(max(box.Y2, outer.MinY()), outer.MaxY())
	return box
}
