package gesture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/zoombrush"
)

// Target receives pointer gestures. Both controllers implement it.
type Target interface {
	PointerDown(pt zoombrush.Point)
	PointerMove(pt zoombrush.Point)
	PointerUp(pt zoombrush.Point)
}

// WheelTarget is a Target that also zooms on wheel input.
type WheelTarget interface {
	Target
	Wheel(deltaY float64)
}

var (
	_ WheelTarget = (*ZoomController)(nil)
	_ Target      = (*BrushController)(nil)
)

// Step is a single action in a gesture script. Action is one of press,
// move, release, click, drag or wheel; the other fields apply per action.
type Step struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	DeltaY float64 `yaml:"deltaY,omitempty"`
}

// Script is a recorded sequence of pointer gestures that can be replayed
// against a Target, for tests and unattended demos.
//
//	steps:
//	  - {action: drag, fromX: 100, fromY: 50, toX: 200, toY: 50, frames: 10}
//	  - {action: wheel, deltaY: -120}
//
// Actions: press, move, release (x, y); click (x, y); drag (fromX, fromY,
// toX, toY, frames >= 2); wheel (deltaY).
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript parses a YAML or JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	return &s, nil
}

// Validate reports an empty script or an unknown action. Use it on scripts
// built in code.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wheel":
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

// Run replays every step against t in order. A drag is expanded by Drag.
func (s *Script) Run(t Target) error {
	for i, st := range s.Steps {
		switch st.Action {
		case "press":
			t.PointerDown(zoombrush.Point{X: st.X, Y: st.Y})
		case "move":
			t.PointerMove(zoombrush.Point{X: st.X, Y: st.Y})
		case "release":
			t.PointerUp(zoombrush.Point{X: st.X, Y: st.Y})
		case "click":
			pt := zoombrush.Point{X: st.X, Y: st.Y}
			t.PointerDown(pt)
			t.PointerUp(pt)
		case "drag":
			Drag(t, zoombrush.Point{X: st.FromX, Y: st.FromY}, zoombrush.Point{X: st.ToX, Y: st.ToY}, st.Frames)
		case "wheel":
			w, ok := t.(WheelTarget)
			if !ok {
				return fmt.Errorf("gesture script: step %d: target %T does not accept wheel input", i, t)
			}
			w.Wheel(st.DeltaY)
		default:
			return fmt.Errorf("gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

// Drag sends a press at from, frames-2 linearly interpolated moves, then a
// final move and release at to. frames below 2 is treated as 2.
func Drag(t Target, from, to zoombrush.Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.PointerDown(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.PointerMove(zoombrush.Point{
			X: from.X + (to.X-from.X)*f,
			Y: from.Y + (to.Y-from.Y)*f,
		})
	}
	t.PointerMove(to)
	t.PointerUp(to)
}
