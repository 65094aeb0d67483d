package body

import (
	"fmt"

	"bodymap/internal/logging"
	"bodymap/internal/svgpath"
)

// Gate decides whether a press on a shape reaches the callback.
type Gate func(Shape) bool

// Gate names accepted by GateByName.
const (
	GateNone      = "none"
	GateRightHalf = "right-half"
)

// AllowAll passes every press.
func AllowAll(Shape) bool { return true }

// RightHalf passes path presses whose center lies right of width/2. Presses on
// markers always pass. A path without coordinates never passes.
func RightHalf(width float64) Gate {
	return func(s Shape) bool {
		if s.Kind != ShapePath {
			return true
		}
		return svgpath.Center(s.D).X > width/2
	}
}

// GateByName resolves a configured gate. width is the display width the
// right-half gate splits.
func GateByName(name string, width float64) (Gate, error) {
	switch name {
	case "", GateNone:
		return AllowAll, nil
	case GateRightHalf:
		return RightHalf(width), nil
	}
	return nil, fmt.Errorf("unknown press gate %q", name)
}

// Presser dispatches presses to a callback.
type Presser struct {
	Gate    Gate
	OnPress func(Part)
}

// Press delivers a press on s. It reports whether the callback was invoked.
func (p Presser) Press(s Shape) bool {
	log := logging.Logger()
	if !s.Pressable {
		return false
	}
	if p.Gate != nil && !p.Gate(s) {
		log.Debug("press suppressed", "slug", s.Part.Slug, "kind", s.Kind)
		return false
	}
	log.Info("pressed", "slug", s.Part.Slug, "kind", s.Kind)
	if p.OnPress != nil {
		p.OnPress(s.Part)
	}
	return true
}

// PressAt hit-tests the scene and presses the shape found, if any.
func (p Presser) PressAt(sc Scene, x, y float64) (Shape, bool) {
	s, ok := sc.HitTest(x, y)
	if !ok {
		return Shape{}, false
	}
	return s, p.Press(s)
}
