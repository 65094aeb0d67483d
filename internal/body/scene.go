package body

import (
	"fmt"
	"math"

	"bodymap/internal/logging"
	"bodymap/internal/svgpath"
)

const (
	// MarkerRadius is the radius of a circle marker.
	MarkerRadius = 20.0
	// LineStrokeWidth is the stroke width of a line marker.
	LineStrokeWidth = 20.0
	// LineCapRadius is the radius of the circles drawn at line endpoints.
	LineCapRadius = 10.0

	baseWidth  = 200.0
	baseHeight = 400.0
)

// Options are the rendering parameters supplied per call.
type Options struct {
	Colors []string
	Scale  float64
}

// DefaultOptions returns the default palette at scale 1.
func DefaultOptions() Options {
	return Options{Colors: append([]string(nil), DefaultColors...), Scale: 1}
}

// ShapeKind identifies a shape's geometry.
type ShapeKind int

const (
	ShapePath ShapeKind = iota
	ShapeCircle
	ShapeLine
	ShapeRect
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePath:
		return "path"
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	case ShapeRect:
		return "rect"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Shape is one drawable element of a scene.
type Shape struct {
	Kind      ShapeKind
	Part      Part
	Fill      string
	Pressable bool

	// path
	D string

	// circle
	CX, CY, R float64

	// line; Fill is the stroke color
	X1, Y1, X2, Y2 float64
	StrokeWidth    float64

	// rect
	X, Y, W, H float64

	bounds svgpath.BBox
}

// Bounds returns the shape's axis-aligned bounding box in view-box units.
// A path without coordinates has an invalid box.
func (s Shape) Bounds() svgpath.BBox { return s.bounds }

// Contains reports whether the view-box point (x, y) hits the shape. Paths are
// hit-tested against their bounding box only.
func (s Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case ShapePath, ShapeRect:
		return s.bounds.Contains(x, y)
	case ShapeCircle:
		return math.Hypot(x-s.CX, y-s.CY) <= s.R
	case ShapeLine:
		return segmentDistance(x, y, s.X1, s.Y1, s.X2, s.Y2) <= s.StrokeWidth/2
	}
	return false
}

func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

// Scene is a built diagram, shapes in paint order.
type Scene struct {
	Gender  Gender
	Side    Side
	ViewBox [4]float64
	Width   float64
	Height  float64
	Shapes  []Shape
}

// Build merges data into the atlas and lays out the shapes. Parts with
// neither paths nor a known marker type produce nothing.
func Build(a *Atlas, data []Part, opts Options) Scene {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	sc := Scene{
		Gender:  a.Gender,
		Side:    a.Side,
		ViewBox: a.ViewBox,
		Width:   baseWidth * scale,
		Height:  baseHeight * scale,
	}
	log := logging.Logger()
	for _, p := range Merge(a.Parts, data, opts.Colors) {
		fill := Fill(p, opts.Colors)
		if len(p.Paths) > 0 {
			for _, d := range p.Paths {
				b := svgpath.PathBounds(d)
				c := b.Center()
				log.Debug("path center", "slug", p.Slug, "x", c.X, "y", c.Y)
				sc.Shapes = append(sc.Shapes, Shape{
					Kind: ShapePath, Part: p, Fill: fill, Pressable: true,
					D: d, bounds: b,
				})
			}
			continue
		}
		switch p.Type {
		case TypeCircle:
			sc.Shapes = append(sc.Shapes, circle(p, fill, p.CX, p.CY, MarkerRadius, true))
		case TypeLine:
			sc.Shapes = append(sc.Shapes,
				Shape{
					Kind: ShapeLine, Part: p, Fill: fill, Pressable: true,
					X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2,
					StrokeWidth: LineStrokeWidth,
					bounds: svgpath.BBox{
						MinX: math.Min(p.X1, p.X2) - LineStrokeWidth/2,
						MinY: math.Min(p.Y1, p.Y2) - LineStrokeWidth/2,
						MaxX: math.Max(p.X1, p.X2) + LineStrokeWidth/2,
						MaxY: math.Max(p.Y1, p.Y2) + LineStrokeWidth/2,
					},
				},
				circle(p, fill, p.X1, p.Y1, LineCapRadius, false),
				circle(p, fill, p.X2, p.Y2, LineCapRadius, false),
			)
		case TypeRect:
			sc.Shapes = append(sc.Shapes, Shape{
				Kind: ShapeRect, Part: p, Fill: fill, Pressable: true,
				X: p.X, Y: p.Y, W: p.Width, H: p.Height,
				bounds: svgpath.BBox{MinX: p.X, MinY: p.Y, MaxX: p.X + p.Width, MaxY: p.Y + p.Height},
			})
		default:
			log.Debug("part without geometry", "slug", p.Slug, "type", p.Type)
		}
	}
	return sc
}

func circle(p Part, fill string, cx, cy, r float64, pressable bool) Shape {
	return Shape{
		Kind: ShapeCircle, Part: p, Fill: fill, Pressable: pressable,
		CX: cx, CY: cy, R: r,
		bounds: svgpath.BBox{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r},
	}
}

// Render loads the atlas for a figure and side and builds its scene.
func Render(g Gender, s Side, data []Part, opts Options) (Scene, error) {
	a, err := LoadAtlas(g, s)
	if err != nil {
		return Scene{}, err
	}
	return Build(a, data, opts), nil
}

// HitTest returns the topmost pressable shape containing the view-box point.
func (sc Scene) HitTest(x, y float64) (Shape, bool) {
	for i := len(sc.Shapes) - 1; i >= 0; i-- {
		s := sc.Shapes[i]
		if s.Pressable && s.Contains(x, y) {
			return s, true
		}
	}
	return Shape{}, false
}

// Bounds covers every shape with valid bounds.
func (sc Scene) Bounds() svgpath.BBox {
	b := svgpath.Bounds(nil)
	for _, s := range sc.Shapes {
		if s.bounds.Valid() {
			b = b.Union(s.bounds)
		}
	}
	return b
}
