package svgpath

import "math"

// BBox is an axis-aligned bounding box in path coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Point is a coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Bounds reduces commands to a bounding box. Within each command, values at
// even positions are x coordinates and values at odd positions are y
// coordinates; the position restarts at zero for every command. This is an
// approximation: H, V, C and A arguments are classified the same way.
//
// An axis with no values keeps its sentinels, +Inf for the minimum and -Inf
// for the maximum.
func Bounds(cmds []Command) BBox {
	b := BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, c := range cmds {
		for i, v := range c.Values {
			if i%2 == 0 {
				b.MinX = math.Min(b.MinX, v)
				b.MaxX = math.Max(b.MaxX, v)
			} else {
				b.MinY = math.Min(b.MinY, v)
				b.MaxY = math.Max(b.MaxY, v)
			}
		}
	}
	return b
}

// Valid reports whether both axes received at least one value.
func (b BBox) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Center returns the midpoint of the box. It is computed even for an invalid
// box, in which case the missing axis is NaN.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Width and Height are negative infinity for an axis without values.
func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether (x, y) lies inside the box, edges included.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Union returns the smallest box covering b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// PathBounds parses d and returns its bounding box.
func PathBounds(d string) BBox { return Bounds(Parse(d)) }

// Center computes the bounding-box center of path data. Input without
// coordinates yields NaN on the affected axis; use CenterOf to detect that.
func Center(d string) Point { return PathBounds(d).Center() }

// CenterOf is Center with an explicit result for paths that do not carry at
// least one x and one y value.
func CenterOf(d string) (Point, bool) {
	b := PathBounds(d)
	if !b.Valid() {
		return Point{}, false
	}
	return b.Center(), true
}
