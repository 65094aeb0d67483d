package tui

import (
	"math"
	"sort"
	"strings"

	"bodymap/internal/body"
	"bodymap/internal/svgpath"
)

const (
	// unfilled parts are drawn in this color
	defaultFill = "#9CA3AF"
	hoverFill   = "#FFA500"
)

// fitScale is the number of micro-pixels per view-box unit at the current
// zoom, fitting the whole view box into the map area.
func (m Model) fitScale(w, h int) float64 {
	vb := m.scene.ViewBox
	if vb[2] <= 0 || vb[3] <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	return math.Min(float64(w*2)/vb[2], float64(h*4)/vb[3]) * m.zoom
}

// screenXYMicro maps view-box coordinates into the 2x4 microgrid per cell,
// view box centered, y pointing down.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	s := m.fitScale(w, h)
	if s == 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	vb := m.scene.ViewBox
	cx, cy := vb[0]+vb[2]/2, vb[1]+vb[3]/2
	mx := float64(w*2)/2 + (x-cx)*s + float64(m.offsetX*2)
	my := float64(h*4)/2 + (y-cy)*s + float64(m.offsetY*4)
	return int(math.Floor(mx)), int(math.Floor(my)), true
}

// microToViewBox inverts screenXYMicro.
func (m Model) microToViewBox(mx, my, w, h int) (float64, float64, bool) {
	s := m.fitScale(w, h)
	if s == 0 {
		return 0, 0, false
	}
	vb := m.scene.ViewBox
	cx, cy := vb[0]+vb[2]/2, vb[1]+vb[3]/2
	x := cx + (float64(mx)+0.5-float64(w*2)/2-float64(m.offsetX*2))/s
	y := cy + (float64(my)+0.5-float64(h*4)/2-float64(m.offsetY*4))/s
	return x, y, true
}

// cellToViewBox converts a map cell to the view-box point at its center.
func (m Model) cellToViewBox(cx, cy, w, h int) (float64, float64, bool) {
	x, y, ok := m.microToViewBox(cx*2, cy*4, w, h)
	if !ok {
		return 0, 0, false
	}
	s := m.fitScale(w, h)
	return x + 0.5/s, y + 1.5/s, true
}

func (m Model) shapeColor(s body.Shape) string {
	if m.hovering && s.Pressable && s.Part.Slug == m.hoverSlug {
		return hoverFill
	}
	if s.Fill == "" {
		return defaultFill
	}
	return s.Fill
}

func (m Model) renderDiagram(w, h int) string {
	br := newBrailleBuf(w, h)
	for _, s := range m.scene.Shapes {
		color := m.shapeColor(s)
		switch s.Kind {
		case body.ShapePath:
			m.drawPath(br, s.D, color, w, h)
		default:
			m.fillShape(br, s, color, w, h)
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// drawPath fills the path's rings with the even-odd rule per micro scanline,
// then draws the edges.
func (m Model) drawPath(br *brailleBuf, d, color string, w, h int) {
	var ringsMic [][][2]int
	for _, ring := range rings(svgpath.Parse(d)) {
		var sm [][2]int
		for _, p := range ring {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			sm = append(sm, [2]int{mx, my})
		}
		if len(sm) > 0 {
			ringsMic = append(ringsMic, sm)
		}
	}
	if len(ringsMic) == 0 {
		return
	}
	hMic := h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, r := range ringsMic {
			if len(r) < 3 {
				continue
			}
			for i := 0; i < len(r); i++ {
				a := r[i]
				b := r[(i+1)%len(r)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic, color)
			}
		}
	}
	for _, r := range ringsMic {
		if len(r) == 1 {
			br.setPixel(r[0][0], r[0][1], color)
			continue
		}
		for i := 0; i < len(r); i++ {
			a := r[i]
			b := r[(i+1)%len(r)]
			br.drawLineMicro(a[0], a[1], b[0], b[1], color)
		}
	}
}

// fillShape rasterizes circles, lines and rects by testing every micro-pixel
// of their projected bounds.
func (m Model) fillShape(br *brailleBuf, s body.Shape, color string, w, h int) {
	b := s.Bounds()
	x0, y0, ok0 := m.screenXYMicro(b.MinX, b.MinY, w, h)
	x1, y1, ok1 := m.screenXYMicro(b.MaxX, b.MaxY, w, h)
	if !ok0 || !ok1 {
		return
	}
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(w*2-1, x1), min(h*4-1, y1)
	hit := false
	for my := y0; my <= y1; my++ {
		for mx := x0; mx <= x1; mx++ {
			vx, vy, ok := m.microToViewBox(mx, my, w, h)
			if ok && s.Contains(vx, vy) {
				br.setPixel(mx, my, color)
				hit = true
			}
		}
	}
	if !hit {
		// smaller than a micro-pixel at this zoom
		c := b.Center()
		if mx, my, ok := m.screenXYMicro(c.X, c.Y, w, h); ok {
			br.setPixel(mx, my, color)
		}
	}
}

// hitAt returns the topmost pressable shape under a map cell.
func (m Model) hitAt(cx, cy, w, h int) (body.Shape, float64, float64, bool) {
	x, y, ok := m.cellToViewBox(cx, cy, w, h)
	if !ok {
		return body.Shape{}, 0, 0, false
	}
	s, hit := m.scene.HitTest(x, y)
	return s, x, y, hit
}
