package body

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
)

// WriteSVG serializes a scene as a standalone SVG document.
func WriteSVG(w io.Writer, sc Scene) error {
	bw := bufio.NewWriter(w)
	vb := sc.ViewBox
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(sc.Width), num(sc.Height), num(vb[0]), num(vb[1]), num(vb[2]), num(vb[3]))
	for _, s := range sc.Shapes {
		id := html.EscapeString(string(s.Part.Slug))
		switch s.Kind {
		case ShapePath:
			fmt.Fprintf(bw, `  <path id="%s"%s d="%s"/>`+"\n", id, paint("fill", s.Fill), html.EscapeString(s.D))
		case ShapeCircle:
			fmt.Fprintf(bw, `  <circle id="%s"%s cx="%s" cy="%s" r="%s"/>`+"\n", id, paint("fill", s.Fill), num(s.CX), num(s.CY), num(s.R))
		case ShapeLine:
			fmt.Fprintf(bw, `  <line id="%s"%s stroke-width="%s" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
				id, paint("stroke", s.Fill), num(s.StrokeWidth), num(s.X1), num(s.Y1), num(s.X2), num(s.Y2))
		case ShapeRect:
			fmt.Fprintf(bw, `  <rect id="%s"%s x="%s" y="%s" width="%s" height="%s"/>`+"\n", id, paint("fill", s.Fill), num(s.X), num(s.Y), num(s.W), num(s.H))
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func paint(attr, color string) string {
	if color == "" {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, html.EscapeString(color))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
