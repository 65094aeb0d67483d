package tui

import "bodymap/internal/svgpath"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rings pairs each command's values into vertices, the same positional
// reading used for path bounds. Every M/m starts a new ring. Relative
// commands are read as absolute.
func rings(cmds []svgpath.Command) [][][2]float64 {
	var out [][][2]float64
	var cur [][2]float64
	for _, c := range cmds {
		if (c.Code == 'M' || c.Code == 'm') && len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
		for i := 0; i+1 < len(c.Values); i += 2 {
			cur = append(cur, [2]float64{c.Values[i], c.Values[i+1]})
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
