package body

// Merge overlays caller data on atlas parts.
//
// Each data entry, in data order, picks the first atlas part with the same
// slug; entries without an atlas part are dropped. The picked part is colored
// with colors[i-1], where i is the intensity of the first data entry for that
// slug, or 1 when unset. An intensity outside the palette leaves the color
// empty. The result lists untouched atlas parts first, in atlas order,
// followed by the colored parts.
func Merge(atlas, data []Part, colors []string) []Part {
	inData := make(map[Slug]bool, len(data))
	for _, d := range data {
		inData[d.Slug] = true
	}
	var untouched []Part
	for _, p := range atlas {
		if !inData[p.Slug] {
			untouched = append(untouched, p)
		}
	}
	var colored []Part
	for _, d := range data {
		p, ok := findPart(atlas, d.Slug)
		if !ok {
			continue
		}
		first, _ := findPart(data, d.Slug)
		intensity := first.Intensity
		if intensity == 0 {
			intensity = 1
		}
		p.Color = paletteAt(colors, intensity-1)
		colored = append(colored, p)
	}
	return append(untouched, colored...)
}

// Fill is the color a part is drawn with: colors[Intensity] when the part
// carries an intensity, its own color otherwise.
func Fill(p Part, colors []string) string {
	if p.Intensity != 0 {
		return paletteAt(colors, p.Intensity)
	}
	return p.Color
}

func paletteAt(colors []string, i int) string {
	if i < 0 || i >= len(colors) {
		return ""
	}
	return colors[i]
}

func findPart(parts []Part, slug Slug) (Part, bool) {
	for _, p := range parts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Part{}, false
}
