package body

import "github.com/sahilm/fuzzy"

// Suggest returns the closest atlas slug for an unknown one.
func Suggest(slug Slug, names []string) (Slug, bool) {
	matches := fuzzy.Find(string(slug), names)
	if len(matches) == 0 {
		return "", false
	}
	return Slug(matches[0].Str), true
}

// Unknown returns data slugs that have no part in the atlas, in data order.
func Unknown(a *Atlas, data []Part) []Slug {
	var out []Slug
	seen := map[Slug]bool{}
	for _, d := range data {
		if seen[d.Slug] {
			continue
		}
		seen[d.Slug] = true
		if _, ok := a.Find(d.Slug); !ok {
			out = append(out, d.Slug)
		}
	}
	return out
}
