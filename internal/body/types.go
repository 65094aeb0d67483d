// Package body models the anatomical diagram: the static atlases, caller
// intensity data, color selection and the pressable scene built from them.
package body

import "fmt"

// Slug names a body part.
type Slug string

const (
	Abs        Slug = "abs"
	Adductors  Slug = "adductors"
	Ankles     Slug = "ankles"
	Biceps     Slug = "biceps"
	Calves     Slug = "calves"
	Chest      Slug = "chest"
	Deltoids   Slug = "deltoids"
	Feet       Slug = "feet"
	Forearm    Slug = "forearm"
	Gluteal    Slug = "gluteal"
	Hamstring  Slug = "hamstring"
	Hands      Slug = "hands"
	Hair       Slug = "hair"
	Head       Slug = "head"
	Knees      Slug = "knees"
	LowerBack  Slug = "lower-back"
	Neck       Slug = "neck"
	Obliques   Slug = "obliques"
	Quadriceps Slug = "quadriceps"
	Tibialis   Slug = "tibialis"
	Trapezius  Slug = "trapezius"
	Triceps    Slug = "triceps"
	UpperBack  Slug = "upper-back"
	Knee       Slug = "knee"
	Elbow      Slug = "elbow"
	Hip        Slug = "hip"
	Clavicle   Slug = "clavicle"
	Wrist      Slug = "wrist"
	Angle      Slug = "angle"
	Axial      Slug = "axial"
)

// Slugs lists every known slug.
var Slugs = []Slug{
	Abs, Adductors, Ankles, Biceps, Calves, Chest, Deltoids, Feet, Forearm,
	Gluteal, Hamstring, Hands, Hair, Head, Knees, LowerBack, Neck, Obliques,
	Quadriceps, Tibialis, Trapezius, Triceps, UpperBack, Knee, Elbow, Hip,
	Clavicle, Wrist, Angle, Axial,
}

// Side of the body shown.
type Side string

const (
	Front Side = "front"
	Back  Side = "back"
)

// Gender selects the figure.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseSide accepts "front" or "back".
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Front, Back:
		return Side(s), nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// ParseGender accepts "male" or "female".
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Male, Female:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Back {
		return Front
	}
	return Back
}

// Opposite returns the other figure.
func (g Gender) Opposite() Gender {
	if g == Female {
		return Male
	}
	return Female
}

// Marker geometry types. A part without a type is drawn from its paths.
const (
	TypeCircle = "circle"
	TypeLine   = "line"
	TypeRect   = "rect"
)

// Part is one body part, either an atlas entry or a caller data entry.
// Caller data usually only sets Slug and Intensity.
type Part struct {
	Slug      Slug     `json:"slug" yaml:"slug"`
	Color     string   `json:"color,omitempty" yaml:"color,omitempty"`
	Intensity int      `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Paths     []string `json:"pathArray,omitempty" yaml:"paths,omitempty"`
	Type      string   `json:"type,omitempty" yaml:"type,omitempty"`

	// circle
	CX float64 `json:"cx,omitempty" yaml:"cx,omitempty"`
	CY float64 `json:"cy,omitempty" yaml:"cy,omitempty"`

	// line
	X1 float64 `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty" yaml:"y2,omitempty"`

	// rect
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Atlas is the static set of parts for one figure and side.
type Atlas struct {
	Gender  Gender     `yaml:"gender"`
	Side    Side       `yaml:"side"`
	ViewBox [4]float64 `yaml:"viewBox"`
	Parts   []Part     `yaml:"parts"`
}

// Find returns the first part with the given slug.
func (a *Atlas) Find(slug Slug) (Part, bool) {
	return findPart(a.Parts, slug)
}

// SlugNames returns the atlas slugs in order, without duplicates.
func (a *Atlas) SlugNames() []string {
	seen := map[Slug]bool{}
	var out []string
	for _, p := range a.Parts {
		if !seen[p.Slug] {
			seen[p.Slug] = true
			out = append(out, string(p.Slug))
		}
	}
	return out
}
