package geometry

import (
	"strings"

	"github.com/matzehuels/learngeometry/pkg/errors"
)

// Kind identifies one shape variant.
type Kind int

// The zero Kind is not a valid variant; it marks an unconstructed [Shape].
const (
	Circle Kind = iota + 1
	Triangle
	EquilateralTriangle
	Rectangle
	Square
	RegularPentagon
)

var kindNames = map[Kind]string{
	Circle:              "Circle",
	Triangle:            "Triangle",
	EquilateralTriangle: "EquilateralTriangle",
	Rectangle:           "Rectangle",
	Square:              "Square",
	RegularPentagon:     "RegularPentagon",
}

var kindTitles = map[Kind]string{
	Circle:              "Circle",
	Triangle:            "Triangle",
	EquilateralTriangle: "Equilateral Triangle",
	Rectangle:           "Rectangle",
	Square:              "Square",
	RegularPentagon:     "Regular Pentagon",
}

var kindParams = map[Kind][]string{
	Circle:              {"r"},
	Triangle:            {"a", "b", "c"},
	EquilateralTriangle: {"a"},
	Rectangle:           {"a", "b"},
	Square:              {"a"},
	RegularPentagon:     {"a"},
}

// kindAliases maps normalized user input to kinds. Keys are lower case with
// separators removed.
var kindAliases = map[string]Kind{
	"circle":              Circle,
	"triangle":            Triangle,
	"equilateraltriangle": EquilateralTriangle,
	"equilateral":         EquilateralTriangle,
	"rectangle":           Rectangle,
	"rect":                Rectangle,
	"square":              Square,
	"regularpentagon":     RegularPentagon,
	"pentagon":            RegularPentagon,
}

// Kinds returns all shape kinds in menu order.
func Kinds() []Kind {
	return []Kind{Circle, Triangle, EquilateralTriangle, Rectangle, Square, RegularPentagon}
}

// Valid reports whether k is one of the six shape kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the variant name, e.g. "EquilateralTriangle".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Title returns the human-readable name, e.g. "Equilateral Triangle".
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}
	return "Unknown"
}

// ParamNames returns the names of the parameters a kind is built from, in
// constructor order.
func (k Kind) ParamNames() []string {
	return append([]string(nil), kindParams[k]...)
}

// ParseKind resolves a user-supplied shape name. Matching ignores case,
// spaces, dashes and underscores, so "Equilateral Triangle",
// "equilateral-triangle" and "EquilateralTriangle" are equivalent.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownShape, "unknown shape %q", name)
}
