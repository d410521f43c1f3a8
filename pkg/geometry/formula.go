package geometry

import "github.com/matzehuels/learngeometry/pkg/errors"

// Formulas holds the symbolic area and perimeter formulas of a shape kind.
type Formulas struct {
	Area      string
	Perimeter string
}

var catalog = map[Kind]Formulas{
	Circle: {
		Area:      "π × r^2",
		Perimeter: "2 × π × r",
	},
	Triangle: {
		Area:      "sqrt(s(s-a)(s-b)(s-c))",
		Perimeter: "a + b + c",
	},
	EquilateralTriangle: {
		Area:      "(sqrt(3) / 4) × a^2",
		Perimeter: "3 × a",
	},
	Rectangle: {
		Area:      "a × b",
		Perimeter: "2 × (a + b)",
	},
	Square: {
		Area:      "a^2",
		Perimeter: "4 × a",
	},
	RegularPentagon: {
		Area:      "(a^2 / 4) × sqrt(5(5 + 2sqrt(5)))",
		Perimeter: "5 × a",
	},
}

// FormulasOf looks up the formulas of a kind.
func FormulasOf(k Kind) (Formulas, error) {
	f, ok := catalog[k]
	if !ok {
		return Formulas{}, errors.New(errors.ErrCodeUnknownShape, "no formulas for shape kind %d", int(k))
	}
	return f, nil
}

// AreaFormula returns the area formula of k, or "" for an invalid kind.
func (k Kind) AreaFormula() string {
	return catalog[k].Area
}

// PerimeterFormula returns the perimeter formula of k, or "" for an invalid kind.
func (k Kind) PerimeterFormula() string {
	return catalog[k].Perimeter
}
