package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/learngeometry/pkg/errors"
)

// pentagonAreaFactor is √(5(5+2√5)), the area of a regular pentagon with
// unit side times four.
var pentagonAreaFactor = math.Sqrt(5 * (5 + 2*math.Sqrt(5)))

// Shape is a validated plane figure. The zero value is not a shape; use the
// constructors. Shapes are immutable values and safe to copy.
type Shape struct {
	kind    Kind
	a, b, c float64 // r is stored in a for circles
}

// NewCircle returns a circle of radius r.
func NewCircle(r float64) (Shape, error) {
	if err := errors.ValidateLength("circle radius", r); err != nil {
		return Shape{}, err
	}
	return Shape{kind: Circle, a: r}, nil
}

// NewTriangle returns a triangle with sides a, b and c. Each side must be
// strictly shorter than the sum of the other two.
func NewTriangle(a, b, c float64) (Shape, error) {
	if err := validateLengths("triangle side", a, b, c); err != nil {
		return Shape{}, err
	}
	if a >= b+c || b >= a+c || c >= a+b {
		return Shape{}, errors.New(errors.ErrCodeInvalidGeometry,
			"a triangle cannot be built with sides %s, %s, %s", fmtNum(a), fmtNum(b), fmtNum(c))
	}
	return Shape{kind: Triangle, a: a, b: b, c: c}, nil
}

// NewEquilateralTriangle returns a triangle with three sides of length a.
func NewEquilateralTriangle(a float64) (Shape, error) {
	if err := errors.ValidateLength("equilateral triangle side", a); err != nil {
		return Shape{}, err
	}
	return Shape{kind: EquilateralTriangle, a: a, b: a, c: a}, nil
}

// NewRectangle returns a rectangle with sides a and b.
func NewRectangle(a, b float64) (Shape, error) {
	if err := validateLengths("rectangle side", a, b); err != nil {
		return Shape{}, err
	}
	return Shape{kind: Rectangle, a: a, b: b}, nil
}

// NewSquare returns a square with side a.
func NewSquare(a float64) (Shape, error) {
	if err := errors.ValidateLength("square side", a); err != nil {
		return Shape{}, err
	}
	return Shape{kind: Square, a: a, b: a}, nil
}

// NewRegularPentagon returns a regular pentagon with side a.
func NewRegularPentagon(a float64) (Shape, error) {
	if err := errors.ValidateLength("regular pentagon side", a); err != nil {
		return Shape{}, err
	}
	return Shape{kind: RegularPentagon, a: a}, nil
}

// New builds a shape of kind k from its parameters, given in the order of
// [Kind.ParamNames].
func New(k Kind, params ...float64) (Shape, error) {
	if !k.Valid() {
		return Shape{}, errors.New(errors.ErrCodeUnknownShape, "unknown shape kind %d", int(k))
	}
	if want := len(kindParams[k]); len(params) != want {
		return Shape{}, errors.New(errors.ErrCodeInvalidGeometry,
			"%s takes %d parameter(s), got %d", k.Title(), want, len(params))
	}

	switch k {
	case Circle:
		return NewCircle(params[0])
	case Triangle:
		return NewTriangle(params[0], params[1], params[2])
	case EquilateralTriangle:
		return NewEquilateralTriangle(params[0])
	case Rectangle:
		return NewRectangle(params[0], params[1])
	case Square:
		return NewSquare(params[0])
	default:
		return NewRegularPentagon(params[0])
	}
}

func validateLengths(name string, vs ...float64) error {
	for _, v := range vs {
		if err := errors.ValidateLength(name, v); err != nil {
			return err
		}
	}
	return nil
}

// Kind returns the variant of s.
func (s Shape) Kind() Kind { return s.kind }

// Name returns the variant name, e.g. "RegularPentagon".
func (s Shape) Name() string { return s.kind.String() }

// Params returns the defining parameters in constructor order.
func (s Shape) Params() []float64 {
	switch s.kind {
	case Triangle:
		return []float64{s.a, s.b, s.c}
	case Rectangle:
		return []float64{s.a, s.b}
	case Circle, EquilateralTriangle, Square, RegularPentagon:
		return []float64{s.a}
	}
	return nil
}

// Area returns the area of s. The zero Shape has area 0.
func (s Shape) Area() float64 {
	switch s.kind {
	case Circle:
		return math.Pi * s.a * s.a
	case Triangle:
		p := (s.a + s.b + s.c) / 2
		return math.Sqrt(p * (p - s.a) * (p - s.b) * (p - s.c))
	case EquilateralTriangle:
		return math.Sqrt(3) / 4 * s.a * s.a
	case Rectangle:
		return s.a * s.b
	case Square:
		return s.a * s.a
	case RegularPentagon:
		return s.a * s.a / 4 * pentagonAreaFactor
	}
	return 0
}

// Perimeter returns the perimeter of s. The zero Shape has perimeter 0.
func (s Shape) Perimeter() float64 {
	switch s.kind {
	case Circle:
		return 2 * math.Pi * s.a
	case Triangle:
		return s.a + s.b + s.c
	case EquilateralTriangle:
		return 3 * s.a
	case Rectangle:
		return 2 * (s.a + s.b)
	case Square:
		return 4 * s.a
	case RegularPentagon:
		return 5 * s.a
	}
	return 0
}

// Label describes s and its parameters, e.g. "Circle, r = 3".
func (s Shape) Label() string {
	if !s.kind.Valid() {
		return "Unknown"
	}
	var b strings.Builder
	b.WriteString(s.kind.Title())
	for i, v := range s.Params() {
		b.WriteString(", ")
		b.WriteString(kindParams[s.kind][i])
		b.WriteString(" = ")
		b.WriteString(fmtNum(v))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (s Shape) String() string { return s.Label() }

// AreaFormula returns the area formula of the shape's kind.
func (s Shape) AreaFormula() string { return s.kind.AreaFormula() }

// PerimeterFormula returns the perimeter formula of the shape's kind.
func (s Shape) PerimeterFormula() string { return s.kind.PerimeterFormula() }

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
