package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/learngeometry/pkg/errors"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// mustShape returns a function that unwraps a constructor result, failing
// the test on error.
func mustShape(t *testing.T) func(Shape, error) Shape {
	t.Helper()
	return func(s Shape, err error) Shape {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return s
	}
}

func TestCircle(t *testing.T) {
	for _, r := range []float64{0.001, 0.5, 1, 3, 10, 12345.678} {
		c := mustShape(t)(NewCircle(r))
		if got, want := c.Area(), math.Pi*r*r; !approx(got, want) {
			t.Errorf("Circle(%v).Area() = %v, want %v", r, got, want)
		}
		if got, want := c.Perimeter(), 2*math.Pi*r; !approx(got, want) {
			t.Errorf("Circle(%v).Perimeter() = %v, want %v", r, got, want)
		}
	}
}

func TestTriangle(t *testing.T) {
	tri := mustShape(t)(NewTriangle(3, 4, 5))
	if got := tri.Area(); !approx(got, 6) {
		t.Errorf("Area() = %v, want 6", got)
	}
	if got := tri.Perimeter(); !approx(got, 12) {
		t.Errorf("Perimeter() = %v, want 12", got)
	}
}

func TestTriangleInequality(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		wantErr bool
	}{
		{"right triangle", 3, 4, 5, false},
		{"equilateral", 2, 2, 2, false},
		{"nearly degenerate", 1, 1, 1.999, false},
		{"long third side", 1, 1, 3, true},
		{"long first side", 3, 1, 1, true},
		{"long second side", 1, 3, 1, true},
		{"degenerate", 1, 1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangle(tt.a, tt.b, tt.c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTriangle(%v, %v, %v) error = %v, wantErr %v", tt.a, tt.b, tt.c, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestEquilateralTriangle(t *testing.T) {
	eq := mustShape(t)(NewEquilateralTriangle(2))
	tri := mustShape(t)(NewTriangle(2, 2, 2))

	if !approx(eq.Area(), tri.Area()) {
		t.Errorf("EquilateralTriangle(2).Area() = %v, Triangle(2,2,2).Area() = %v", eq.Area(), tri.Area())
	}
	if !approx(eq.Area(), math.Sqrt(3)) {
		t.Errorf("EquilateralTriangle(2).Area() = %v, want √3", eq.Area())
	}
	if !approx(eq.Perimeter(), 6) {
		t.Errorf("EquilateralTriangle(2).Perimeter() = %v, want 6", eq.Perimeter())
	}
}

func TestSquare(t *testing.T) {
	sq := mustShape(t)(NewSquare(5))
	rect := mustShape(t)(NewRectangle(5, 5))

	if sq.Area() != 25 || sq.Perimeter() != 20 {
		t.Errorf("Square(5) = area %v, perimeter %v; want 25, 20", sq.Area(), sq.Perimeter())
	}
	if sq.Area() != rect.Area() || sq.Perimeter() != rect.Perimeter() {
		t.Errorf("Square(5) and Rectangle(5,5) differ: %v/%v vs %v/%v",
			sq.Area(), sq.Perimeter(), rect.Area(), rect.Perimeter())
	}
}

func TestRectangle(t *testing.T) {
	rect := mustShape(t)(NewRectangle(2, 3.5))
	if rect.Area() != 7 || rect.Perimeter() != 11 {
		t.Errorf("Rectangle(2, 3.5) = area %v, perimeter %v; want 7, 11", rect.Area(), rect.Perimeter())
	}
}

func TestRegularPentagon(t *testing.T) {
	p := mustShape(t)(NewRegularPentagon(1))
	if p.Perimeter() != 5 {
		t.Errorf("Perimeter() = %v, want 5", p.Perimeter())
	}
	if got := p.Area(); math.Abs(got-1.7204774) > 1e-7 {
		t.Errorf("Area() = %v, want ≈1.7204774", got)
	}
}

func TestNonPositiveParameters(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		constructors := map[string]func() (Shape, error){
			"circle":               func() (Shape, error) { return NewCircle(bad) },
			"triangle a":           func() (Shape, error) { return NewTriangle(bad, 4, 5) },
			"triangle b":           func() (Shape, error) { return NewTriangle(3, bad, 5) },
			"triangle c":           func() (Shape, error) { return NewTriangle(3, 4, bad) },
			"equilateral triangle": func() (Shape, error) { return NewEquilateralTriangle(bad) },
			"rectangle a":          func() (Shape, error) { return NewRectangle(bad, 1) },
			"rectangle b":          func() (Shape, error) { return NewRectangle(1, bad) },
			"square":               func() (Shape, error) { return NewSquare(bad) },
			"regular pentagon":     func() (Shape, error) { return NewRegularPentagon(bad) },
		}
		for name, build := range constructors {
			s, err := build()
			if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("%s(%v) error = %v, want %s", name, bad, err, errors.ErrCodeInvalidGeometry)
			}
			if s != (Shape{}) {
				t.Errorf("%s(%v) returned non-zero shape %v on error", name, bad, s)
			}
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		params   []float64
		wantCode errors.Code
		want     string
	}{
		{"circle", Circle, []float64{3}, "", "Circle, r = 3"},
		{"triangle", Triangle, []float64{3, 4, 5}, "", "Triangle, a = 3, b = 4, c = 5"},
		{"equilateral", EquilateralTriangle, []float64{2}, "", "Equilateral Triangle, a = 2"},
		{"rectangle", Rectangle, []float64{1, 2.5}, "", "Rectangle, a = 1, b = 2.5"},
		{"square", Square, []float64{5}, "", "Square, a = 5"},
		{"pentagon", RegularPentagon, []float64{1}, "", "Regular Pentagon, a = 1"},
		{"too few", Triangle, []float64{3, 4}, errors.ErrCodeInvalidGeometry, ""},
		{"too many", Circle, []float64{3, 4}, errors.ErrCodeInvalidGeometry, ""},
		{"invalid kind", Kind(0), []float64{1}, errors.ErrCodeUnknownShape, ""},
		{"bad triangle", Triangle, []float64{1, 1, 3}, errors.ErrCodeInvalidGeometry, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind, tt.params...)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("New() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if s.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", s.Kind(), tt.kind)
			}
			if got := s.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(tt.params, s.Params()); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZeroShape(t *testing.T) {
	var s Shape
	if s.Area() != 0 || s.Perimeter() != 0 {
		t.Errorf("zero Shape = area %v, perimeter %v; want 0, 0", s.Area(), s.Perimeter())
	}
	if s.Label() != "Unknown" || s.Name() != "Unknown" {
		t.Errorf("zero Shape label/name = %q/%q", s.Label(), s.Name())
	}
	if s.Params() != nil {
		t.Errorf("zero Shape Params() = %v, want nil", s.Params())
	}
}

func TestShapeFormulasMatchKind(t *testing.T) {
	shapes := []Shape{
		mustShape(t)(NewCircle(1)),
		mustShape(t)(NewTriangle(3, 4, 5)),
		mustShape(t)(NewEquilateralTriangle(1)),
		mustShape(t)(NewRectangle(1, 2)),
		mustShape(t)(NewSquare(1)),
		mustShape(t)(NewRegularPentagon(1)),
	}
	for _, s := range shapes {
		f, err := FormulasOf(s.Kind())
		if err != nil {
			t.Fatalf("FormulasOf(%v) error = %v", s.Kind(), err)
		}
		if s.AreaFormula() != f.Area || s.PerimeterFormula() != f.Perimeter {
			t.Errorf("%s formulas = %q/%q, catalog %q/%q",
				s.Name(), s.AreaFormula(), s.PerimeterFormula(), f.Area, f.Perimeter)
		}
	}
}
