package geometry

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/learngeometry/pkg/errors"
)

// Metric selects the quantity an extremum query compares.
type Metric int

const (
	MetricPerimeter Metric = iota
	MetricArea
)

// Valid reports whether m is one of the defined metrics.
func (m Metric) Valid() bool {
	return m == MetricPerimeter || m == MetricArea
}

// String returns the lower-case metric name.
func (m Metric) String() string {
	switch m {
	case MetricPerimeter:
		return "perimeter"
	case MetricArea:
		return "area"
	}
	return "Metric(" + strconv.Itoa(int(m)) + ")"
}

// Of evaluates the metric for s. Undefined metrics yield NaN.
func (m Metric) Of(s Shape) float64 {
	switch m {
	case MetricPerimeter:
		return s.Perimeter()
	case MetricArea:
		return s.Area()
	}
	return math.NaN()
}

// ParseMetric parses "area" or "perimeter" (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "area":
		return MetricArea, nil
	case "perimeter":
		return MetricPerimeter, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown metric %q (want area or perimeter)", s)
}

// Collection is an append-only, insertion-ordered list of shapes.
// The zero value is an empty collection ready to use.
type Collection struct {
	shapes []Shape
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends s. Only shapes returned by a constructor are accepted; the
// zero Shape fails with ErrCodeTypeMismatch.
func (c *Collection) Add(s Shape) error {
	if !s.kind.Valid() {
		return errors.New(errors.ErrCodeTypeMismatch, "value is not a constructed shape")
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// Count returns the number of shapes.
func (c *Collection) Count() int {
	return len(c.shapes)
}

// All iterates over the shapes with their 0-based index, in insertion order.
func (c *Collection) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range c.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// LargestByPerimeter returns the shape with the largest perimeter. Ties go to
// the shape added first.
func (c *Collection) LargestByPerimeter() (Shape, error) {
	return c.Largest(MetricPerimeter)
}

// LargestByArea returns the shape with the largest area. Ties go to the
// shape added first.
func (c *Collection) LargestByArea() (Shape, error) {
	return c.Largest(MetricArea)
}

// Largest returns the first shape maximizing m. It fails with
// ErrCodeInvalidInput for an undefined metric and ErrCodeEmptyCollection
// when the collection holds no shapes.
func (c *Collection) Largest(m Metric) (Shape, error) {
	if !m.Valid() {
		return Shape{}, errors.New(errors.ErrCodeInvalidInput, "unknown metric %s", m)
	}
	if len(c.shapes) == 0 {
		return Shape{}, errors.New(errors.ErrCodeEmptyCollection, "no shapes to compare by %s", m)
	}
	best, bestValue := c.shapes[0], m.Of(c.shapes[0])
	for _, s := range c.shapes[1:] {
		if v := m.Of(s); v > bestValue {
			best, bestValue = s, v
		}
	}
	return best, nil
}
