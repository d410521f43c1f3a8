// Package geometry models plane shapes and the collection that tabulates them.
//
// # Shapes
//
// [Shape] is a closed tagged variant over six kinds: [Circle], [Triangle],
// [EquilateralTriangle], [Rectangle], [Square] and [RegularPentagon]. Shapes
// are built through the constructors, which validate every length:
//
//	c, err := geometry.NewCircle(3)
//	t, err := geometry.NewTriangle(3, 4, 5)
//	s, err := geometry.New(geometry.Square, 5)
//
// A constructed shape is immutable. Area and perimeter are computed on
// demand at full float64 precision; rounding only happens when a [Table] is
// rendered.
//
// # Formulas
//
// Formula text is a property of the [Kind], not of an instance:
//
//	f, _ := geometry.FormulasOf(geometry.Circle)
//	fmt.Println(f.Area) // π × r^2
//
// # Collections
//
// [Collection] keeps shapes in insertion order and answers the extremum
// queries [Collection.LargestByArea] and [Collection.LargestByPerimeter]. An
// empty collection reports an EMPTY_COLLECTION error instead of returning a
// placeholder shape. [Collection.BuildTable] snapshots the collection into a
// fixed-width bordered text grid.
package geometry
