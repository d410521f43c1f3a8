// Package pkg provides the libraries behind the learngeometry CLI.
//
// # Overview
//
// learngeometry builds plane shapes, computes their area and perimeter, and
// compares them. The pkg directory is organized into three areas:
//
//  1. [geometry] - Domain logic (shapes, formula catalog, collections, tables)
//  2. [errors] - Coded errors shared by the core and the CLI
//  3. [buildinfo] - Version information injected at build time
//
// # Quick Start
//
// Build a few shapes and print them as a table:
//
//	import "github.com/matzehuels/learngeometry/pkg/geometry"
//
//	shapes := geometry.NewCollection()
//	c, _ := geometry.NewCircle(10)
//	t, _ := geometry.NewTriangle(3, 4, 5)
//	_ = shapes.Add(c)
//	_ = shapes.Add(t)
//
//	fmt.Print(shapes.BuildTable())
//
//	largest, err := shapes.LargestByArea()
//	if errors.Is(err, errors.ErrCodeEmptyCollection) {
//	    // nothing to compare yet
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/learngeometry/pkg/geometry
// [errors]: https://pkg.go.dev/github.com/matzehuels/learngeometry/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/learngeometry/pkg/buildinfo
package pkg
