package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/learngeometry/pkg/errors"
	"github.com/matzehuels/learngeometry/pkg/geometry"
)

// shapesFile is the TOML layout accepted by --file:
//
//	[[shape]]
//	kind = "triangle"
//	params = [3, 4, 5]
type shapesFile struct {
	Shapes []shapeEntry `toml:"shape"`
}

type shapeEntry struct {
	Kind   string    `toml:"kind"`
	Params []float64 `toml:"params"`
}

// parseShapeArg parses a command-line shape of the form "kind:p1,p2,...",
// e.g. "circle:10" or "triangle:3,4,5".
func parseShapeArg(arg string) (geometry.Shape, error) {
	name, rawParams, ok := strings.Cut(arg, ":")
	if !ok || strings.TrimSpace(rawParams) == "" {
		return geometry.Shape{}, errors.New(errors.ErrCodeInvalidInput, "shape %q must look like kind:p1,p2 (e.g. triangle:3,4,5)", arg)
	}
	kind, err := geometry.ParseKind(strings.TrimSpace(name))
	if err != nil {
		return geometry.Shape{}, err
	}

	fields := strings.Split(rawParams, ",")
	params := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geometry.Shape{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "shape %q: bad number %q", arg, f)
		}
		params = append(params, v)
	}
	return geometry.New(kind, params...)
}

// loadShapesFile reads shapes from a TOML file.
func loadShapesFile(path string) ([]geometry.Shape, error) {
	var f shapesFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read shapes file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}

	shapes := make([]geometry.Shape, 0, len(f.Shapes))
	for i, entry := range f.Shapes {
		kind, err := geometry.ParseKind(entry.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "%s: shape %d", path, i)
		}
		s, err := geometry.New(kind, entry.Params...)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "%s: shape %d", path, i)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// buildCollection collects the shapes of an optional file followed by the
// command-line arguments, in that order.
func buildCollection(ctx context.Context, file string, args []string) (*geometry.Collection, error) {
	logger := loggerFromContext(ctx)
	shapes := geometry.NewCollection()

	if file != "" {
		prog := newProgress(logger)
		fromFile, err := loadShapesFile(file)
		if err != nil {
			return nil, err
		}
		for _, s := range fromFile {
			if err := shapes.Add(s); err != nil {
				return nil, err
			}
		}
		prog.done(fmt.Sprintf("Loaded %d shapes from %s", len(fromFile), file))
	}

	for _, arg := range args {
		s, err := parseShapeArg(arg)
		if err != nil {
			return nil, err
		}
		if err := shapes.Add(s); err != nil {
			return nil, err
		}
		logger.Debug("Added shape", "label", s.Label())
	}
	return shapes, nil
}
