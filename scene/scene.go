// Package scene reads and writes the curve and surface files the viewer
// works with. Two formats are understood: JSON documents carrying a "type"
// discriminator, and the legacy plain-text control point lists. A Scene
// accumulates everything imported from one or more files.
package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/Twinklebear/spline-viewer/spline"
)

// tracer writes to trace with key 'scene'
func tracer() tracing.Trace {
	return tracing.Select("scene")
}

var (
	// ErrUnknownType means a JSON document's "type" field named no known
	// scene entry kind.
	ErrUnknownType = errors.New("unknown scene entry type")
	// ErrFormat means a file could not be parsed in either scene format.
	ErrFormat = errors.New("malformed scene file")
)

// Scene holds everything imported from a set of scene files.
type Scene struct {
	// Curves are 2D B-spline curves, from "bspline2d" documents.
	Curves []*spline.BSpline
	// Curves3D are 3D B-spline curves, from "bspline3d" documents.
	Curves3D []*spline.BSpline
	// Surfaces are tensor product surfaces, from "surface" documents.
	Surfaces []*spline.Surface
	// Interpolations are families of input curves to be interpolated by a
	// surface, from "interpolation_u" documents. Each entry is one family.
	Interpolations [][]*spline.BSpline
	// Beziers are Bézier curves from legacy text files, one per P/Q group.
	Beziers []*spline.Bezier
}

// LoadFile imports one scene file, appending its contents. The format is
// sniffed from the first significant byte: '{' means JSON, anything else the
// legacy text format.
func (s *Scene) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()
	if err := s.Read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Read imports one scene document from r, appending its contents.
func (s *Scene) Read(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		b, err := br.Peek(1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.Discard(1)
			continue
		case '{':
			return s.readJSON(br)
		default:
			return s.readText(br)
		}
	}
}
