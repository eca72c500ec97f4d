// Command spline-viewer loads curve and surface scene files, solves any
// surface interpolation inputs, and reports the sampled geometry. With
// --export it writes the loaded 2D curves back out in the legacy text
// format.
package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/Twinklebear/spline-viewer/display"
	"github.com/Twinklebear/spline-viewer/scene"
)

const usage = `spline-viewer displays B-spline curves and surfaces.

Usage:
    spline-viewer [--export=<out>] [<file>...]
    spline-viewer (-h | --help)

Options:
    -h, --help       Show this message.
    --export=<out>   Write the loaded 2D curves to <out> in the legacy text format.
`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spline-viewer:", err)
		os.Exit(1)
	}
	files, _ := opts["<file>"].([]string)
	exportPath, _ := opts.String("--export")
	if err := run(files, exportPath); err != nil {
		fmt.Fprintln(os.Stderr, "spline-viewer:", err)
		os.Exit(1)
	}
}

func run(files []string, exportPath string) error {
	var sc scene.Scene
	for _, f := range files {
		if err := sc.LoadFile(f); err != nil {
			return err
		}
	}

	for i, c := range sc.Curves {
		v := display.NewCurve(c)
		fmt.Printf("curve %d: degree %d, %d control points, %d samples\n",
			i, c.Degree(), len(c.ControlPoints), len(v.CurvePoints))
	}
	for i, c := range sc.Curves3D {
		v := display.NewCurve(c)
		fmt.Printf("3D curve %d: degree %d, %d control points, %d samples\n",
			i, c.Degree(), len(c.ControlPoints), len(v.CurvePoints))
	}
	for i, b := range sc.Beziers {
		v := display.NewBezier(b)
		fmt.Printf("Bezier curve %d: %d control points, %d samples\n",
			i, len(b.ControlPoints), len(v.CurvePoints))
	}
	for i, s := range sc.Surfaces {
		v, err := display.NewSurf(s)
		if err != nil {
			return fmt.Errorf("surface %d: %w", i, err)
		}
		fmt.Printf("surface %d: %dx%d control mesh, %d+%d grid isolines\n",
			i, len(s.Mesh), len(s.Mesh[0]), len(v.IsolinesU), len(v.IsolinesV))
	}
	for i, curves := range sc.Interpolations {
		v, err := display.NewSurfInterpolation(curves)
		if err != nil {
			return fmt.Errorf("interpolation %d: %w", i, err)
		}
		s := v.Surf.Surf
		fmt.Printf("interpolation %d: %d input curves, solved %dx%d control mesh\n",
			i, len(curves), len(s.Mesh), len(s.Mesh[0]))
	}

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		if err := scene.WriteControlPoints(f, sc.Curves); err != nil {
			return err
		}
		fmt.Printf("exported %d curve(s) to %s\n", len(sc.Curves), exportPath)
	}
	return nil
}
