package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/Twinklebear/spline-viewer/spline"
)

// jsonPoint is a control point in a JSON document. The z coordinate is
// optional for planar curves.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// jsonAxis is the degree and knot vector of one parametric axis.
type jsonAxis struct {
	Degree int       `json:"degree"`
	Knots  []float64 `json:"knots"`
}

// jsonDocument is the union of all JSON scene entry layouts. Which fields
// are meaningful depends on Type.
type jsonDocument struct {
	Type string `json:"type"`

	// Curve fields, for bspline2d and bspline3d.
	Degree int         `json:"degree,omitempty"`
	Points []jsonPoint `json:"points,omitempty"`
	Knots  []float64   `json:"knots,omitempty"`

	// Surface fields, for surface and interpolation_u. An interpolation
	// document carries only the u axis; its mesh rows are the input curves.
	U    *jsonAxis     `json:"u,omitempty"`
	V    *jsonAxis     `json:"v,omitempty"`
	Mesh [][]jsonPoint `json:"mesh,omitempty"`
}

func (s *Scene) readJSON(r io.Reader) error {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	switch doc.Type {
	case "bspline2d":
		c, err := doc.curve()
		if err != nil {
			return err
		}
		tracer().Infof("imported 2D curve: degree %d, %d control points",
			c.Degree(), len(c.ControlPoints))
		s.Curves = append(s.Curves, c)
	case "bspline3d":
		c, err := doc.curve()
		if err != nil {
			return err
		}
		tracer().Infof("imported 3D curve: degree %d, %d control points",
			c.Degree(), len(c.ControlPoints))
		s.Curves3D = append(s.Curves3D, c)
	case "surface":
		surf, err := doc.surface()
		if err != nil {
			return err
		}
		tracer().Infof("imported surface: %dx%d control mesh",
			len(surf.Mesh), len(surf.Mesh[0]))
		s.Surfaces = append(s.Surfaces, surf)
	case "interpolation_u":
		curves, err := doc.interpolation()
		if err != nil {
			return err
		}
		tracer().Infof("imported interpolation input: %d curves", len(curves))
		s.Interpolations = append(s.Interpolations, curves)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, doc.Type)
	}
	return nil
}

func (d *jsonDocument) curve() (*spline.BSpline, error) {
	return spline.NewBSpline(d.Degree, scenePoints(d.Points), slices.Clone(d.Knots))
}

func (d *jsonDocument) surface() (*spline.Surface, error) {
	if d.U == nil || d.V == nil {
		return nil, fmt.Errorf("%w: surface document needs u and v axes", ErrFormat)
	}
	if len(d.U.Knots) == 0 || len(d.V.Knots) == 0 {
		return nil, fmt.Errorf("%w: surface axes need knot vectors", ErrFormat)
	}
	mesh := make([][]spline.Point, len(d.Mesh))
	for i, row := range d.Mesh {
		mesh[i] = scenePoints(row)
	}
	return spline.NewSurface(d.U.Degree, d.V.Degree,
		slices.Clone(d.U.Knots), slices.Clone(d.V.Knots), mesh)
}

func (d *jsonDocument) interpolation() ([]*spline.BSpline, error) {
	if d.U == nil {
		return nil, fmt.Errorf("%w: interpolation document needs a u axis", ErrFormat)
	}
	curves := make([]*spline.BSpline, 0, len(d.Mesh))
	for _, row := range d.Mesh {
		c, err := spline.NewBSpline(d.U.Degree, scenePoints(row), slices.Clone(d.U.Knots))
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func scenePoints(pts []jsonPoint) []spline.Point {
	points := make([]spline.Point, len(pts))
	for i, p := range pts {
		points[i] = spline.Pt3(p.X, p.Y, p.Z)
	}
	return points
}

// WriteCurve writes a curve as a JSON scene document. Curves with any
// nonzero z coordinate are written as bspline3d, the rest as bspline2d.
func WriteCurve(w io.Writer, c *spline.BSpline) error {
	doc := jsonDocument{
		Type:   "bspline2d",
		Degree: c.Degree(),
		Points: make([]jsonPoint, len(c.ControlPoints)),
		Knots:  c.Knots(),
	}
	for i, p := range c.ControlPoints {
		doc.Points[i] = jsonPoint{X: p.X, Y: p.Y, Z: p.Z}
		if p.Z != 0 {
			doc.Type = "bspline3d"
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(&doc)
}

// WriteSurface writes a surface as a JSON scene document.
func WriteSurface(w io.Writer, s *spline.Surface) error {
	doc := jsonDocument{
		Type: "surface",
		U:    &jsonAxis{Degree: s.DegreeU(), Knots: s.KnotsU()},
		V:    &jsonAxis{Degree: s.DegreeV(), Knots: s.KnotsV()},
		Mesh: make([][]jsonPoint, len(s.Mesh)),
	}
	for i, row := range s.Mesh {
		doc.Mesh[i] = make([]jsonPoint, len(row))
		for j, p := range row {
			doc.Mesh[i][j] = jsonPoint{X: p.X, Y: p.Y, Z: p.Z}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(&doc)
}
