package scene

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Twinklebear/spline-viewer/spline"
)

// groupStart matches the header line that opens a control point group. P
// groups are polynomial, Q groups rational; rational weights are parsed past
// but ignored.
var groupStart = regexp.MustCompile(`^(P|Q), *(\d+)`)

// readText parses the legacy text format: a count of groups, then per group
// a P/Q header followed by one "x, y" line per control point. Empty lines
// and lines starting with '#' are skipped. Each group becomes a Bézier
// curve.
func (s *Scene) readText(r io.Reader) error {
	groups, err := ParsePointGroups(r)
	if err != nil {
		return err
	}
	for _, points := range groups {
		c, err := spline.NewBezier(points)
		if err != nil {
			return err
		}
		tracer().Infof("imported Bézier curve with %d control points",
			len(c.ControlPoints))
		s.Beziers = append(s.Beziers, c)
	}
	return nil
}

// ParsePointGroups reads the legacy text format and returns its control
// point groups without interpreting them as curves.
func ParsePointGroups(r io.Reader) ([][]spline.Point, error) {
	var (
		groups   [][]spline.Point
		points   []spline.Point
		expected = -1
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if expected < 0 {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: bad group count %q", ErrFormat, line)
			}
			tracer().Debugf("expecting %d point group(s) from the file", n)
			expected = n
			continue
		}
		if caps := groupStart.FindStringSubmatch(line); caps != nil {
			if len(points) > 0 {
				groups = append(groups, points)
				points = nil
			}
			if caps[1] == "Q" {
				tracer().Infof("expecting %s rational control points, weights ignored", caps[2])
			} else {
				tracer().Debugf("expecting %s polynomial control points", caps[2])
			}
			continue
		}
		coords := strings.Split(line, ",")
		if len(coords) < 2 {
			return nil, fmt.Errorf("%w: bad point line %q", ErrFormat, line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad x coordinate %q", ErrFormat, coords[0])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad y coordinate %q", ErrFormat, coords[1])
		}
		points = append(points, spline.Pt(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(points) > 0 {
		groups = append(groups, points)
	}
	if expected >= 0 && len(groups) != expected {
		tracer().Infof("file declared %d group(s) but contained %d", expected, len(groups))
	}
	return groups, nil
}

// WriteControlPoints writes curves' control points in the legacy text
// format, one P group per curve. Only x and y are written.
func WriteControlPoints(w io.Writer, curves []*spline.BSpline) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(curves))
	for _, c := range curves {
		fmt.Fprintf(bw, "P,%d\n", len(c.ControlPoints))
		for _, p := range c.ControlPoints {
			fmt.Fprintf(bw, "%g, %g\n", p.X, p.Y)
		}
	}
	return bw.Flush()
}
