package geom

import (
	"fmt"
	"strings"
)

// PathOp identifies one drawing primitive in a Path.
type PathOp byte

const (
	MoveTo  PathOp = 'M'
	LineTo  PathOp = 'L'
	CurveTo PathOp = 'Q' // quadratic Bezier
)

// PathCommand is a single move/line/curve primitive. CX/CY are only
// meaningful for CurveTo.
type PathCommand struct {
	Op     PathOp
	X, Y   float64
	CX, CY float64
}

// Path is an ordered primitive list describing one renderable outline.
type Path []PathCommand

// SVG serializes the path using SVG path syntax.
func (p Path) SVG() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case CurveTo:
			fmt.Fprintf(&b, "Q %s %s %s %s", coord(c.CX), coord(c.CY), coord(c.X), coord(c.Y))
		default:
			fmt.Fprintf(&b, "%c %s %s", c.Op, coord(c.X), coord(c.Y))
		}
	}
	return b.String()
}

func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// PointsToSmoothPath smooths the input and builds a quadratic-Bezier path
// through the midpoints of consecutive smoothed points, which joins curve
// segments without corners. Degenerate inputs produce a best-effort path:
// empty in, empty out; a single point becomes a bare MoveTo; two points a
// straight line.
func PointsToSmoothPath(points []Point) Path {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return Path{{Op: MoveTo, X: points[0].X, Y: points[0].Y}}
	case 2:
		return Path{
			{Op: MoveTo, X: points[0].X, Y: points[0].Y},
			{Op: LineTo, X: points[1].X, Y: points[1].Y},
		}
	}

	pts := SmoothPoints(points, 0.5, 8)
	path := make(Path, 0, len(pts))
	path = append(path, PathCommand{Op: MoveTo, X: pts[0].X, Y: pts[0].Y})

	for i := 1; i < len(pts)-1; i++ {
		midX := (pts[i].X + pts[i+1].X) / 2
		midY := (pts[i].Y + pts[i+1].Y) / 2
		path = append(path, PathCommand{Op: CurveTo, CX: pts[i].X, CY: pts[i].Y, X: midX, Y: midY})
	}
	last := pts[len(pts)-1]
	path = append(path, PathCommand{Op: LineTo, X: last.X, Y: last.Y})
	return path
}
