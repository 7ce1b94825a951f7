// Package export renders a document snapshot to PDF for handouts and
// archiving. It is a one-way consumer of the element list; nothing here
// feeds back into the session.
package export

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"SharedSlate/internal/geom"
	"SharedSlate/internal/state"
)

// pxPerMM converts canvas pixels to millimeters on an A4 page; the teacher
// canvas is roughly three pixels per millimeter.
const pxPerMM = 3.0

// PDF writes the document to an A4 PDF at path. Elements render in
// z-order: strokes as smoothed polylines, shapes as primitives, text as
// text.
func PDF(path string, doc state.Document) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 12)

	for _, el := range doc.Elements {
		switch el.Kind {
		case state.KindStroke:
			if el.Stroke != nil {
				drawStroke(p, el.Stroke)
			}
		case state.KindShape:
			if el.Shape != nil {
				drawShape(p, el.Shape)
			}
		case state.KindText:
			if el.Text != nil {
				drawText(p, el.Text)
			}
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawStroke(p *gofpdf.Fpdf, s *state.Stroke) {
	r, g, b := parseHexColor(s.Color)
	p.SetDrawColor(r, g, b)
	w := s.BaseWidth / pxPerMM
	if w <= 0 {
		w = 0.5
	}
	p.SetLineWidth(w)

	pts := geom.SmoothPoints(s.Points, 0.5, 4)
	for i := 1; i < len(pts); i++ {
		p.Line(
			pts[i-1].X/pxPerMM, pts[i-1].Y/pxPerMM,
			pts[i].X/pxPerMM, pts[i].Y/pxPerMM,
		)
	}
}

func drawShape(p *gofpdf.Fpdf, s *state.Shape) {
	r, g, b := parseHexColor(s.StrokeColor)
	p.SetDrawColor(r, g, b)
	p.SetLineWidth(0.5)

	x := s.Anchor.X / pxPerMM
	y := s.Anchor.Y / pxPerMM
	w := s.Width / pxPerMM
	h := s.Height / pxPerMM

	switch s.Kind {
	case state.ShapeRectangle:
		p.Rect(x, y, w, h, "D")
	case state.ShapeCircle:
		radius := w / 2
		if h/2 < radius {
			radius = h / 2
		}
		p.Circle(x, y, radius, "D")
	case state.ShapeEllipse:
		p.Ellipse(x, y, w/2, h/2, 0, "D")
	case state.ShapeLine:
		p.Line(x, y, x+w, y+h)
	case state.ShapeArrow:
		p.Line(x, y, x+w, y+h)
		drawArrowHead(p, x, y, x+w, y+h)
	}
}

// drawArrowHead adds two short barbs at the arrow tip.
func drawArrowHead(p *gofpdf.Fpdf, x1, y1, x2, y2 float64) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Normalized direction, barbs at ~30 degrees, 3mm long.
	const barb = 3.0
	inv := 1 / length
	ux, uy := dx*inv, dy*inv
	p.Line(x2, y2, x2-barb*(ux*0.87-uy*0.5), y2-barb*(uy*0.87+ux*0.5))
	p.Line(x2, y2, x2-barb*(ux*0.87+uy*0.5), y2-barb*(uy*0.87-ux*0.5))
}

func drawText(p *gofpdf.Fpdf, t *state.Text) {
	r, g, b := parseHexColor(t.Color)
	p.SetTextColor(r, g, b)
	size := t.FontSize / pxPerMM * 2.83 // px -> approximate points
	if size <= 0 {
		size = 12
	}
	p.SetFontSize(size)
	p.Text(t.Anchor.X/pxPerMM, t.Anchor.Y/pxPerMM, t.Content)
}

// parseHexColor reads #rgb or #rrggbb; anything else is black.
func parseHexColor(s string) (r, g, b int) {
	if len(s) == 4 && s[0] == '#' {
		r = hexNibble(s[1]) * 17
		g = hexNibble(s[2]) * 17
		b = hexNibble(s[3]) * 17
		return r, g, b
	}
	if len(s) == 7 && s[0] == '#' {
		r = hexNibble(s[1])<<4 | hexNibble(s[2])
		g = hexNibble(s[3])<<4 | hexNibble(s[4])
		b = hexNibble(s[5])<<4 | hexNibble(s[6])
		return r, g, b
	}
	return 0, 0, 0
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}
