package geom

import "math"

// jitterPx bounds the random perturbation applied to synthesized points so
// generated symbols read as hand-drawn rather than mechanical.
const jitterPx = 1.0

// GenerateSymbolStrokes synthesizes hand-drawn-looking strokes for a math
// symbol anchored at (x, y) with the given size. Recognized symbols:
// integral, sum, product, sqrt, partial, infinity, derivative. Anything else
// degrades to a single dot stroke; this function never fails.
func (e *Engine) GenerateSymbolStrokes(symbol string, x, y, size float64) [][]Point {
	if size <= 0 {
		size = 1
	}
	switch symbol {
	case "integral":
		return [][]Point{e.integralStroke(x, y, size)}
	case "sum":
		return [][]Point{e.polyline(24, sigmaVertices(x, y, size)...)}
	case "product":
		return e.productStrokes(x, y, size)
	case "sqrt":
		return [][]Point{e.polyline(24, sqrtVertices(x, y, size)...)}
	case "partial":
		return [][]Point{e.partialStroke(x, y, size)}
	case "infinity":
		return [][]Point{e.infinityStroke(x, y, size)}
	case "derivative":
		return e.derivativeStrokes(x, y, size)
	default:
		return [][]Point{e.dotStroke(x, y)}
	}
}

// dotStroke is the fallback for unrecognized symbols: a tight cluster of
// points that renders as a dot.
func (e *Engine) dotStroke(x, y float64) []Point {
	pts := make([]Point, 0, 4)
	for i := 0; i < 4; i++ {
		pts = append(pts, e.jitterPoint(x, y))
	}
	return pts
}

func (e *Engine) integralStroke(x, y, size float64) []Point {
	const n = 24
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		px := x - 0.22*size*math.Sin(2*math.Pi*t)
		py := y - size/2 + size*t
		pts = append(pts, e.jitterPoint(px, py))
	}
	return pts
}

func sigmaVertices(x, y, size float64) []Point {
	return []Point{
		{X: x + 0.4*size, Y: y - 0.5*size},
		{X: x - 0.4*size, Y: y - 0.5*size},
		{X: x + 0.1*size, Y: y},
		{X: x - 0.4*size, Y: y + 0.5*size},
		{X: x + 0.4*size, Y: y + 0.5*size},
	}
}

func (e *Engine) productStrokes(x, y, size float64) [][]Point {
	top := e.polyline(8,
		Point{X: x - 0.4*size, Y: y - 0.5*size},
		Point{X: x + 0.4*size, Y: y - 0.5*size})
	left := e.polyline(8,
		Point{X: x - 0.28*size, Y: y - 0.5*size},
		Point{X: x - 0.28*size, Y: y + 0.5*size})
	right := e.polyline(8,
		Point{X: x + 0.28*size, Y: y - 0.5*size},
		Point{X: x + 0.28*size, Y: y + 0.5*size})
	return [][]Point{top, left, right}
}

func sqrtVertices(x, y, size float64) []Point {
	return []Point{
		{X: x - 0.45*size, Y: y + 0.1*size},
		{X: x - 0.25*size, Y: y + 0.5*size},
		{X: x, Y: y - 0.5*size},
		{X: x + 0.5*size, Y: y - 0.5*size},
	}
}

func (e *Engine) partialStroke(x, y, size float64) []Point {
	const n = 28
	pts := make([]Point, 0, n+5)
	// Top curl sweeping into the loop.
	pts = append(pts, e.polyline(4,
		Point{X: x + 0.32*size, Y: y - 0.5*size},
		Point{X: x + 0.12*size, Y: y - 0.2*size})...)
	// Open loop forming the body.
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		angle := -math.Pi/3 + t*1.8*math.Pi
		px := x + 0.28*size*math.Cos(angle)
		py := y + 0.18*size + 0.3*size*math.Sin(angle)
		pts = append(pts, e.jitterPoint(px, py))
	}
	return pts
}

func (e *Engine) infinityStroke(x, y, size float64) []Point {
	const n = 36
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n * 2 * math.Pi
		denom := 1 + math.Sin(t)*math.Sin(t)
		px := x + 0.5*size*math.Cos(t)/denom
		py := y + 0.5*size*math.Sin(t)*math.Cos(t)/denom
		pts = append(pts, e.jitterPoint(px, py))
	}
	return pts
}

func (e *Engine) derivativeStrokes(x, y, size float64) [][]Point {
	// A lowercase d: open loop plus ascender.
	const n = 20
	loop := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		angle := math.Pi/4 + t*1.6*math.Pi
		px := x - 0.1*size + 0.22*size*math.Cos(angle)
		py := y + 0.2*size + 0.22*size*math.Sin(angle)
		loop = append(loop, e.jitterPoint(px, py))
	}
	ascender := e.polyline(10,
		Point{X: x + 0.12*size, Y: y - 0.5*size},
		Point{X: x + 0.12*size, Y: y + 0.42*size})
	return [][]Point{loop, ascender}
}

// polyline samples straight segments between the given vertices, n points
// total, with jitter on every emitted point.
func (e *Engine) polyline(n int, vertices ...Point) []Point {
	if len(vertices) == 0 {
		return nil
	}
	if len(vertices) == 1 || n < 2 {
		return []Point{e.jitterPoint(vertices[0].X, vertices[0].Y)}
	}

	// Distribute samples across segments by length.
	total := 0.0
	for i := 1; i < len(vertices); i++ {
		total += math.Hypot(vertices[i].X-vertices[i-1].X, vertices[i].Y-vertices[i-1].Y)
	}
	pts := make([]Point, 0, n)
	pts = append(pts, e.jitterPoint(vertices[0].X, vertices[0].Y))
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		samples := 1
		if total > 0 {
			samples = int(math.Ceil(segLen / total * float64(n-1)))
			if samples < 1 {
				samples = 1
			}
		}
		for s := 1; s <= samples; s++ {
			t := float64(s) / float64(samples)
			pts = append(pts, e.jitterPoint(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t))
		}
	}
	return pts
}

func (e *Engine) jitterPoint(x, y float64) Point {
	return Point{X: x + e.jitter(jitterPx), Y: y + e.jitter(jitterPx)}
}
