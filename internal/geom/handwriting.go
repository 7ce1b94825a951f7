package geom

import "unicode"

// glyphTable holds per-character stroke definitions in a unit box
// (x right, y down, 0..1). Each stroke is a flat x,y vertex list.
// The table covers digits, common math operators and a handful of
// letters; anything else is skipped when rendering.
var glyphTable = map[rune][][]float64{
	'0': {{0.5, 0, 0.15, 0.25, 0.15, 0.75, 0.5, 1, 0.85, 0.75, 0.85, 0.25, 0.5, 0}},
	'1': {{0.3, 0.2, 0.5, 0, 0.5, 1}},
	'2': {{0.15, 0.25, 0.3, 0, 0.7, 0, 0.85, 0.25, 0.15, 1, 0.85, 1}},
	'3': {{0.15, 0.1, 0.7, 0, 0.85, 0.25, 0.5, 0.5, 0.85, 0.75, 0.7, 1, 0.15, 0.9}},
	'4': {{0.7, 1, 0.7, 0, 0.15, 0.7, 0.9, 0.7}},
	'5': {{0.85, 0, 0.15, 0, 0.15, 0.45, 0.7, 0.4, 0.85, 0.7, 0.7, 1, 0.15, 0.95}},
	'6': {{0.8, 0, 0.3, 0.4, 0.15, 0.75, 0.5, 1, 0.85, 0.75, 0.5, 0.5, 0.2, 0.65}},
	'7': {{0.15, 0, 0.85, 0, 0.4, 1}},
	'8': {{0.5, 0.5, 0.2, 0.25, 0.5, 0, 0.8, 0.25, 0.5, 0.5, 0.2, 0.75, 0.5, 1, 0.8, 0.75, 0.5, 0.5}},
	'9': {{0.8, 0.35, 0.5, 0.5, 0.2, 0.25, 0.5, 0, 0.8, 0.25, 0.8, 0.35, 0.6, 1}},
	'+': {{0.5, 0.2, 0.5, 0.8}, {0.2, 0.5, 0.8, 0.5}},
	'-': {{0.2, 0.5, 0.8, 0.5}},
	'=': {{0.2, 0.4, 0.8, 0.4}, {0.2, 0.65, 0.8, 0.65}},
	'.': {{0.5, 0.95, 0.52, 1}},
	'(': {{0.65, 0, 0.4, 0.3, 0.4, 0.7, 0.65, 1}},
	')': {{0.35, 0, 0.6, 0.3, 0.6, 0.7, 0.35, 1}},
	'/': {{0.8, 0, 0.2, 1}},
	'a': {{0.75, 0.55, 0.45, 0.4, 0.2, 0.7, 0.45, 1, 0.75, 0.8, 0.75, 0.45, 0.8, 1}},
	'b': {{0.2, 0, 0.2, 1, 0.55, 1, 0.8, 0.75, 0.55, 0.5, 0.2, 0.6}},
	'c': {{0.8, 0.5, 0.45, 0.4, 0.2, 0.7, 0.45, 1, 0.8, 0.9}},
	'n': {{0.2, 0.4, 0.2, 1}, {0.2, 0.55, 0.5, 0.4, 0.75, 0.55, 0.75, 1}},
	't': {{0.5, 0.1, 0.5, 1}, {0.25, 0.35, 0.75, 0.35}},
	'x': {{0.2, 0.4, 0.8, 1}, {0.8, 0.4, 0.2, 1}},
	'y': {{0.2, 0.4, 0.5, 0.8}, {0.8, 0.4, 0.3, 1.2}},
}

// glyphAdvance is the cursor step per character as a fraction of the font
// size; fixed regardless of glyph shape, so skipped characters still leave
// a gap.
const glyphAdvance = 0.6

// GenerateTextAsHandwriting renders text as jittered stroke sequences from
// the glyph table. (x, y) anchors the vertical center of the first glyph
// cell. Characters without a table entry are skipped while the cursor still
// advances; the function never fails.
func (e *Engine) GenerateTextAsHandwriting(text string, x, y, fontSize float64) [][]Point {
	if fontSize <= 0 {
		fontSize = 16
	}
	var strokes [][]Point
	cursor := x
	for _, r := range text {
		glyph, ok := glyphTable[r]
		if !ok {
			glyph, ok = glyphTable[unicode.ToLower(r)]
		}
		if ok {
			for _, flat := range glyph {
				stroke := make([]Point, 0, len(flat)/2)
				for i := 0; i+1 < len(flat); i += 2 {
					px := cursor + flat[i]*fontSize*0.55
					py := y + (flat[i+1]-0.5)*fontSize
					stroke = append(stroke, e.jitterPoint(px, py))
				}
				strokes = append(strokes, stroke)
			}
		}
		cursor += glyphAdvance * fontSize
	}
	return strokes
}
