// Package command translates AI drawing commands, expressed in the
// engine's logical coordinate space, into document elements. It is the
// only path from generated commands onto the surface.
package command

import (
	"log/slog"

	"SharedSlate/internal/geom"
	"SharedSlate/internal/state"
)

// Command types understood by the translator.
const (
	TypeDrawText   = "draw_text"
	TypeDrawShape  = "draw_shape"
	TypeDrawSymbol = "draw_symbol"
)

// Command is one AI drawing instruction. Coordinates are in the logical
// space (1000x700 by default); Position anchors text and closed shapes,
// Start/End describe lines and arrows.
type Command struct {
	Type     string      `json:"type"`
	Content  string      `json:"content,omitempty"`
	Shape    string      `json:"shape,omitempty"`
	Symbol   string      `json:"symbol,omitempty"`
	Size     float64     `json:"size,omitempty"`
	Position *geom.Point `json:"position,omitempty"`
	Start    *geom.Point `json:"start,omitempty"`
	End      *geom.Point `json:"end,omitempty"`
	Width    float64     `json:"width,omitempty"`
	Height   float64     `json:"height,omitempty"`
	FontSize float64     `json:"font_size,omitempty"`
	Color    string      `json:"color,omitempty"`
}

// Translator maps commands into elements sized for a concrete canvas.
// With HandwrittenText set, draw_text commands are synthesized as jittered
// stroke elements instead of a text element, for the hand-drawn look.
type Translator struct {
	engine           *geom.Engine
	bounds           geom.Bounds
	canvasW, canvasH float64
	log              *slog.Logger

	HandwrittenText bool
}

// NewTranslator creates a translator for one canvas. bounds should be
// derived from the same canvas size so clamping matches the surface.
func NewTranslator(engine *geom.Engine, canvasW, canvasH, safeMargin float64, log *slog.Logger) *Translator {
	if log == nil {
		log = slog.Default()
	}
	return &Translator{
		engine:  engine,
		bounds:  geom.BoundsForCanvas(canvasW, canvasH, safeMargin),
		canvasW: canvasW,
		canvasH: canvasH,
		log:     log,
	}
}

// Translate converts one command into zero or more elements. Unknown or
// incomplete commands are skipped with a log line, never an error; a bad
// generated command must not break the drawing session.
func (t *Translator) Translate(cmd Command) []state.Element {
	switch cmd.Type {
	case TypeDrawText:
		return t.translateText(cmd)
	case TypeDrawShape:
		return t.translateShape(cmd)
	case TypeDrawSymbol:
		return t.translateSymbol(cmd)
	default:
		t.log.Warn("skipping unknown drawing command", "type", cmd.Type)
		return nil
	}
}

func (t *Translator) translateText(cmd Command) []state.Element {
	if cmd.Position == nil || cmd.Content == "" {
		t.log.Warn("skipping incomplete draw_text command")
		return nil
	}
	anchor := t.toDevice(*cmd.Position)
	fontSize := cmd.FontSize
	if fontSize <= 0 {
		fontSize = 18
	}
	content := geom.LatexToVisualUnicode(geom.NormalizeMathDelimiters(cmd.Content))
	if !t.HandwrittenText {
		return []state.Element{
			state.NewTextElement(content, anchor, fontSize, colorOrDefault(cmd.Color)),
		}
	}

	strokes := t.engine.GenerateTextAsHandwriting(content, anchor.X, anchor.Y, fontSize)
	elements := make([]state.Element, 0, len(strokes))
	for _, pts := range strokes {
		pts = geom.ClampToBounds(pts, t.bounds)
		elements = append(elements, state.NewStrokeElement(pts, colorOrDefault(cmd.Color), 2))
	}
	return elements
}

func (t *Translator) translateShape(cmd Command) []state.Element {
	kind, ok := shapeKind(cmd.Shape)
	if !ok {
		t.log.Warn("skipping unknown shape", "shape", cmd.Shape)
		return nil
	}

	var anchor geom.Point
	var w, h float64
	switch kind {
	case state.ShapeLine, state.ShapeArrow:
		if cmd.Start == nil || cmd.End == nil {
			t.log.Warn("skipping line/arrow without endpoints")
			return nil
		}
		start := t.toDevice(*cmd.Start)
		end := t.toDevice(*cmd.End)
		anchor = start
		w = end.X - start.X
		h = end.Y - start.Y
	default:
		if cmd.Position == nil {
			t.log.Warn("skipping shape without position")
			return nil
		}
		anchor = t.toDevice(*cmd.Position)
		lw, lh := t.engine.LogicalSpace()
		w = cmd.Width * t.canvasW / lw
		h = cmd.Height * t.canvasH / lh
		ax, ay, cw, ch := geom.ConstrainPathToBounds(anchor.X, anchor.Y, w, h, t.bounds)
		anchor = geom.Point{X: ax, Y: ay}
		w, h = cw, ch
	}

	return []state.Element{
		state.NewShapeElement(kind, anchor, w, h, colorOrDefault(cmd.Color), ""),
	}
}

func (t *Translator) translateSymbol(cmd Command) []state.Element {
	if cmd.Position == nil {
		t.log.Warn("skipping draw_symbol without position")
		return nil
	}
	anchor := t.toDevice(*cmd.Position)
	size := cmd.Size
	if size <= 0 {
		size = 40
	}
	// Unknown symbols degrade to the dot stroke inside the engine.
	strokes := t.engine.GenerateSymbolStrokes(cmd.Symbol, anchor.X, anchor.Y, size)
	elements := make([]state.Element, 0, len(strokes))
	for _, pts := range strokes {
		pts = geom.ClampToBounds(pts, t.bounds)
		elements = append(elements, state.NewStrokeElement(pts, colorOrDefault(cmd.Color), 2))
	}
	return elements
}

// toDevice rescales a logical-space point to the canvas and clamps it into
// the safe interior.
func (t *Translator) toDevice(p geom.Point) geom.Point {
	dev := t.engine.NormalizeCoordinates(p.X, p.Y, t.canvasW, t.canvasH)
	return t.bounds.ClampPoint(dev)
}

func shapeKind(s string) (state.ShapeKind, bool) {
	switch state.ShapeKind(s) {
	case state.ShapeRectangle, state.ShapeCircle, state.ShapeEllipse, state.ShapeArrow, state.ShapeLine:
		return state.ShapeKind(s), true
	default:
		return "", false
	}
}

func colorOrDefault(c string) string {
	if c == "" {
		return "#000000"
	}
	return c
}
