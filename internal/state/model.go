package state

import (
	"github.com/oklog/ulid/v2"

	"SharedSlate/internal/geom"
)

// ElementKind discriminates the Element union.
type ElementKind string

const (
	KindStroke ElementKind = "stroke"
	KindShape  ElementKind = "shape"
	KindText   ElementKind = "text"
)

// ShapeKind enumerates the primitive shapes the surface supports.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeEllipse   ShapeKind = "ellipse"
	ShapeArrow     ShapeKind = "arrow"
	ShapeLine      ShapeKind = "line"
)

// Stroke is one continuous pen gesture. Strokes are never mutated after
// creation; edits produce a new Stroke.
type Stroke struct {
	Points    []geom.Point `json:"points"`
	Color     string       `json:"color"`
	BaseWidth float64      `json:"base_width"`
}

// Shape is a primitive figure anchored at its top-left corner (center for
// circle/ellipse).
type Shape struct {
	Kind        ShapeKind  `json:"kind"`
	Anchor      geom.Point `json:"anchor"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	StrokeColor string     `json:"stroke_color"`
	Fill        string     `json:"fill,omitempty"`
}

// Text is a positioned text label.
type Text struct {
	Content  string     `json:"content"`
	Anchor   geom.Point `json:"anchor"`
	FontSize float64    `json:"font_size"`
	Color    string     `json:"color"`
}

// Element is one drawable unit on the shared surface: a tagged union over
// stroke, shape and text. Exactly one of the three pointers is set,
// matching Kind. The ULID id is creation-time-derived and collision
// resistant within a session; Z is the insertion order.
type Element struct {
	ID   string      `json:"id"`
	Kind ElementKind `json:"kind"`
	Z    int         `json:"z"`

	Stroke *Stroke `json:"stroke,omitempty"`
	Shape  *Shape  `json:"shape,omitempty"`
	Text   *Text   `json:"text,omitempty"`
}

func newElementID() string {
	return ulid.Make().String()
}

// NewStrokeElement wraps a finished gesture in an Element with a fresh id.
func NewStrokeElement(points []geom.Point, color string, baseWidth float64) Element {
	return Element{
		ID:     newElementID(),
		Kind:   KindStroke,
		Stroke: &Stroke{Points: points, Color: color, BaseWidth: baseWidth},
	}
}

// NewShapeElement wraps a primitive shape in an Element with a fresh id.
func NewShapeElement(kind ShapeKind, anchor geom.Point, width, height float64, strokeColor, fill string) Element {
	return Element{
		ID:   newElementID(),
		Kind: KindShape,
		Shape: &Shape{
			Kind:        kind,
			Anchor:      anchor,
			Width:       width,
			Height:      height,
			StrokeColor: strokeColor,
			Fill:        fill,
		},
	}
}

// NewTextElement wraps a text label in an Element with a fresh id.
func NewTextElement(content string, anchor geom.Point, fontSize float64, color string) Element {
	return Element{
		ID:   newElementID(),
		Kind: KindText,
		Text: &Text{Content: content, Anchor: anchor, FontSize: fontSize, Color: color},
	}
}
