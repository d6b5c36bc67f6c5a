package dot

import "strings"

// Fill is an arrow shape modifier selecting an open or filled shape.
type Fill int

const (
	FillFilled Fill = iota
	FillOpen
)

// modifier returns the arrow-name prefix for the fill ("o" for open).
func (f Fill) modifier() string {
	if f == FillOpen {
		return "o"
	}
	return ""
}

// Side is an arrow shape modifier that clips the shape to one side.
// SideLeft means only the left half is visible.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// modifier returns the arrow-name prefix for the clipping ("l" or "r").
func (s Side) modifier() string {
	switch s {
	case SideLeft:
		return "l"
	case SideRight:
		return "r"
	default:
		return ""
	}
}

// shapeKind enumerates the primitive arrow shapes defined in
// https://www.graphviz.org/doc/info/arrows.html.
type shapeKind int

const (
	shapeNone shapeKind = iota
	shapeNormal
	shapeBox
	shapeCrow
	shapeCurve
	shapeICurve
	shapeDiamond
	shapeDot
	shapeInv
	shapeTee
	shapeVee
)

var shapeNames = [...]string{
	shapeNone:    "none",
	shapeNormal:  "normal",
	shapeBox:     "box",
	shapeCrow:    "crow",
	shapeCurve:   "curve",
	shapeICurve:  "icurve",
	shapeDiamond: "diamond",
	shapeDot:     "dot",
	shapeInv:     "inv",
	shapeTee:     "tee",
	shapeVee:     "vee",
}

// Shape is a single arrow shape with its modifiers. Not every shape supports
// every modifier: crow, curve, tee and vee take only a side, dot only a
// fill, and "none" takes neither. Constructors expose exactly the valid
// combinations.
type Shape struct {
	kind shapeKind
	fill Fill
	side Side
}

// ShapeNone returns the shape that displays no arrow.
func ShapeNone() Shape { return Shape{kind: shapeNone} }

// ShapeNormal returns the standard triangular arrow shape.
func ShapeNormal(f Fill, s Side) Shape { return Shape{kind: shapeNormal, fill: f, side: s} }

// ShapeBox returns an arrow ending in a small square box.
func ShapeBox(f Fill, s Side) Shape { return Shape{kind: shapeBox, fill: f, side: s} }

// ShapeCrow returns an arrow ending in three branching lines (crow's foot).
func ShapeCrow(s Side) Shape { return Shape{kind: shapeCrow, side: s} }

// ShapeCurve returns an arrow ending in a curve.
func ShapeCurve(s Side) Shape { return Shape{kind: shapeCurve, side: s} }

// ShapeICurve returns an arrow ending in an inverted curve.
func ShapeICurve(f Fill, s Side) Shape { return Shape{kind: shapeICurve, fill: f, side: s} }

// ShapeDiamond returns an arrow ending in a diamond.
func ShapeDiamond(f Fill, s Side) Shape { return Shape{kind: shapeDiamond, fill: f, side: s} }

// ShapeDot returns an arrow ending in a circle.
func ShapeDot(f Fill) Shape { return Shape{kind: shapeDot, fill: f} }

// ShapeInv returns an arrow ending in an inverted triangle.
func ShapeInv(f Fill, s Side) Shape { return Shape{kind: shapeInv, fill: f, side: s} }

// ShapeTee returns an arrow ending in a T.
func ShapeTee(s Side) Shape { return Shape{kind: shapeTee, side: s} }

// ShapeVee returns an arrow ending in a V.
func ShapeVee(s Side) Shape { return Shape{kind: shapeVee, side: s} }

// String renders the shape name with its modifier prefixes, e.g. "olbox".
func (s Shape) String() string {
	var b strings.Builder
	switch s.kind {
	case shapeNormal, shapeBox, shapeICurve, shapeDiamond, shapeInv:
		b.WriteString(s.fill.modifier())
		b.WriteString(s.side.modifier())
	case shapeDot:
		b.WriteString(s.fill.modifier())
	case shapeCrow, shapeCurve, shapeTee, shapeVee:
		b.WriteString(s.side.modifier())
	}
	b.WriteString(shapeNames[s.kind])
	return b.String()
}

// Arrow describes the arrow drawn at one end of an edge: a sequence of up to
// four shapes, innermost last, concatenated per the graphviz arrowType
// grammar. The zero value is the default arrow, which emits no arrowhead or
// arrowtail attribute at all.
type Arrow struct {
	shapes []Shape
}

// DefaultArrow returns the default arrow (no attribute emitted).
func DefaultArrow() Arrow { return Arrow{} }

// NoArrow returns an arrow that is explicitly drawn as "none".
func NoArrow() Arrow { return Arrow{shapes: []Shape{ShapeNone()}} }

// NormalArrow returns the regular filled triangle arrow.
func NormalArrow() Arrow { return Arrow{shapes: []Shape{ShapeNormal(FillFilled, SideBoth)}} }

// ArrowFrom composes an arrow from the given shapes, outermost first.
func ArrowFrom(shapes ...Shape) Arrow { return Arrow{shapes: shapes} }

// IsDefault reports whether the arrow carries no explicit shapes.
func (a Arrow) IsDefault() bool { return len(a.shapes) == 0 }

// String renders the arrow as a graphviz arrowType value.
func (a Arrow) String() string {
	var b strings.Builder
	for _, s := range a.shapes {
		b.WriteString(s.String())
	}
	return b.String()
}
