// Package model defines the canonical diagram entities and the builder
// that lifts loosely-typed parser records into them.
//
// A [Diagram] is the fully validated, fully defaulted form consumed by
// the live store: every node carries a resolved position, shape, size,
// and style; every edge carries a resolved line style. Endpoint
// existence is deliberately not checked here - reconciliation is the
// single point that validates edge endpoints against the node set.
package model

// Shape kinds form a small closed set. Unknown kinds from the input are
// normalized to ShapeRectangle.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeEllipse   = "ellipse"
)

// Node style defaults applied when the input omits a field.
const (
	DefaultFill        = "#3366cc"
	DefaultStroke      = "#000"
	DefaultStrokeWidth = 1
	DefaultWidth       = 100.0
	DefaultHeight      = 60.0

	// RectangleHeight overrides the supplied height for every
	// rectangle-kind node.
	RectangleHeight = 50.0
)

// Edge line colors by import source.
const (
	EdgeStrokeMarkup  = "#000"
	EdgeStrokeTabular = "#1e88e5"
)

// Stroke dash patterns by edge type.
const (
	DashSolid  = ""
	DashDashed = "8 4"
	DashDotted = "2 2"
)

// Fixed marker decoration applied by the rendering layer to every edge.
// These are rendering constants, not user data.
const (
	MarkerSource = "circle"
	MarkerTarget = "diamond"
)

// Style is the resolved visual payload of a node. All fields are
// non-optional after defaulting.
type Style struct {
	Fill        string `json:"fill"`
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"strokeWidth"`
}

// Node is a canonical diagram node. IDs are unique within one built
// Diagram; position and size are finite resolved numbers.
type Node struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Shape  string  `json:"shape"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Style  Style   `json:"style"`
}

// Edge is a canonical diagram edge. Source and Target reference node
// IDs; whether they resolve is checked during reconciliation.
type Edge struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	Stroke    string `json:"stroke"`
	DashArray string `json:"dashArray,omitempty"`
}

// Diagram is an ordered canonical model of one import batch.
type Diagram struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
