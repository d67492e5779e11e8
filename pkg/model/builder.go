package model

import (
	"github.com/flowdeck/flowdeck/pkg/coerce"
	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// Build lifts a parsed document into a canonical Diagram.
//
// Field coercion and defaulting happen here: missing or malformed
// numerics fall back to their defaults, missing colors resolve to the
// package defaults, and rectangle-kind nodes get their height forced to
// [RectangleHeight] regardless of the supplied value. Duplicate node
// IDs merge permissively - the later record replaces the earlier one in
// place. Build never fails; edge endpoints are passed through for the
// reconciler to validate.
func Build(doc *diagram.Document) *Diagram {
	d := &Diagram{}

	index := make(map[string]int)
	for _, raw := range doc.Nodes {
		n := buildNode(raw)
		if i, seen := index[n.ID]; seen {
			d.Nodes[i] = n
			continue
		}
		index[n.ID] = len(d.Nodes)
		d.Nodes = append(d.Nodes, n)
	}

	stroke := EdgeStrokeMarkup
	if doc.Kind == diagram.KindTabular {
		stroke = EdgeStrokeTabular
	}
	for _, raw := range doc.Edges {
		d.Edges = append(d.Edges, Edge{
			Source:    raw.Source,
			Target:    raw.Target,
			ID:        raw.ID,
			Label:     raw.Name,
			Stroke:    stroke,
			DashArray: Dash(raw.Type),
		})
	}

	return d
}

func buildNode(raw diagram.RawNode) Node {
	shape := normalizeShape(raw.Type)

	height := coerce.Size(raw.Height, DefaultHeight)
	if shape == ShapeRectangle {
		height = RectangleHeight
	}

	return Node{
		ID:     raw.ID,
		Label:  raw.Label,
		X:      coerce.Float(raw.X, 0),
		Y:      coerce.Float(raw.Y, 0),
		Shape:  shape,
		Width:  coerce.Size(raw.Width, DefaultWidth),
		Height: height,
		Style: Style{
			Fill:        coerce.String(raw.Fill, DefaultFill),
			Stroke:      coerce.String(raw.Stroke, DefaultStroke),
			StrokeWidth: coerce.StrokeWidth(raw.StrokeWidth),
		},
	}
}

// Dash maps an edge type to its stroke dash pattern. Unknown types
// render solid.
func Dash(edgeType string) string {
	switch edgeType {
	case "dashed":
		return DashDashed
	case "dotted":
		return DashDotted
	default:
		return DashSolid
	}
}

func normalizeShape(t string) string {
	switch t {
	case ShapeCircle, ShapeEllipse:
		return t
	default:
		return ShapeRectangle
	}
}
