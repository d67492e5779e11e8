// Package render exports the live diagram as Graphviz DOT and SVG.
//
// This is a static export honoring the canonical style payload (fill,
// stroke, dash pattern, marker decoration) and the positions supplied
// by the import. The interactive on-screen renderer is a separate
// collaborator and is not part of this package.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/flowdeck/flowdeck/pkg/model"
)

// ToDOT converts a diagram to Graphviz DOT. Node positions are pinned
// so the neato engine reproduces the imported layout instead of
// computing its own.
func ToDOT(d model.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deck {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n model.Node) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", n.Label),
		fmt.Sprintf("shape=%s", dotShape(n.Shape)),
		// Graphviz's y axis points up; screen coordinates point down.
		fmt.Sprintf("pos=\"%g,%g!\"", n.X, -n.Y),
		fmt.Sprintf("width=%g", n.Width/72),
		fmt.Sprintf("height=%g", n.Height/72),
		"fixedsize=true",
		fmt.Sprintf("fillcolor=%q", n.Style.Fill),
		fmt.Sprintf("color=%q", n.Style.Stroke),
		fmt.Sprintf("penwidth=%d", n.Style.StrokeWidth),
	}
	return attrs
}

// edgeAttrs renders the line style plus the fixed marker decoration:
// a circle at the source and a diamond at the target.
func edgeAttrs(e model.Edge) []string {
	attrs := []string{
		fmt.Sprintf("color=%q", e.Stroke),
		"dir=both",
		"arrowtail=odot",
		"arrowhead=diamond",
	}
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	switch e.DashArray {
	case model.DashDashed:
		attrs = append(attrs, "style=dashed")
	case model.DashDotted:
		attrs = append(attrs, "style=dotted")
	}
	return attrs
}

func dotShape(shape string) string {
	switch shape {
	case model.ShapeCircle:
		return "circle"
	case model.ShapeEllipse:
		return "ellipse"
	default:
		return "box"
	}
}

// SVG renders a DOT graph to SVG bytes using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
