package diagram

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Markup parses the XML diagram encoding. The document root holds
// node and edge elements as direct children; all fields travel as
// attributes. Unknown attributes and elements are ignored.
type Markup struct{}

func (m *Markup) Kind() string { return KindMarkup }

func (m *Markup) Supports(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xml")
}

// Parse decodes the markup document. Ill-formed XML and missing
// mandatory attributes (node: id, label, type; edge: source, target)
// are fatal for the whole parse. Records are returned in document
// order.
func (m *Markup) Parse(data []byte) (*Document, error) {
	var root markupRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	doc := &Document{Kind: KindMarkup}

	for i, n := range root.Nodes {
		if n.ID == "" || n.Label == "" || n.Type == "" {
			return nil, fmt.Errorf("parse markup: node %d: missing mandatory attribute (id, label, type)", i+1)
		}
		doc.Nodes = append(doc.Nodes, RawNode{
			ID:          n.ID,
			Label:       n.Label,
			X:           n.X,
			Y:           n.Y,
			Type:        n.Type,
			Fill:        n.Fill,
			Stroke:      n.Stroke,
			StrokeWidth: n.StrokeWidth,
			Width:       n.Width,
			Height:      n.Height,
		})
	}

	for i, e := range root.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("parse markup: edge %d: missing mandatory attribute (source, target)", i+1)
		}
		typ := e.Type
		if typ == "" {
			typ = DefaultEdgeType
		}
		doc.Edges = append(doc.Edges, RawEdge{
			Source: e.Source,
			Target: e.Target,
			ID:     e.ID,
			Name:   e.Name,
			Type:   typ,
		})
	}

	return doc, nil
}

type markupRoot struct {
	XMLName xml.Name
	Nodes   []markupNode `xml:"node"`
	Edges   []markupEdge `xml:"edge"`
}

type markupNode struct {
	ID          string `xml:"id,attr"`
	Label       string `xml:"label,attr"`
	X           string `xml:"x,attr"`
	Y           string `xml:"y,attr"`
	Type        string `xml:"type,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"strokeWidth,attr"`
	Width       string `xml:"width,attr"`
	Height      string `xml:"height,attr"`
}

type markupEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	Type   string `xml:"type,attr"`
}

// Ensure Markup implements Parser.
var _ Parser = (*Markup)(nil)
