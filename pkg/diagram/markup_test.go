package diagram

import (
	"strings"
	"testing"
)

func TestMarkupParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		check     func(t *testing.T, doc *Document)
	}{
		{
			name:      "Empty",
			input:     `<diagram></diagram>`,
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "TwoNodesOneEdge",
			input: `<diagram>
				<node id="a" label="Start" x="10" y="20" type="rectangle"/>
				<node id="b" label="End" x="30" y="40" type="circle"/>
				<edge source="a" target="b" type="dashed"/>
			</diagram>`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, doc *Document) {
				if doc.Nodes[0].ID != "a" || doc.Nodes[1].ID != "b" {
					t.Errorf("node order = %s,%s, want a,b", doc.Nodes[0].ID, doc.Nodes[1].ID)
				}
				if doc.Edges[0].Type != "dashed" {
					t.Errorf("edge type = %q, want dashed", doc.Edges[0].Type)
				}
			},
		},
		{
			name: "EdgeTypeDefaultsToSolid",
			input: `<diagram>
				<node id="a" label="A" x="0" y="0" type="circle"/>
				<node id="b" label="B" x="1" y="1" type="circle"/>
				<edge source="a" target="b"/>
			</diagram>`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, doc *Document) {
				if doc.Edges[0].Type != DefaultEdgeType {
					t.Errorf("edge type = %q, want %q", doc.Edges[0].Type, DefaultEdgeType)
				}
			},
		},
		{
			name: "OptionalNodeFields",
			input: `<diagram>
				<node id="a" label="A" x="0" y="0" type="rectangle"
					fill="#ff0000" stroke="#00ff00" strokeWidth="3" width="120" height="80"/>
			</diagram>`,
			wantNodes: 1,
			check: func(t *testing.T, doc *Document) {
				n := doc.Nodes[0]
				if n.Fill != "#ff0000" || n.Stroke != "#00ff00" || n.StrokeWidth != "3" {
					t.Errorf("style fields = %q/%q/%q", n.Fill, n.Stroke, n.StrokeWidth)
				}
				if n.Width != "120" || n.Height != "80" {
					t.Errorf("size fields = %q/%q", n.Width, n.Height)
				}
			},
		},
		{
			name: "UnknownAttributesIgnored",
			input: `<diagram>
				<node id="a" label="A" x="0" y="0" type="circle" tooltip="hi" layer="2"/>
			</diagram>`,
			wantNodes: 1,
		},
		{
			name: "EdgeNameAndID",
			input: `<diagram>
				<node id="a" label="A" x="0" y="0" type="circle"/>
				<node id="b" label="B" x="1" y="1" type="circle"/>
				<edge source="a" target="b" id="e1" name="link" type="dotted"/>
			</diagram>`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, doc *Document) {
				e := doc.Edges[0]
				if e.ID != "e1" || e.Name != "link" || e.Type != "dotted" {
					t.Errorf("edge = %+v", e)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := (&Markup{}).Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(doc.Nodes) != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", len(doc.Nodes), tt.wantNodes)
			}
			if len(doc.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(doc.Edges), tt.wantEdges)
			}
			if doc.Kind != KindMarkup {
				t.Errorf("kind = %q, want %q", doc.Kind, KindMarkup)
			}
			if tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestMarkupParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "IllFormedXML",
			input:   `<diagram><node id="a"`,
			wantMsg: "parse markup",
		},
		{
			name:    "NodeMissingID",
			input:   `<diagram><node label="A" x="0" y="0" type="circle"/></diagram>`,
			wantMsg: "missing mandatory attribute",
		},
		{
			name:    "NodeMissingLabel",
			input:   `<diagram><node id="a" x="0" y="0" type="circle"/></diagram>`,
			wantMsg: "missing mandatory attribute",
		},
		{
			name:    "NodeMissingType",
			input:   `<diagram><node id="a" label="A" x="0" y="0"/></diagram>`,
			wantMsg: "missing mandatory attribute",
		},
		{
			name: "EdgeMissingTarget",
			input: `<diagram>
				<node id="a" label="A" x="0" y="0" type="circle"/>
				<edge source="a"/>
			</diagram>`,
			wantMsg: "missing mandatory attribute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Markup{}).Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestMarkupSupports(t *testing.T) {
	m := &Markup{}
	if !m.Supports("flow.xml") || !m.Supports("FLOW.XML") {
		t.Error("expected .xml files to be supported")
	}
	if m.Supports("flow.csv") || m.Supports("flow") {
		t.Error("unexpected support for non-xml files")
	}
}
