package diagram

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSeparator is returned by [Tabular.Parse] when the input
// lacks the literal "---" line dividing the node section from the edge
// section. Without it the two-section structure cannot be recovered, so
// the whole parse fails.
var ErrMissingSeparator = errors.New(`tabular document missing "---" section separator`)

// sectionSeparator divides the node rows from the edge rows.
const sectionSeparator = "---"

// Tabular parses the two-section tabular encoding: comma-separated
// node rows, a "---" line, then comma-separated edge rows. The first
// row of each section is a header naming the fields; unknown columns
// are ignored. A row missing a mandatory field is skipped with a
// diagnostic rather than failing the parse.
type Tabular struct{}

func (t *Tabular) Kind() string { return KindTabular }

func (t *Tabular) Supports(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".txt")
}

// Parse decodes the tabular document. Only a missing section separator
// is fatal; every other defect is confined to its row.
func (t *Tabular) Parse(data []byte) (*Document, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == sectionSeparator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, ErrMissingSeparator
	}

	doc := &Document{Kind: KindTabular}
	t.parseNodes(lines[:sep], doc)
	t.parseEdges(lines[sep+1:], doc)
	return doc, nil
}

func (t *Tabular) parseNodes(lines []string, doc *Document) {
	header, rows := splitSection(lines)
	for _, row := range rows {
		n := RawNode{
			ID:          row.field(header, "id"),
			Label:       row.field(header, "label"),
			X:           row.field(header, "x"),
			Y:           row.field(header, "y"),
			Type:        row.field(header, "type"),
			Fill:        row.field(header, "fill"),
			Stroke:      row.field(header, "stroke"),
			StrokeWidth: row.field(header, "strokeWidth"),
			Width:       row.field(header, "width"),
			Height:      row.field(header, "height"),
		}
		if n.ID == "" || n.Label == "" || n.X == "" || n.Y == "" || n.Type == "" {
			doc.Skipped = append(doc.Skipped,
				fmt.Sprintf("node row %d: missing mandatory field (id, label, x, y, type)", row.num))
			continue
		}
		doc.Nodes = append(doc.Nodes, n)
	}
}

func (t *Tabular) parseEdges(lines []string, doc *Document) {
	header, rows := splitSection(lines)
	for _, row := range rows {
		e := RawEdge{
			Source: row.field(header, "source"),
			Target: row.field(header, "target"),
			ID:     row.field(header, "id"),
			Name:   row.field(header, "name"),
			Type:   row.field(header, "type"),
		}
		if e.Source == "" || e.Target == "" {
			doc.Skipped = append(doc.Skipped,
				fmt.Sprintf("edge row %d: missing mandatory field (source, target)", row.num))
			continue
		}
		if e.Type == "" {
			e.Type = DefaultEdgeType
		}
		doc.Edges = append(doc.Edges, e)
	}
}

// tabularRow is one data row with its 1-based position within its
// section, used for diagnostics.
type tabularRow struct {
	num    int
	fields []string
}

// field looks up a named column, returning "" for absent columns and
// short rows.
func (r tabularRow) field(header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

// splitSection separates a section's header row from its data rows.
// Blank lines are ignored. Returns a nil header when the section is
// empty, which makes every lookup resolve to "".
func splitSection(lines []string) (map[string]int, []tabularRow) {
	var header map[string]int
	var rows []tabularRow
	num := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		if header == nil {
			header = make(map[string]int, len(fields))
			for i, name := range fields {
				header[name] = i
			}
			continue
		}
		num++
		rows = append(rows, tabularRow{num: num, fields: fields})
	}
	return header, rows
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Ensure Tabular implements Parser.
var _ Parser = (*Tabular)(nil)
