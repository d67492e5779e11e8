// Package diagram parses external diagram documents into intermediate
// record sets.
//
// Two encodings are supported: an XML markup document and a two-section
// tabular document. Each parser produces the same loosely-typed
// [RawNode] and [RawEdge] records; validation and defaulting happen
// later in pkg/model. Parsers are selected by declared kind or file
// extension via [Detect].
package diagram

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Document source kinds.
const (
	KindMarkup  = "markup"
	KindTabular = "tabular"
)

// DefaultEdgeType is assumed when an edge carries no type attribute.
const DefaultEdgeType = "solid"

var (
	// ErrUnsupported is returned by [Detect] when no parser recognizes
	// the input file.
	ErrUnsupported = errors.New("unsupported document kind")
)

// RawNode is an unvalidated node record extracted from one input
// encoding. Every field is text exactly as it appeared in the source;
// optional fields are empty strings when absent.
type RawNode struct {
	ID          string
	Label       string
	X           string
	Y           string
	Type        string
	Fill        string
	Stroke      string
	StrokeWidth string
	Width       string
	Height      string
}

// RawEdge is an unvalidated edge record. Source and Target are the only
// mandatory fields; Type defaults to [DefaultEdgeType] when absent.
type RawEdge struct {
	Source string
	Target string
	ID     string
	Name   string
	Type   string
}

// Document holds the intermediate record sets produced by one parse,
// in source order, together with record-level diagnostics for rows
// that were skipped.
type Document struct {
	Kind    string
	Nodes   []RawNode
	Edges   []RawEdge
	Skipped []string
}

// Parser consumes one raw-text encoding.
type Parser interface {
	// Parse decodes data into a Document. A structural failure of the
	// whole input returns an error; isolated bad records are skipped
	// and reported in Document.Skipped.
	Parse(data []byte) (*Document, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Kind returns the document kind identifier.
	Kind() string
}

// Parsers returns all built-in parsers.
func Parsers() []Parser {
	return []Parser{&Markup{}, &Tabular{}}
}

// Detect finds a parser that supports the given file path.
// Returns ErrUnsupported if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	if len(parsers) == 0 {
		parsers = Parsers()
	}
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// ByKind returns the parser for an explicitly declared kind.
// Returns ErrUnsupported for unknown kinds.
func ByKind(kind string) (Parser, error) {
	for _, p := range Parsers() {
		if p.Kind() == strings.ToLower(kind) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
}
