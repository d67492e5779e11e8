package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/flowdeck/flowdeck/pkg/cache"
	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/model"
)

const markupInput = `<diagram>
	<node id="a" label="A" x="0" y="0" type="rectangle"/>
	<node id="b" label="B" x="5" y="5" type="circle"/>
	<edge source="a" target="b" type="dashed"/>
</diagram>`

func TestImport(t *testing.T) {
	r := NewRunner(nil, nil)

	res, err := r.Import(context.Background(), &diagram.Markup{}, []byte(markupInput))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if res.CacheHit {
		t.Error("first import should not hit the cache")
	}
	if len(res.Diagram.Nodes) != 2 || len(res.Diagram.Edges) != 1 {
		t.Fatalf("diagram = %d nodes/%d edges, want 2/1", len(res.Diagram.Nodes), len(res.Diagram.Edges))
	}
	if res.Diagram.Nodes[0].Height != model.RectangleHeight {
		t.Errorf("rectangle height = %v, want %v", res.Diagram.Nodes[0].Height, model.RectangleHeight)
	}
}

func TestImportFatalParse(t *testing.T) {
	r := NewRunner(nil, nil)

	_, err := r.Import(context.Background(), &diagram.Tabular{}, []byte("id,label\na,A\n"))
	if !errors.Is(err, diagram.ErrMissingSeparator) {
		t.Fatalf("Import() error = %v, want ErrMissingSeparator", err)
	}
}

func TestImportCacheRoundTrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	ctx := context.Background()

	first, err := r.Import(ctx, &diagram.Markup{}, []byte(markupInput))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if first.CacheHit {
		t.Error("first import should miss")
	}

	second, err := r.Import(ctx, &diagram.Markup{}, []byte(markupInput))
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if !second.CacheHit {
		t.Error("second import should hit the cache")
	}
	if len(second.Diagram.Nodes) != len(first.Diagram.Nodes) {
		t.Errorf("cached diagram differs: %d vs %d nodes", len(second.Diagram.Nodes), len(first.Diagram.Nodes))
	}
}

func TestImportCachePreservesSkipped(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	ctx := context.Background()

	input := []byte("id,label,x,y,type\na,,1,2,circle\nb,B,3,4,circle\n---\nsource,target\n")

	first, err := r.Import(ctx, &diagram.Tabular{}, input)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(first.Skipped) != 1 {
		t.Fatalf("skipped = %v, want 1 entry", first.Skipped)
	}

	second, err := r.Import(ctx, &diagram.Tabular{}, input)
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if !second.CacheHit || len(second.Skipped) != 1 {
		t.Errorf("cached result = hit:%v skipped:%v, want hit with 1 diagnostic", second.CacheHit, second.Skipped)
	}
}
