package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Import hooks
	i := NoopImportHooks{}
	i.OnImportStart(ctx, "markup")
	i.OnImportComplete(ctx, "markup", 10, 4, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "diagram")
	c.OnCacheMiss(ctx, "diagram")
	c.OnCacheSet(ctx, "document", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "example.com", "/deck.xml")
	h.OnResponse(ctx, "GET", "example.com", "/deck.xml", 200, time.Second)
	h.OnError(ctx, "GET", "example.com", "/deck.xml", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Import().(NoopImportHooks); !ok {
		t.Error("Import() should return NoopImportHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customImport := &testImportHooks{}
	SetImportHooks(customImport)
	if Import() != customImport {
		t.Error("SetImportHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Import().(NoopImportHooks); !ok {
		t.Error("Reset() should restore NoopImportHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testImportHooks{}
	SetImportHooks(custom)

	// Setting nil should be ignored
	SetImportHooks(nil)

	if Import() != custom {
		t.Error("SetImportHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testImportHooks struct{ NoopImportHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
