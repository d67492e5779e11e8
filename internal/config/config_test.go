package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "flowdeck.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Errorf("listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.Cache.Disabled || cfg.Cache.Redis != "" {
		t.Errorf("cache config = %+v, want zero defaults", cfg.Cache)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowdeck.toml")
	content := `
listen = ":9090"

[cache]
redis = "localhost:6379"
dir = "/tmp/deckcache"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("listen = %q, want :9090", cfg.Listen)
	}
	if cfg.Cache.Redis != "localhost:6379" {
		t.Errorf("redis = %q", cfg.Cache.Redis)
	}
	if dir, err := cfg.CacheDir(); err != nil || dir != "/tmp/deckcache" {
		t.Errorf("CacheDir() = %q, %v", dir, err)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowdeck.toml")
	if err := os.WriteFile(path, []byte("listen = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg")
	dir, err := Default().CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error = %v", err)
	}
	if dir != filepath.Join("/xdg", "flowdeck") {
		t.Errorf("CacheDir() = %q", dir)
	}
}
