package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("JADWAL_CONFIG_PATH", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Source() != DefaultSource {
		t.Fatalf("expected default source, got %q", cfg.Source())
	}
	if cfg.Watch() {
		t.Fatalf("watch should default to false")
	}
	if cfg.ServeAddr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected serve addr %q", cfg.ServeAddr())
	}
	if dir := cfg.CacheDir(); dir != "" {
		t.Fatalf("cache should be off by default, got %q", dir)
	}
}

func TestLoadConfigCacheDirExpandsHome(t *testing.T) {
	viper.Reset()
	t.Setenv("JADWAL_CONFIG_PATH", t.TempDir())
	t.Setenv("JADWAL_CACHE_DIR", SuggestedCacheDir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	dir := cfg.CacheDir()
	if strings.HasPrefix(dir, "~") || !strings.HasSuffix(dir, filepath.Join(".cache", "jadwal")) {
		t.Fatalf("expected expanded cache dir, got %q", dir)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	yaml := "source: https://example.sch.id/jadwal.json\nwatch: true\nserve:\n  addr: 0.0.0.0:9000\n"
	if err := os.WriteFile(filepath.Join(dir, ".jadwal.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JADWAL_CONFIG_PATH", dir)
	t.Setenv("JADWAL_SERVE_ADDR", "127.0.0.1:9100")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Source() != "https://example.sch.id/jadwal.json" {
		t.Fatalf("expected source from file, got %q", cfg.Source())
	}
	if !cfg.Watch() {
		t.Fatalf("expected watch from file")
	}
	if cfg.ServeAddr() != "127.0.0.1:9100" {
		t.Fatalf("expected env to override file, got %q", cfg.ServeAddr())
	}
}
