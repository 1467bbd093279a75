package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/content-optimizer/backend/analyzer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, analyzer.DefaultConfig()) {
		t.Error("Load(\"\") should return the engine defaults")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, analyzer.DefaultConfig()) {
		t.Error("Missing config file should fall back to defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
weights:
  readability: 0.5
  keywords: 0.25
  structure: 0.25
thresholds:
  readability: 70
longParagraphWords: 120
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Weights.Readability != 0.5 || cfg.Weights.Keywords != 0.25 {
		t.Errorf("Weights not overridden: %+v", cfg.Weights)
	}
	if cfg.Thresholds.Readability != 70 {
		t.Errorf("Readability threshold = %.0f, want 70", cfg.Thresholds.Readability)
	}
	if cfg.LongParagraphWords != 120 {
		t.Errorf("LongParagraphWords = %d, want 120", cfg.LongParagraphWords)
	}

	// Fields the file does not mention keep their defaults.
	if cfg.Thresholds.Keywords != 50 {
		t.Errorf("Keywords threshold = %.0f, want default 50", cfg.Thresholds.Keywords)
	}
	if cfg.Density.StuffingLimit != 3.0 {
		t.Errorf("StuffingLimit = %.1f, want default 3.0", cfg.Density.StuffingLimit)
	}
	if len(cfg.CTAPhrases) == 0 {
		t.Error("CTA phrase list should keep its default entries")
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	path := writeConfig(t, `
weights:
  readability: 0.5
  keywords: 0.5
  structure: 0.5
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for weights that do not sum to 1.0")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "weights: [not, a, mapping")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
