package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/battkit/cellplate/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config := model.DefaultAppConfig()
	config.ExportDatasheet = true
	config.ExportBOM = true
	config.OutputDir = "/tmp/plates"
	config.DefaultHeight = 12

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig returned error: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig returned error: %v", err)
	}
	if diff := cmp.Diff(config, loaded); diff != "" {
		t.Errorf("config did not round-trip (-saved +loaded):\n%s", diff)
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if diff := cmp.Diff(model.DefaultAppConfig(), loaded); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".cellplate" {
		t.Errorf("expected .cellplate directory, got %s", path)
	}
}
