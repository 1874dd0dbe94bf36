package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Agents.Defaults.Model != def.Agents.Defaults.Model {
		t.Errorf("expected default model %q, got %q", def.Agents.Defaults.Model, cfg.Agents.Defaults.Model)
	}
	if cfg.Providers.Name != "bedrock" {
		t.Errorf("expected bedrock default provider, got %q", cfg.Providers.Name)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"providers": map[string]any{
			"name": "anthropic",
			"anthropic": map[string]any{
				"apiKey": "sk-test",
			},
		},
		"agents": map[string]any{
			"defaults": map[string]any{
				"model":     "claude-sonnet-4-5",
				"maxTokens": 4096,
			},
		},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Providers.Name != "anthropic" {
		t.Errorf("expected provider anthropic, got %q", cfg.Providers.Name)
	}
	if cfg.Agents.Defaults.Model != "claude-sonnet-4-5" {
		t.Errorf("unexpected model: %q", cfg.Agents.Defaults.Model)
	}
	if cfg.Agents.Defaults.MaxTokens != 4096 {
		t.Errorf("unexpected maxTokens: %d", cfg.Agents.Defaults.MaxTokens)
	}
	// Values not in the file keep their defaults.
	if cfg.Agents.Defaults.MaxToolIter != 20 {
		t.Errorf("expected default maxToolIterations 20, got %d", cfg.Agents.Defaults.MaxToolIter)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if cfg.Agents.Defaults.Model != DefaultConfig().Agents.Defaults.Model {
		t.Error("expected default config on parse failure")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Market.Manifest = "/data/datasets.yaml"
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Market.Manifest != "/data/datasets.yaml" {
		t.Errorf("manifest lost in round trip: %q", loaded.Market.Manifest)
	}
}
