package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
nlp:
  endpoint: "http://localhost:5000"
summarizer:
  model: "gemini-1.5-pro"
  sentences: 5
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.NLP.Endpoint != "http://localhost:5000" || cfg.NLP.TimeoutSeconds != 10 {
		t.Errorf("unexpected nlp config: %+v", cfg.NLP)
	}
	if cfg.Summarizer.Model != "gemini-1.5-pro" || cfg.Summarizer.Sentences != 5 || cfg.Summarizer.MaxLength != 150 {
		t.Errorf("unexpected summarizer config: %+v", cfg.Summarizer)
	}
	if cfg.Analysis.PatternsPath != "" {
		t.Errorf("patterns_path should stay empty when unset, got %q", cfg.Analysis.PatternsPath)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
analysis:
  patterns_path: "./patterns.yaml"
watch:
  directories: ["./dev/sample"]
  output_dir: "./reports"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "patterns.yaml"); cfg.Analysis.PatternsPath != want {
		t.Errorf("patterns_path = %s, want %s", cfg.Analysis.PatternsPath, want)
	}
	if want := filepath.Join(dir, "reports"); cfg.Watch.OutputDir != want {
		t.Errorf("output_dir = %s, want %s", cfg.Watch.OutputDir, want)
	}
	if len(cfg.Watch.Directories) != 1 {
		t.Fatalf("watch directories: got %d", len(cfg.Watch.Directories))
	}
	if want := filepath.Join(dir, "dev", "sample"); cfg.Watch.Directories[0] != want {
		t.Errorf("watch directory = %s, want %s", cfg.Watch.Directories[0], want)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Analysis.MaxUploadBytes != 50*1024*1024 {
		t.Errorf("default max upload: got %d", cfg.Analysis.MaxUploadBytes)
	}
	if cfg.Summarizer.APIKeyEnv != "GEMINI_API_KEY" || cfg.Summarizer.MinLength != 50 {
		t.Errorf("summarizer defaults: %+v", cfg.Summarizer)
	}
	if cfg.Embedding.Enabled {
		t.Error("embedding should be disabled by default")
	}
	if len(cfg.Watch.Extensions) != 7 || cfg.Watch.Extensions[0] != ".txt" {
		t.Errorf("watch extensions: got %v", cfg.Watch.Extensions)
	}
	if cfg.Watch.ResyncSchedule != "" {
		t.Errorf("resync schedule should be empty by default, got %q", cfg.Watch.ResyncSchedule)
	}
}

func TestApplyDefaults_WatchRecursiveWhenDirectoriesSet(t *testing.T) {
	cfg := &Config{Watch: WatchConfig{Directories: []string{"/tmp/docs"}}}
	ApplyDefaults(cfg)
	if cfg.Watch.Recursive == nil || !*cfg.Watch.Recursive {
		t.Error("recursive should default to true when directories are set")
	}
}

func TestWatchConfig_RecursiveOrDefault(t *testing.T) {
	t.Run("nil_returns_true", func(t *testing.T) {
		w := &WatchConfig{}
		if got := w.RecursiveOrDefault(); !got {
			t.Errorf("RecursiveOrDefault() = %v, want true", got)
		}
	})
	t.Run("false_returns_false", func(t *testing.T) {
		f := false
		w := &WatchConfig{Recursive: &f}
		if got := w.RecursiveOrDefault(); got {
			t.Errorf("RecursiveOrDefault() = %v, want false", got)
		}
	})
}

func TestSummarizerConfig_APIKey(t *testing.T) {
	t.Setenv("CLAUSEWISE_TEST_KEY", "secret")
	s := SummarizerConfig{APIKeyEnv: "CLAUSEWISE_TEST_KEY"}
	if s.APIKey() != "secret" {
		t.Errorf("APIKey() = %q", s.APIKey())
	}
}

func TestResolve_explicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, used, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if used != path {
		t.Errorf("resolved path = %q, want %q", used, path)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := &Config{
		Server: ServerConfig{Host: "localhost", Port: 9090},
		Watch:  WatchConfig{ResyncSchedule: "@every 1h"},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 || loaded.Watch.ResyncSchedule != "@every 1h" {
		t.Errorf("loaded: %+v", loaded)
	}
}
