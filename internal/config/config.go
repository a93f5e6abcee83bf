// Package config provides configuration loading and structs for the Clausewise server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its config first.
const DefaultPath = "/usr/local/etc/clausewise/config.yaml"

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	NLP        NLPConfig        `yaml:"nlp"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Watch      WatchConfig      `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AnalysisConfig holds pattern and upload settings.
type AnalysisConfig struct {
	// PatternsPath is an optional YAML file overriding the built-in pattern tables.
	PatternsPath   string `yaml:"patterns_path"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// NLPConfig points at an optional entity-tagging service.
type NLPConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SummarizerConfig holds abstractive summarizer settings.
type SummarizerConfig struct {
	Provider        string `yaml:"provider"`
	Model           string `yaml:"model"`
	APIKeyEnv       string `yaml:"api_key_env"`
	MaxLength       int    `yaml:"max_length"`
	MinLength       int    `yaml:"min_length"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	Sentences       int    `yaml:"sentences"`
}

// APIKey reads the key from the configured environment variable.
func (s *SummarizerConfig) APIKey() string {
	return os.Getenv(s.APIKeyEnv)
}

// EmbeddingConfig holds ONNX embedder settings.
type EmbeddingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
}

// WatchConfig holds directory watch settings.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
	Recursive   *bool    `yaml:"recursive"`
	// OutputDir receives a JSON report per processed file when set.
	OutputDir string `yaml:"output_dir"`
	// ResyncSchedule is a cron spec (e.g. "@every 1h") for rescanning watched roots.
	ResyncSchedule string `yaml:"resync_schedule"`
}

// RecursiveOrDefault returns whether to watch recursively; defaults to true when unset.
func (w *WatchConfig) RecursiveOrDefault() bool {
	if w.Recursive != nil {
		return *w.Recursive
	}
	return true
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Analysis.PatternsPath = expandPath(cfg.Analysis.PatternsPath, configDir)
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)
	cfg.Watch.OutputDir = expandPath(cfg.Watch.OutputDir, configDir)
	for i := range cfg.Watch.Directories {
		cfg.Watch.Directories[i] = expandPath(cfg.Watch.Directories[i], configDir)
	}

	return &cfg, nil
}

// Resolve loads path, or DefaultPath falling back to ./config.yaml when path
// is empty. It returns the file actually loaded, or "" with the defaults when
// no file was found.
func Resolve(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	for _, candidate := range []string{DefaultPath, "config.yaml"} {
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			if err != nil {
				return nil, "", err
			}
			return cfg, candidate, nil
		}
	}
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg, "", nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory. Empty paths stay empty.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
