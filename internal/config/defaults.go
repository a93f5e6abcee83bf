package config

// DefaultMaxUploadBytes caps uploaded documents at 50 MiB.
const DefaultMaxUploadBytes = 50 << 20

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Analysis.MaxUploadBytes == 0 {
		cfg.Analysis.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.NLP.TimeoutSeconds == 0 {
		cfg.NLP.TimeoutSeconds = 10
	}
	if cfg.Summarizer.Provider == "" {
		cfg.Summarizer.Provider = "gemini"
	}
	if cfg.Summarizer.Model == "" {
		cfg.Summarizer.Model = "gemini-1.5-flash"
	}
	if cfg.Summarizer.APIKeyEnv == "" {
		cfg.Summarizer.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Summarizer.MaxLength == 0 {
		cfg.Summarizer.MaxLength = 150
	}
	if cfg.Summarizer.MinLength == 0 {
		cfg.Summarizer.MinLength = 50
	}
	if cfg.Summarizer.MaxOutputTokens == 0 {
		cfg.Summarizer.MaxOutputTokens = 512
	}
	if cfg.Summarizer.Sentences == 0 {
		cfg.Summarizer.Sentences = 3
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".txt", ".md", ".pdf", ".docx", ".odt", ".rtf", ".xlsx"}
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
