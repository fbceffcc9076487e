package config

const (
	defaultArchiveRoot       = "~/documents/archive"
	defaultLogDir            = "~/.local/share/docket/logs"
	defaultCacheDir          = "~/.local/share/docket/cache"
	defaultNamingStyle       = "compact"
	defaultMaxHierarchyDepth = 5
	defaultMaxPathLength     = 200
	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "google/gemini-3-flash-preview"
	defaultLLMReferer        = "https://github.com/docket/docket"
	defaultLLMTitle          = "Docket Document Classifier"
	defaultLLMTimeoutSeconds = 60
	defaultExtractMaxBytes   = 65536
	defaultOutputFormat      = "json"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ArchiveRoot: defaultArchiveRoot,
			LogDir:      defaultLogDir,
			CacheDir:    defaultCacheDir,
		},
		Naming: Naming{
			Style:             defaultNamingStyle,
			MaxHierarchyDepth: defaultMaxHierarchyDepth,
			MaxPathLength:     defaultMaxPathLength,
		},
		Taxonomy: Taxonomy{
			Strict: false,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Extraction: Extraction{
			MaxBytes: defaultExtractMaxBytes,
		},
		Cache: Cache{
			Enabled: true,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
