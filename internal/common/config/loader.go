// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	// Load .env from multiple possible locations
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like ANALYSIS_THRESHOLD
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	// 1️⃣ LOAD BASE CONFIG
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// 2️⃣ LOAD ENV CONFIG
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	// 3️⃣ EXPAND ENV PLACEHOLDERS
	expandEnvVars(viper.GetViper())

	// 4️⃣ Unmarshal final config
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	// 5️⃣ DIRECT OVERRIDE IF STILL EMPTY
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations
func loadEnvFile() {
	// Try multiple paths (for running from different directories)
	possiblePaths := []string{
		".env",          // Current directory
		"../.env",       // Parent directory
		"../../.env",    // Two levels up (for tests in test/e2e/)
		"../../../.env", // Three levels up
	}

	// Also try to find project root by looking for go.mod
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("✅ Loaded .env from: %s\n", path)
				return
			}
		}
	}

	fmt.Printf("⚠️  .env file not found in any location, using system environment variables\n")
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Walk up directories looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}

// Improved environment variable expansion
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		// Only process string values
		if strVal, ok := val.(string); ok {
			// Check if it contains environment variable pattern
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	// Cache connection
	if cfg.Cache.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Cache.Address = val
		}
	}
	if cfg.Cache.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Cache.Password = val
		}
	}

	// Result store
	if cfg.Store.Path == "" {
		if val := os.Getenv("STORE_PATH"); val != "" {
			cfg.Store.Path = val
		}
	}

	// Report output
	if cfg.Export.OutputDir == "" {
		if val := os.Getenv("EXPORT_OUTPUT_DIR"); val != "" {
			cfg.Export.OutputDir = val
		}
	}

	// Keyword registry
	if cfg.Keywords.RegistryPath == "" {
		if val := os.Getenv("KEYWORD_REGISTRY_PATH"); val != "" {
			cfg.Keywords.RegistryPath = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile() // Load env file first

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Expand environment variables before unmarshal
	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	// Analysis defaults
	if cfg.Analysis.Threshold == 0 {
		cfg.Analysis.Threshold = 0.1
	}
	if cfg.Analysis.ScoringMode == "" {
		cfg.Analysis.ScoringMode = "token-overlap"
	}
	if cfg.Analysis.ComparisonMode == "" {
		cfg.Analysis.ComparisonMode = "dominance"
	}
	if cfg.Analysis.Parallelism == 0 {
		cfg.Analysis.Parallelism = 4
	}

	// Collection defaults
	if cfg.Collection.TradeDirectory.ResultsPerTerm == 0 {
		cfg.Collection.TradeDirectory.ResultsPerTerm = 3
	}

	// Source defaults
	for key, source := range cfg.Sources {
		if source.Timeout == 0 {
			source.Timeout = 10000
		}
		if source.MaxRetries == 0 {
			source.MaxRetries = 3
		}
		cfg.Sources[key] = source
	}

	// Store defaults
	if cfg.Store.Path == "" {
		cfg.Store.Path = "industry_analysis.db"
	}

	// Cache defaults
	if cfg.Cache.Address == "" {
		cfg.Cache.Address = "localhost:6379"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 3600000
	}

	// Export defaults
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "output"
	}
	if len(cfg.Export.Formats) == 0 {
		cfg.Export.Formats = []string{"json", "excel", "slides", "summary", "charts"}
	}

	// Metrics defaults
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = ":8080"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Analysis.Threshold < 0 || cfg.Analysis.Threshold >= 1 {
		return fmt.Errorf("analysis.threshold must be in [0, 1), got %v", cfg.Analysis.Threshold)
	}

	switch cfg.Analysis.ScoringMode {
	case "token-overlap", "phrase-coverage":
	default:
		return fmt.Errorf("analysis.scoring_mode must be token-overlap or phrase-coverage, got %q", cfg.Analysis.ScoringMode)
	}

	switch cfg.Analysis.ComparisonMode {
	case "dominance", "threshold-only":
	default:
		return fmt.Errorf("analysis.comparison_mode must be dominance or threshold-only, got %q", cfg.Analysis.ComparisonMode)
	}

	if cfg.Analysis.Parallelism < 1 {
		return fmt.Errorf("analysis.parallelism must be at least 1, got %d", cfg.Analysis.Parallelism)
	}

	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}

	if cfg.Store.Enabled && cfg.Store.Path == "" {
		return fmt.Errorf("store.path is required when store is enabled")
	}

	if cfg.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	for _, format := range cfg.Export.Formats {
		switch format {
		case "json", "excel", "slides", "summary", "charts":
		default:
			return fmt.Errorf("export.formats contains unsupported format %q", format)
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetSourceConfig retrieves source-specific configuration with fallback to defaults
func GetSourceConfig(cfg *Config, sourceName string) SourceConfig {
	if source, exists := cfg.Sources[sourceName]; exists {
		return source
	}

	// Return default source config if not found
	return SourceConfig{
		Enabled:    true,
		Timeout:    10000,
		MaxRetries: 3,
	}
}

// IsSourceEnabled checks if a specific data source is enabled
func IsSourceEnabled(cfg *Config, sourceName string) bool {
	if source, exists := cfg.Sources[sourceName]; exists {
		return source.Enabled
	}
	return true
}
