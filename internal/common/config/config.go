// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig               `mapstructure:"app"`
	Analysis   AnalysisConfig          `mapstructure:"analysis"`
	Keywords   KeywordsConfig          `mapstructure:"keywords"`
	Collection CollectionConfig        `mapstructure:"collection"`
	Sources    map[string]SourceConfig `mapstructure:"sources"`
	Store      StoreConfig             `mapstructure:"store"`
	Cache      CacheConfig             `mapstructure:"cache"`
	Export     ExportConfig            `mapstructure:"export"`
	Metrics    MetricsConfig           `mapstructure:"metrics"`
	Logging    LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// AnalysisConfig holds the classification tuning knobs.
type AnalysisConfig struct {
	Threshold      float64 `mapstructure:"threshold"`       // minimum score to leave "other"
	ScoringMode    string  `mapstructure:"scoring_mode"`    // token-overlap | phrase-coverage
	ComparisonMode string  `mapstructure:"comparison_mode"` // dominance | threshold-only
	Parallelism    int     `mapstructure:"parallelism"`     // concurrent classification workers
}

// KeywordsConfig overrides the built-in keyword sets when provided.
type KeywordsConfig struct {
	Medical      []string `mapstructure:"medical"`
	Patent       []string `mapstructure:"patent"`
	RegistryPath string   `mapstructure:"registry_path"` // optional JSON keyword registry
}

// CollectionConfig holds settings shared by all data sources.
type CollectionConfig struct {
	TradeDirectory struct {
		MedicalSearches []string `mapstructure:"medical_searches"`
		PatentSearches  []string `mapstructure:"patent_searches"`
		ResultsPerTerm  int      `mapstructure:"results_per_term"`
	} `mapstructure:"trade_directory"`
}

// SourceConfig holds the core settings applicable to every data source.
type SourceConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	Timeout    int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries int  `mapstructure:"max_retries"` // For error handling
}

// StoreConfig holds settings for the embedded result store.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// GetDSN returns the SQLite connection string
func (s StoreConfig) GetDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", s.Path)
}

// CacheConfig holds settings for the optional classification cache.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"` // milliseconds
}

// ExportConfig holds settings for report generation.
type ExportConfig struct {
	OutputDir string   `mapstructure:"output_dir"`
	Formats   []string `mapstructure:"formats"` // json | excel | slides | summary | charts
}

// MetricsConfig holds settings for the health/metrics listener.
type MetricsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ListenAddress string `mapstructure:"listen_address"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
