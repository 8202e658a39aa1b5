package model

import "time"

// Config holds the complete bureauscan configuration
type Config struct {
	Extract     ExtractConfig     `yaml:"extract" mapstructure:"extract"`
	Detect      DetectConfig      `yaml:"detect" mapstructure:"detect"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// ExtractConfig tunes the record extractor
type ExtractConfig struct {
	// ClientScanLines bounds the header window searched for name/address
	ClientScanLines int `yaml:"client_scan_lines" mapstructure:"client_scan_lines"`

	// Placeholders are column tokens meaning "bureau does not report this"
	Placeholders []string `yaml:"placeholders" mapstructure:"placeholders"`

	// CollectionFragments are creditor-name fragments identifying known
	// collection agencies and debt buyers
	CollectionFragments []string `yaml:"collection_fragments" mapstructure:"collection_fragments"`

	// MaxFallbackCandidates caps accounts synthesized by the fallback path
	MaxFallbackCandidates int `yaml:"max_fallback_candidates" mapstructure:"max_fallback_candidates"`
}

// DetectConfig tunes the discrepancy rules
type DetectConfig struct {
	OpenDateThresholdDays int `yaml:"open_date_threshold_days" mapstructure:"open_date_threshold_days"`
	ActivityThresholdDays int `yaml:"activity_threshold_days" mapstructure:"activity_threshold_days"`
	InquiryMaxAgeDays     int `yaml:"inquiry_max_age_days" mapstructure:"inquiry_max_age_days"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// CacheConfig controls the audit-result cache used in batch mode
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig configures the optional dispute-letter drafter
type LLMConfig struct {
	Provider       string `yaml:"provider" mapstructure:"provider"` // "openai", "ollama", "" (disabled)
	Model          string `yaml:"model" mapstructure:"model"`
	APIKey         string `yaml:"-" mapstructure:"api_key"` // Never written to config files
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	Timeout        int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	StrictEvidence bool   `yaml:"strict_evidence" mapstructure:"strict_evidence"`
	MaxTokens      int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			ClientScanLines: 100,
			Placeholders:    []string{"--", "-", "n/a", "na"},
			CollectionFragments: []string{
				"RECOVERY", "PORTFOLIO", "COLLECT", "RECEIVABLE",
				"MIDLAND", "LVNV", "CAVALRY", "PRA GROUP",
				"ASSET ACCEPTANCE", "CREDIT CORP", "FINANCIAL SVC",
			},
			MaxFallbackCandidates: 20,
		},
		Detect: DetectConfig{
			OpenDateThresholdDays: 30,
			ActivityThresholdDays: 30,
			InquiryMaxAgeDays:     730,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:       "", // Disabled by default
			Model:          "",
			Timeout:        30,
			StrictEvidence: true,
			MaxTokens:      1500,
		},
	}
}
