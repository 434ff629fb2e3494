package config

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Input       InputConfig       `yaml:"input"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Exclusions  ExclusionsConfig  `yaml:"exclusions"`
	Severity    SeverityConfig    `yaml:"severity"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// InputConfig contains review-document discovery settings
type InputConfig struct {
	Dir      string `yaml:"dir"`
	MaxFiles int    `yaml:"max_files"` // 0 = no limit
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	MaxParallelFiles int  `yaml:"max_parallel_files"`
	FailFast         bool `yaml:"fail_fast"`
}

// ExclusionsConfig contains exclusion patterns for document discovery
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
}

// SeverityConfig contains severity filtering settings
type SeverityConfig struct {
	// MinSeverity drops items rated below this value (1-5) before scoring.
	// 1 keeps everything.
	MinSeverity int `yaml:"min_severity"`
}

// AnalysisConfig contains aggregation settings
type AnalysisConfig struct {
	TopN int `yaml:"top_n"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats   []string `yaml:"formats"`
	OutputDir string   `yaml:"output_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
