package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "techdebt-reviewer",
			Version:     "1.0.0",
			Description: "Rule-based technical debt extraction from code review documents",
		},
		Input: InputConfig{
			Dir:      "reviews",
			MaxFiles: 0,
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelFiles: 4,
			FailFast:         false,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/node_modules/**", "**/vendor/**", "**/.git/**",
			},
		},
		Severity: SeverityConfig{
			MinSeverity: 1,
		},
		Analysis: AnalysisConfig{
			TopN: 10,
		},
		Output: OutputConfig{
			Formats:   []string{"markdown"},
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
