package config

// Default values applied when the config file omits a setting.
const (
	DefaultLogLevel     = "INFO"
	DefaultLogFormat    = "text"
	DefaultLogOutput    = "stderr"
	DefaultOutputFormat = "table"
)

// ApplyDefaults fills in default values for any missing configuration.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyOutputDefaults(&cfg.Output)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = DefaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = DefaultLogFormat
	}
	if cfg.Output == "" {
		cfg.Output = DefaultLogOutput
	}
}

func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = DefaultOutputFormat
	}
}

// GetDefaultConfig returns a configuration populated entirely with defaults.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
