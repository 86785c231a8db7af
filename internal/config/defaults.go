package config

import "github.com/spf13/viper"

const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = FormatDOT
)

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
}

// setDefaults registers every key with viper so that environment overrides
// are seen by Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.no_defaults", false)
}
