package models

// MConfig Structure
type MConfig struct {
	Name     string      `yaml:"name"`
	Host     string      `yaml:"host"`
	Port     int         `yaml:"port"`
	LogLevel string      `yaml:"log_level"`
	Feed     MFeedConfig `yaml:"feed"`
	View     MViewConfig `yaml:"view"`
}

// MFeedConfig controls the mock feed generator.
type MFeedConfig struct {
	UniverseSize       int     `yaml:"universe_size"`
	TickIntervalMs     int     `yaml:"tick_interval_ms"`
	InitialLoadDelayMs int     `yaml:"initial_load_delay_ms"`
	PriceJitter        float64 `yaml:"price_jitter"`  // fraction, 0.01 = ±1%
	VolumeJitter       float64 `yaml:"volume_jitter"` // fraction, 0.025 = ±2.5%
	Seed               int64   `yaml:"seed"`          // 0 = time-based
	HistoryPoints      int     `yaml:"history_points"`
	FailOnLoad         bool    `yaml:"fail_on_load"` // simulate a data-load failure
}

// MViewConfig holds the defaults every new client view starts with.
type MViewConfig struct {
	DefaultSortKey   string `yaml:"default_sort_key"`
	DefaultDirection string `yaml:"default_direction"`
	DefaultStage     string `yaml:"default_stage"`
}
