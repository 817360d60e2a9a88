package config

import (
	"fmt"
	"os"

	"token-radar/src/helpers"
	"token-radar/src/models"
	"token-radar/src/utils"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, helpers.NewConfigurationError(fmt.Sprintf("failed to read config file '%s'", configPath), err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, helpers.NewConfigurationError("failed to parse config from YAML", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, helpers.NewConfigurationError("config validation failed", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills in the reference behavior for anything the file omits:
// 1s tick, 1.2s initial load, ±1% price jitter, ±2.5% volume jitter.
func (c *Config) applyDefaults() {
	if c.Feed.UniverseSize == 0 {
		c.Feed.UniverseSize = 24
	}
	if c.Feed.TickIntervalMs == 0 {
		c.Feed.TickIntervalMs = 1000
	}
	if c.Feed.InitialLoadDelayMs == 0 {
		c.Feed.InitialLoadDelayMs = 1200
	}
	if c.Feed.PriceJitter == 0 {
		c.Feed.PriceJitter = 0.01
	}
	if c.Feed.VolumeJitter == 0 {
		c.Feed.VolumeJitter = 0.025
	}
	if c.Feed.HistoryPoints == 0 {
		// Size the per-token buffers to keep a five-minute window at the
		// configured tick rate.
		c.Feed.HistoryPoints = utils.HistoryCapacityFor(c.Feed.TickIntervalMs, utils.DefaultRetentionSeconds)
	}
	if c.View.DefaultSortKey == "" {
		c.View.DefaultSortKey = string(models.SortByMarketCap)
	}
	if c.View.DefaultDirection == "" {
		c.View.DefaultDirection = string(models.SortDesc)
	}
	if c.View.DefaultStage == "" {
		c.View.DefaultStage = string(models.StageAll)
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return helpers.NewValidationError("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return helpers.NewValidationError("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return helpers.NewValidationError(fmt.Sprintf("invalid server port number: %d (must be between 1025 and 65535)", c.Port))
	}

	// Validate Feed configuration
	if c.Feed.UniverseSize < 0 {
		return helpers.NewValidationError("universe size cannot be negative")
	}
	if c.Feed.TickIntervalMs <= 0 {
		return helpers.NewValidationError("tick interval must be greater than 0")
	}
	if c.Feed.InitialLoadDelayMs < 0 {
		return helpers.NewValidationError("initial load delay cannot be negative")
	}
	if c.Feed.PriceJitter <= 0 || c.Feed.PriceJitter >= 1 {
		return helpers.NewValidationError(fmt.Sprintf("price jitter must be a fraction in (0, 1), got %f", c.Feed.PriceJitter))
	}
	if c.Feed.VolumeJitter <= 0 || c.Feed.VolumeJitter >= 1 {
		return helpers.NewValidationError(fmt.Sprintf("volume jitter must be a fraction in (0, 1), got %f", c.Feed.VolumeJitter))
	}
	if c.Feed.HistoryPoints <= 0 {
		return helpers.NewValidationError("history points must be greater than 0")
	}

	// Validate View defaults
	if err := validateSortKey(c.View.DefaultSortKey); err != nil {
		return err
	}
	dir := models.MSortDirection(c.View.DefaultDirection)
	if dir != models.SortAsc && dir != models.SortDesc {
		return helpers.NewValidationError(fmt.Sprintf("invalid default sort direction: %s", c.View.DefaultDirection))
	}
	if err := validateStage(c.View.DefaultStage); err != nil {
		return err
	}

	return nil
}

// -----------------------------------------------------------------------------

func validateSortKey(key string) error {
	for _, k := range models.SortKeys {
		if string(k) == key {
			return nil
		}
	}
	return helpers.NewValidationError(fmt.Sprintf("invalid default sort key: %s", key))
}

func validateStage(stage string) error {
	if models.MStage(stage) == models.StageAll {
		return nil
	}
	for _, s := range models.Stages {
		if string(s) == stage {
			return nil
		}
	}
	return helpers.NewValidationError(fmt.Sprintf("invalid default stage: %s", stage))
}

// -----------------------------------------------------------------------------

// DefaultView builds the MViewState every new client starts with.
func (c *Config) DefaultView() models.MViewState {
	return models.MViewState{
		Sort: models.MSortSpec{
			Key:       models.MSortKey(c.View.DefaultSortKey),
			Direction: models.MSortDirection(c.View.DefaultDirection),
		},
		Stage: models.MStage(c.View.DefaultStage),
	}
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
