package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"token-radar/src/helpers"
	"token-radar/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const validYAML = `
name: "token-radar"
host: "127.0.0.1"
port: 8765
log_level: "INFO"
feed:
  universe_size: 10
  tick_interval_ms: 500
  initial_load_delay_ms: 100
  price_jitter: 0.01
  volume_jitter: 0.025
  history_points: 50
view:
  default_sort_key: "market_cap"
  default_direction: "desc"
  default_stage: "all"
`

// -----------------------------------------------------------------------------

func TestNewConfig_Valid(t *testing.T) {
	conf, err := NewConfig(writeConfig(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, "token-radar", conf.Name)
	assert.Equal(t, 10, conf.Feed.UniverseSize)
	assert.Equal(t, 500, conf.Feed.TickIntervalMs)
}

func TestNewConfig_AppliesReferenceDefaults(t *testing.T) {
	minimal := `
name: "token-radar"
host: "127.0.0.1"
port: 8765
`
	conf, err := NewConfig(writeConfig(t, minimal))

	require.NoError(t, err)
	// Reference behavior: 1s tick, 1.2s load delay, ±1% / ±2.5% jitter.
	assert.Equal(t, 1000, conf.Feed.TickIntervalMs)
	assert.Equal(t, 1200, conf.Feed.InitialLoadDelayMs)
	assert.Equal(t, 0.01, conf.Feed.PriceJitter)
	assert.Equal(t, 0.025, conf.Feed.VolumeJitter)
	assert.Equal(t, string(models.SortByMarketCap), conf.View.DefaultSortKey)
	assert.Equal(t, string(models.SortDesc), conf.View.DefaultDirection)
	assert.Equal(t, string(models.StageAll), conf.View.DefaultStage)
	// 1s tick and a five-minute retention window give 300 points.
	assert.Equal(t, 300, conf.Feed.HistoryPoints)
}

func TestNewConfig_HistoryPointsTrackTickRate(t *testing.T) {
	fastTick := `
name: "token-radar"
host: "127.0.0.1"
port: 8765
feed:
  tick_interval_ms: 500
`
	conf, err := NewConfig(writeConfig(t, fastTick))

	require.NoError(t, err)
	// Half the tick interval doubles the points kept for the same window.
	assert.Equal(t, 600, conf.Feed.HistoryPoints)
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewConfig_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty name":     `{host: "127.0.0.1", port: 8765}`,
		"bad port":       `{name: "x", host: "127.0.0.1", port: 80}`,
		"bad sort key":   `{name: "x", host: "127.0.0.1", port: 8765, view: {default_sort_key: "bogus"}}`,
		"bad direction":  `{name: "x", host: "127.0.0.1", port: 8765, view: {default_direction: "sideways"}}`,
		"bad stage":      `{name: "x", host: "127.0.0.1", port: 8765, view: {default_stage: "larval"}}`,
		"bad jitter":     `{name: "x", host: "127.0.0.1", port: 8765, feed: {price_jitter: 2.0}}`,
		"negative delay": `{name: "x", host: "127.0.0.1", port: 8765, feed: {initial_load_delay_ms: -5}}`,
	}

	for label, yaml := range cases {
		_, err := NewConfig(writeConfig(t, yaml))
		require.Errorf(t, err, "case %q should fail validation", label)

		var verr *helpers.ValidationError
		assert.Truef(t, errors.As(err, &verr), "case %q should carry a ValidationError", label)
	}
}

// -----------------------------------------------------------------------------

func TestDefaultView(t *testing.T) {
	conf, err := NewConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	view := conf.DefaultView()
	assert.Equal(t, models.SortByMarketCap, view.Sort.Key)
	assert.Equal(t, models.SortDesc, view.Sort.Direction)
	assert.Equal(t, models.StageAll, view.Stage)
}

func TestSaveRoundTrip(t *testing.T) {
	conf, err := NewConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, conf.Save(out))

	reloaded, err := NewConfig(out)
	require.NoError(t, err)
	assert.Equal(t, conf.Feed, reloaded.Feed)
	assert.Equal(t, conf.View, reloaded.View)
}
