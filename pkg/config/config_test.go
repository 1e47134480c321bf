package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.AnalysisPoints)
	assert.Equal(t, 10800, cfg.TimeThresholdSeconds)
	assert.Equal(t, "干清", cfg.ChangeoverType)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Contains(t, cfg.BatchLocations, "CP Line 9")
	assert.Len(t, cfg.BatchLocations, 6)
	// The activity export spells two of the line identifiers differently.
	assert.Contains(t, cfg.ActivityAreas, "CPLine 9")
	assert.Contains(t, cfg.ActivityAreas, "CP Line08")
	assert.Len(t, cfg.ActivityAreas, 6)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SPC_ANALYSIS_POINTS", "50")
	t.Setenv("SPC_TIME_THRESHOLD_SECONDS", "7200")
	t.Setenv("SPC_LOG_LEVEL", "debug")
	t.Setenv("SPC_BATCH_LOCATIONS", "CP Line 9,CP Line 10")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.AnalysisPoints)
	assert.Equal(t, 7200, cfg.TimeThresholdSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"CP Line 9", "CP Line 10"}, cfg.BatchLocations)
}

func TestLoadRejectsAnalysisPointsOutOfRange(t *testing.T) {
	t.Setenv("SPC_ANALYSIS_POINTS", "9")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SPC_ANALYSIS_POINTS", "501")

	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsThresholdOutOfRange(t *testing.T) {
	t.Setenv("SPC_TIME_THRESHOLD_SECONDS", "3599")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SPC_TIME_THRESHOLD_SECONDS", "36001")

	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("SPC_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateBoundaryValues(t *testing.T) {
	cfg := &Config{
		AnalysisPoints:       10,
		TimeThresholdSeconds: 36000,
		ChangeoverType:       "干清",
		BatchLocations:       []string{"CP Line 9"},
		ActivityAreas:        []string{"CPLine 9"},
		HTTPAddr:             ":0",
		LogLevel:             "warn",
		LogFormat:            "console",
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsEmptyAllowLists(t *testing.T) {
	cfg := &Config{
		AnalysisPoints:       100,
		TimeThresholdSeconds: 10800,
		ChangeoverType:       "干清",
		BatchLocations:       []string{},
		ActivityAreas:        []string{"CPLine 9"},
		HTTPAddr:             ":8080",
		LogLevel:             "info",
		LogFormat:            "json",
	}

	assert.Error(t, cfg.Validate())
}
