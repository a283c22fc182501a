package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("YELP_API_KEY", "secret")

	cfg := FromEnv()

	assert.Equal(t, "secret", cfg.YelpAPIKey)
	assert.Equal(t, "https://api.yelp.com", cfg.YelpBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 4.0, cfg.RatingThreshold)
	assert.Equal(t, ChartFormatSVG, cfg.ChartFormat)
	assert.False(t, cfg.PostgresEnabled)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("YELP_API_KEY", "secret")
	t.Setenv("RATING_THRESHOLD", "4.5")
	t.Setenv("MAX_RETRIES", "3")
	t.Setenv("CHART_FORMAT", "PNG")
	t.Setenv("POSTGRES_ENABLED", "true")
	t.Setenv("HTTP_TIMEOUT_SEC", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, 4.5, cfg.RatingThreshold)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, ChartFormatPNG, cfg.ChartFormat)
	assert.True(t, cfg.PostgresEnabled)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestValidateCollectsErrors(t *testing.T) {
	t.Setenv("YELP_API_KEY", "")
	t.Setenv("CHART_FORMAT", "gif")

	err := FromEnv().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YELP_API_KEY")
	assert.Contains(t, err.Error(), "CHART_FORMAT")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=disable", cfg.DSN())
}
