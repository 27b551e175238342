package config_test

import (
	"testing"

	"catalog/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "catalog.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.LegacyEnvelopes)
	assert.False(t, cfg.SeedData)
}

func TestFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=127.0.0.1 user=postgres dbname=catalog sslmode=disable")
	t.Setenv("LEGACY_ENVELOPES", "true")

	v := viper.New()
	config.SetDefaults(v)
	v.AutomaticEnv()

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=catalog")
	assert.True(t, cfg.LegacyEnvelopes)
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DRIVER", "oracle")

	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestFromViper_RequiresDSN(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DSN", "")

	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "DATABASE_DSN is required")
}
