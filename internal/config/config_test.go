package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv удаляет переменную на время теста; t.Setenv восстановит исходное значение
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env файла
	unsetEnv(t,
		"HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT", "STORAGE_BACKEND", "STORAGE_DIR", "STORAGE_KEY_PREFIX",
		"SIMULATION_ENABLED", "SIMULATION_PERIOD", "SIMULATION_PROBABILITY",
		"SIMULATION_BASE_LAT", "SIMULATION_BASE_LON", "SIMULATION_JITTER", "NOTIFICATION_LIFETIME",
	)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, StorageFile, cfg.StorageBackend)
	assert.Equal(t, "data", cfg.StorageDir)
	assert.Equal(t, "crc_", cfg.StorageKeyPrefix)
	assert.True(t, cfg.SimulationEnabled)
	assert.Equal(t, 15*time.Second, cfg.SimulationPeriod)
	assert.Equal(t, 0.15, cfg.SimulationProbability)
	assert.Equal(t, 40.7, cfg.SimulationBaseLat)
	assert.Equal(t, -74.0, cfg.SimulationBaseLon)
	assert.Equal(t, 0.05, cfg.SimulationJitter)
	assert.Equal(t, 3500*time.Millisecond, cfg.NotificationLifetime)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("SIMULATION_PERIOD", "2s")
	t.Setenv("SIMULATION_PROBABILITY", "1")
	t.Setenv("SIMULATION_BASE_LAT", "51.5")
	t.Setenv("SIMULATION_ENABLED", "false")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.StorageBackend)
	assert.Equal(t, 2*time.Second, cfg.SimulationPeriod)
	assert.Equal(t, 1.0, cfg.SimulationProbability)
	assert.Equal(t, 51.5, cfg.SimulationBaseLat)
	assert.False(t, cfg.SimulationEnabled)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"STORAGE_BACKEND": "s3"}},
		{name: "postgres without url", env: map[string]string{"STORAGE_BACKEND": "postgres", "DATABASE_URL": ""}},
		{name: "probability above one", env: map[string]string{"STORAGE_BACKEND": "memory", "SIMULATION_PROBABILITY": "1.5"}},
		{name: "non-positive period", env: map[string]string{"STORAGE_BACKEND": "memory", "SIMULATION_ENABLED": "true", "SIMULATION_PERIOD": "0s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("CRC_TEST_INT", "x")
	t.Setenv("CRC_TEST_FLOAT", "x")
	t.Setenv("CRC_TEST_BOOL", "x")
	t.Setenv("CRC_TEST_DURATION", "x")

	assert.Equal(t, 7, getEnvAsInt("CRC_TEST_INT", 7))
	assert.Equal(t, 0.5, getEnvAsFloat("CRC_TEST_FLOAT", 0.5))
	assert.True(t, getEnvAsBool("CRC_TEST_BOOL", true))
	assert.Equal(t, time.Second, getEnvAsDuration("CRC_TEST_DURATION", time.Second))
}
