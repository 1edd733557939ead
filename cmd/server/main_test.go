package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/factory"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_TYPE", "REDIS_URL", "PORT", "HASH_SCHEME", "BCRYPT_COST", "SESSION_DURATION"} {
		t.Setenv(key, "")
	}

	cfg, serverCfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, factory.StorageTypeMemory, cfg.StorageType)
	assert.Equal(t, credential.SchemeSHA256, cfg.HashConfig.Scheme)
	assert.Equal(t, 8080, serverCfg.Port)
	assert.Nil(t, cfg.RedisConfig)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("PORT", "9090")
	t.Setenv("HASH_SCHEME", "bcrypt")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("SESSION_DURATION", "30m")

	cfg, serverCfg, err := loadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisConfig.URL)
	assert.Equal(t, 9090, serverCfg.Port)
	assert.Equal(t, credential.SchemeBcrypt, cfg.HashConfig.Scheme)
	assert.Equal(t, 12, cfg.HashConfig.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.AuthConfig.SessionDuration)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "eighty"},
		{"BCRYPT_COST", "high"},
		{"SESSION_DURATION", "forever"},
		{"SESSION_DURATION", "-1h"},
		{"SESSION_DURATION", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("STORAGE_TYPE", "")
			t.Setenv(tt.key, tt.value)
			_, _, err := loadConfig()
			assert.Error(t, err)
		})
	}

	t.Run("redis without url", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "redis")
		t.Setenv("REDIS_URL", "")
		_, _, err := loadConfig()
		assert.Error(t, err)
	})
}
