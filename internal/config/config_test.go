package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := fromViper(newTestViper(map[string]any{"JWT_EXPIRES_IN": "2h"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromViper_RequiresJWTExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	_, err := fromViper(newTestViper(map[string]any{"JWT_SECRET": "secret"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRES_IN")
}

func TestFromViper_RejectsInvalidExpiry(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"JWT_SECRET": "secret", "JWT_EXPIRES_IN": "forever"}))
	require.Error(t, err)
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"JWT_SECRET": "secret", "JWT_EXPIRES_IN": "2h"}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "./static/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "none", cfg.Events.Driver)
	assert.Equal(t, time.Minute, cfg.RateLimit.LoginWindow)
	assert.Equal(t, 10, cfg.RateLimit.LoginMax)
	assert.True(t, cfg.SeedEnabled)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("STORAGE_DRIVER", "MINIO")
	t.Setenv("MINIO_BUCKET", "products")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ExpiresIn)
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, "products", cfg.Storage.Minio.Bucket)
}
