package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "movie-catalog", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "memory", config.Storage.Driver)
	assert.Equal(t, "unit-test-secret", config.JWT.Secret)
	assert.Equal(t, 24, config.JWT.ExpiryHours)
}
