package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultMaxDOF, cfg.MaxDOF)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("KINEMATICS_ADDR", "127.0.0.1:9090")
	t.Setenv("KINEMATICS_REQUEST_TIMEOUT", "2s")
	t.Setenv("KINEMATICS_LOG_DEV", "true")
	t.Setenv("KINEMATICS_MAX_DOF", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.LogDev)
	assert.Equal(t, 10, cfg.MaxDOF)
}

func TestLoadRejectsOverCeiling(t *testing.T) {
	t.Setenv("KINEMATICS_MAX_DOF", "1000")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("KINEMATICS_REQUEST_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
}
