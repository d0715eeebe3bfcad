package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Setenv("BREWCALC_SERVER_PORT", "9191")
	t.Setenv("BREWCALC_SERVER_LOG_LEVEL", "warn")

	cfg, l, err := initializeApp()

	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
}

func TestInitializeAppInvalidConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("BREWCALC_SERVER_PORT", "0")

	cfg, l, err := initializeApp()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Nil(t, cfg)
	assert.Nil(t, l)
}
