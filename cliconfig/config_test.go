package cliconfig_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/ligra-project/ligra/cliconfig"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFileFound(t *testing.T) {
	cfg, err := cliconfig.Load("/nonexistent/ligra.yaml")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Greater(t, cfg.Engine.Workers, 0)
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, cliconfig.LevelDebug, cliconfig.ParseLogLevel("debug"))
	require.Equal(t, cliconfig.LevelWarn, cliconfig.ParseLogLevel("warning"))
	require.Equal(t, cliconfig.LevelInfo, cliconfig.ParseLogLevel("nonsense"))
}

func TestDefaultLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := cliconfig.NewDefaultLogger(cliconfig.LevelWarn, &buf)

	logger.Info("should not appear")
	require.Empty(t, buf.String())

	logger.Warn("should appear: %d", 7)
	require.Contains(t, buf.String(), "should appear: 7")
}

func TestDefaultLogger_Elapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := cliconfig.NewDefaultLogger(cliconfig.LevelInfo, &buf)

	logger.Elapsed("load", 5*time.Millisecond)
	require.Contains(t, buf.String(), "load: took")
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l cliconfig.NullLogger
	l.Info("anything")
	l.Elapsed("x", time.Second)
}
