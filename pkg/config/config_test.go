package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvReportFile, "")
	t.Setenv(EnvMirrors, "")
	t.Setenv(EnvVerbose, "")

	cfg := FromEnv()
	assert.Equal(t, DefaultReportFile, cfg.ReportFile)
	assert.True(t, cfg.Mirrors)
	assert.False(t, cfg.Verbose)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvReportFile, " SUMMARY.md ")
	t.Setenv(EnvMirrors, "false")
	t.Setenv(EnvVerbose, "1")

	cfg := FromEnv()
	assert.Equal(t, "SUMMARY.md", cfg.ReportFile)
	assert.False(t, cfg.Mirrors)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv(EnvMirrors, "sometimes")
	assert.True(t, FromEnv().Mirrors)
}

func TestDotEnvFile(t *testing.T) {
	t.Setenv(EnvReportFile, "")
	os.Unsetenv(EnvReportFile)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvReportFile+"=INDEX.md\n"), 0o644))
	require.NoError(t, godotenv.Load(path))

	assert.Equal(t, "INDEX.md", FromEnv().ReportFile)
}
