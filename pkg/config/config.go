package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvReportFile = "PROBLEM_SUMMARY_REPORT_FILE"
	EnvMirrors    = "PROBLEM_SUMMARY_MIRRORS"
	EnvVerbose    = "PROBLEM_SUMMARY_VERBOSE"

	DefaultReportFile = "README.md"
)

// Config holds defaults for the CLI flags. Flags given on the command line
// win over these values.
type Config struct {
	ReportFile string
	Mirrors    bool
	Verbose    bool
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		ReportFile: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvReportFile)), DefaultReportFile),
		Mirrors:    envBool(EnvMirrors, true),
		Verbose:    envBool(EnvVerbose, false),
	}
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
