// Package logging configures the process-wide zerolog logger. Diagnostic
// output goes to stderr; stdout is reserved for the dump itself.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "TRACEDUMP_LOG_LEVEL"
	EnvLogNoColor = "TRACEDUMP_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

// ConfigureRuntime installs the runtime logger. level comes from config and
// may be overridden by TRACEDUMP_LOG_LEVEL.
func ConfigureRuntime(level string) {
	Configure(ProfileRuntime, level)
}

// ConfigureTests installs a debug-level logger for test binaries.
func ConfigureTests() {
	Configure(ProfileTest, "")
}

func Configure(profile Profile, level string) {
	configureOnce.Do(func() {
		lvl := defaultLevel(profile)
		if v, ok := parseLevel(level); ok {
			lvl = v
		}
		if v, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
			lvl = v
		}
		noColor := false
		if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
			noColor = v
		}

		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
		log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	})
}

func defaultLevel(profile Profile) zerolog.Level {
	if profile == ProfileTest {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
