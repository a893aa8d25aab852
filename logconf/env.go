package logconf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/technoplato/tracelog/logger"
)

// Environment variables honored by FromEnv.
const (
	EnvLevel    = "LOGGER_LEVEL"
	EnvEnabled  = "LOGGER_ENABLED"
	EnvColorize = "LOGGER_COLORIZE"
)

// FromEnv builds partial logger options from environment variables. Unset
// or empty variables leave the corresponding option unset; malformed values
// are reported as errors rather than silently ignored.
func FromEnv() (logger.Options, error) {
	var opts logger.Options
	if v := os.Getenv(EnvLevel); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return logger.Options{}, fmt.Errorf("%s: %w", EnvLevel, err)
		}
		opts.Level = &lvl
	}
	if v := os.Getenv(EnvEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return logger.Options{}, fmt.Errorf("%s: invalid boolean %q", EnvEnabled, v)
		}
		opts.Enabled = &enabled
	}
	if v := os.Getenv(EnvColorize); v != "" {
		colorize, err := strconv.ParseBool(v)
		if err != nil {
			return logger.Options{}, fmt.Errorf("%s: invalid boolean %q", EnvColorize, v)
		}
		opts.Colorize = &colorize
	}
	return opts, nil
}
