package logger

// Config holds a logger's current configuration. A fresh logger starts at
// info level, enabled, with plain output; nothing is persisted across
// process restarts.
type Config struct {
	// Level is the minimum severity that produces output.
	Level Level
	// Enabled turns all output on or off regardless of level.
	Enabled bool
	// Colorize wraps the [LEVEL] tag in ANSI colors for console output.
	Colorize bool
}

func defaultConfig() Config {
	return Config{Level: InfoLevel, Enabled: true}
}

// Options is a partial configuration for merge-style updates: only non-nil
// fields change the configuration, nil fields keep their prior value.
type Options struct {
	Level    *Level
	Enabled  *bool
	Colorize *bool
}

// merge applies the non-nil fields of opts on top of c.
func (c Config) merge(opts Options) Config {
	if opts.Level != nil {
		c.Level = *opts.Level
	}
	if opts.Enabled != nil {
		c.Enabled = *opts.Enabled
	}
	if opts.Colorize != nil {
		c.Colorize = *opts.Colorize
	}
	return c
}
