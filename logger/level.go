package logger

import (
	"fmt"
	"strings"
)

// Level defines log severity. Levels are ordered: a logger configured at a
// given level emits that level and everything above it.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// String returns the uppercase tag used in emitted lines.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively; "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}
