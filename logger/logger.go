package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Logger is an independently configured logging instance. Construct
// instances with New; the zero value is not usable.
//
// The capture, stat and diagnostic hooks are fixed at construction time;
// only the configuration and the output sink change afterwards. The mutex
// covers configuration reads, the resolution caches and emission, so
// concurrent use from multiple goroutines is safe with last-write-wins
// semantics for Configure.
type Logger struct {
	mu     sync.RWMutex
	config Config

	out  io.Writer // line-oriented sink, one write per logging call
	diag io.Writer // resolver diagnostics, kept apart from out to avoid recursion

	capture StackSource

	// origin resolution state
	selfMarker string
	manifest   string
	stat       func(string) (os.FileInfo, error)
	rootState  rootState
	rootDir    string
	pathCache  map[string]string
}

// New returns a logger writing to stdout, configured with the defaults
// (info level, enabled) merged with opts.
func New(opts Options) *Logger {
	return &Logger{
		config:    defaultConfig().merge(opts),
		out:       os.Stdout,
		diag:      os.Stderr,
		capture:   captureFrames,
		manifest:  manifestName,
		stat:      os.Stat,
		pathCache: make(map[string]string),
	}
}

// Configure merges the supplied options into the current configuration.
// Nil fields keep their prior value. Configure never fails: malformed
// input is a caller contract violation, not a runtime condition.
func (l *Logger) Configure(opts Options) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config = l.config.merge(opts)
}

// Config returns a snapshot of the current configuration.
func (l *Logger) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// SetOutput redirects emitted lines to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// shouldEmit is the single admission-control decision point. Every leveled
// call consults it before any attribution work, so filtered calls pay no
// stack-walk cost.
func (l *Logger) shouldEmit(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.Enabled && level >= l.config.Level
}

// emit produces exactly one output line: [LEVEL] <attribution> <values...>.
// The values keep their own representation; nothing is flattened or
// re-serialized on the way to the sink.
func (l *Logger) emit(level Level, v ...any) {
	frames := l.capture()
	l.mu.Lock()
	defer l.mu.Unlock()
	args := make([]any, 0, len(v)+2)
	args = append(args, l.levelTag(level), l.origin(frames))
	args = append(args, v...)
	fmt.Fprintln(l.out, args...)
}

// ANSI colors per level, used only when Colorize is set.
var levelColors = map[Level]string{
	DebugLevel: "\033[36m",
	InfoLevel:  "\033[32m",
	WarnLevel:  "\033[33m",
	ErrorLevel: "\033[31m",
}

const colorReset = "\033[0m"

func (l *Logger) levelTag(level Level) string {
	tag := "[" + level.String() + "]"
	if l.config.Colorize {
		return levelColors[level] + tag + colorReset
	}
	return tag
}

// encodeFields formats key-value pairs as "key=value" strings. Keys that
// are not strings are skipped along with their values.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// --- Plain logging methods (Println style) ---

// Debug logs the values at debug level.
func (l *Logger) Debug(v ...any) {
	if !l.shouldEmit(DebugLevel) {
		return
	}
	l.emit(DebugLevel, v...)
}

// Info logs the values at info level.
func (l *Logger) Info(v ...any) {
	if !l.shouldEmit(InfoLevel) {
		return
	}
	l.emit(InfoLevel, v...)
}

// Warn logs the values at warning level.
func (l *Logger) Warn(v ...any) {
	if !l.shouldEmit(WarnLevel) {
		return
	}
	l.emit(WarnLevel, v...)
}

// Error logs the values at error level.
func (l *Logger) Error(v ...any) {
	if !l.shouldEmit(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, v...)
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.shouldEmit(DebugLevel) {
		return
	}
	l.emit(DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	if !l.shouldEmit(InfoLevel) {
		return
	}
	l.emit(InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	if !l.shouldEmit(WarnLevel) {
		return
	}
	l.emit(WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	if !l.shouldEmit(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, fmt.Sprintf(format, v...))
}

// --- Structured logging methods (key-value pairs) ---

// DebugKV logs a debug message with structured key-value pairs.
func (l *Logger) DebugKV(msg string, keyvals ...any) {
	if !l.shouldEmit(DebugLevel) {
		return
	}
	l.emit(DebugLevel, msg+encodeFields(keyvals...))
}

// InfoKV logs an info message with structured key-value pairs.
func (l *Logger) InfoKV(msg string, keyvals ...any) {
	if !l.shouldEmit(InfoLevel) {
		return
	}
	l.emit(InfoLevel, msg+encodeFields(keyvals...))
}

// WarnKV logs a warning message with structured key-value pairs.
func (l *Logger) WarnKV(msg string, keyvals ...any) {
	if !l.shouldEmit(WarnLevel) {
		return
	}
	l.emit(WarnLevel, msg+encodeFields(keyvals...))
}

// ErrorKV logs an error message with structured key-value pairs.
func (l *Logger) ErrorKV(msg string, keyvals ...any) {
	if !l.shouldEmit(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, msg+encodeFields(keyvals...))
}

// --- Package-level default logger ---

// std is the process-wide default used by the package-level functions. It
// starts from the default configuration on every process start.
var std = New(Options{})

// Configure merges opts into the default logger's configuration.
func Configure(opts Options) { std.Configure(opts) }

// SetOutput redirects the default logger's output to w.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Origin returns the attribution of the captured frame at depth via the
// default logger. The package function adds one call layer on top of the
// method, so a direct caller names its own site with depth 2.
func Origin(depth int) string { return std.Origin(depth) }

// Debug logs the values at debug level via the default logger.
func Debug(v ...any) { std.Debug(v...) }

// Info logs the values at info level via the default logger.
func Info(v ...any) { std.Info(v...) }

// Warn logs the values at warning level via the default logger.
func Warn(v ...any) { std.Warn(v...) }

// Error logs the values at error level via the default logger.
func Error(v ...any) { std.Error(v...) }

// Debugf logs a formatted debug message via the default logger.
func Debugf(format string, v ...any) { std.Debugf(format, v...) }

// Infof logs a formatted informational message via the default logger.
func Infof(format string, v ...any) { std.Infof(format, v...) }

// Warnf logs a formatted warning message via the default logger.
func Warnf(format string, v ...any) { std.Warnf(format, v...) }

// Errorf logs a formatted error message via the default logger.
func Errorf(format string, v ...any) { std.Errorf(format, v...) }

// DebugKV logs a debug message with key-value pairs via the default logger.
func DebugKV(msg string, keyvals ...any) { std.DebugKV(msg, keyvals...) }

// InfoKV logs an info message with key-value pairs via the default logger.
func InfoKV(msg string, keyvals ...any) { std.InfoKV(msg, keyvals...) }

// WarnKV logs a warning message with key-value pairs via the default logger.
func WarnKV(msg string, keyvals ...any) { std.WarnKV(msg, keyvals...) }

// ErrorKV logs an error message with key-value pairs via the default logger.
func ErrorKV(msg string, keyvals ...any) { std.ErrorKV(msg, keyvals...) }
