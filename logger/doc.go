// Package logger provides a severity-gated logger that labels every line
// with the call site it originated from.
//
// # Output Format
//
// Each accepted call emits exactly one line:
//
//	[<LEVEL>] <file>#<line>#<function> <values...>
//
// The attribution names the first stack frame outside this package. File
// paths are rendered relative to the project root, discovered once per
// logger by walking up from the first resolved file until a go.mod is
// found. A missing line number or function name renders as the literal
// "undefined".
//
// # Features
//
//   - Global package-level functions backed by a process-wide default
//   - Independent instances via New for isolated configuration
//   - Merge-style reconfiguration at any time via Configure
//   - Formatted (Infof) and structured key-value (InfoKV) variants
//   - Depth-indexed attribution lookup via Origin
//   - Optional ANSI-colored level tags via Config.Colorize
//
// # Usage
//
// The default logger starts at info level, enabled, writing to stdout:
//
//	logger.Info("server started")
//	logger.Warnf("disk %d%% full", 92)
//	logger.ErrorKV("request failed", "status", 502)
//
// Reconfigure at any time; omitted fields keep their prior value:
//
//	lvl := logger.WarnLevel
//	logger.Configure(logger.Options{Level: &lvl})
//
// Or construct an isolated instance:
//
//	log := logger.New(logger.Options{})
//	log.SetOutput(file)
//	log.Info("independent configuration")
//
// # Severity Gate
//
// A call below the configured level, or any call while disabled, returns
// immediately: no stack is captured, no paths are resolved, nothing is
// written. Logging calls never fail and never return errors.
//
// External configuration sources (files, environment variables) are wired
// by the logconf package; this core reads nothing on its own.
package logger
