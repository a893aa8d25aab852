package logger

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"
)

// newSyntheticLogger returns a logger wired for deterministic tests: output
// captured in a buffer, a fixed synthetic stack, no filesystem probes, and
// an explicit internal-frame marker.
func newSyntheticLogger(frames []Frame) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := New(Options{})
	l.out = buf
	l.diag = &bytes.Buffer{}
	l.capture = func() []Frame { return frames }
	l.stat = statAbsent
	l.selfMarker = "internal/logging/"
	return l, buf
}

func statAbsent(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

func appFrames() []Frame {
	return []Frame{
		{File: "service/internal/logging/log.go", Line: 41, Function: "logging.emit"},
		{File: "service/internal/logging/facade.go", Line: 12, Function: "logging.Info"},
		{File: "service/api/handler.go", Line: 88, Function: "api.Handle"},
	}
}

func TestDefaultConfiguration(t *testing.T) {
	l, buf := newSyntheticLogger(appFrames())

	if cfg := l.Config(); cfg.Level != InfoLevel || !cfg.Enabled || cfg.Colorize {
		t.Fatalf("unexpected default configuration: %+v", cfg)
	}

	l.Debug("x")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at the default level, got: %q", buf.String())
	}

	l.Info("x")
	if got := buf.String(); !strings.HasPrefix(got, "[INFO] ") || !strings.Contains(got, " x\n") {
		t.Fatalf("info should be emitted at the default level, got: %q", got)
	}
}

func TestSeverityGate_OneLinePerCall(t *testing.T) {
	l, buf := newSyntheticLogger(appFrames())

	l.Info("a")
	l.Warn("b")
	l.Error("c")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %q", len(lines), buf.String())
	}
	for _, want := range []string{"[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %s line: %q", want, buf.String())
		}
	}
}

// TestSeverityGate_SkipsAttributionWork verifies that rejected calls never
// touch the stack capture facility, not merely that output is absent.
func TestSeverityGate_SkipsAttributionWork(t *testing.T) {
	l, buf := newSyntheticLogger(nil)
	captures := 0
	l.capture = func() []Frame {
		captures++
		return appFrames()
	}

	l.Debug("filtered")
	if captures != 0 {
		t.Fatalf("gated call must not capture the stack, got %d captures", captures)
	}
	if buf.Len() != 0 {
		t.Fatalf("gated call must not produce output, got: %q", buf.String())
	}

	enabled := false
	l.Configure(Options{Enabled: &enabled})
	l.Error("still filtered")
	if captures != 0 {
		t.Fatalf("disabled logger must not capture the stack, got %d captures", captures)
	}

	enabled = true
	l.Configure(Options{Enabled: &enabled})
	l.Info("passes")
	if captures != 1 {
		t.Fatalf("accepted call should capture exactly once, got %d", captures)
	}
	if !strings.Contains(buf.String(), "passes") {
		t.Fatalf("accepted call should produce output, got: %q", buf.String())
	}
}

func TestConfigure_MergeSemantics(t *testing.T) {
	l, _ := newSyntheticLogger(appFrames())

	lvl := WarnLevel
	l.Configure(Options{Level: &lvl})
	enabled := false
	l.Configure(Options{Enabled: &enabled})

	cfg := l.Config()
	if cfg.Level != WarnLevel {
		t.Fatalf("level should survive the second configure, got %v", cfg.Level)
	}
	if cfg.Enabled {
		t.Fatalf("enabled should be false after the second configure")
	}
}

func TestConfigure_EmptyIsIdempotent(t *testing.T) {
	l, _ := newSyntheticLogger(appFrames())

	lvl := ErrorLevel
	colorize := true
	l.Configure(Options{Level: &lvl, Colorize: &colorize})
	before := l.Config()

	l.Configure(Options{})
	if after := l.Config(); after != before {
		t.Fatalf("empty configure changed state: before=%+v after=%+v", before, after)
	}
}

func TestScenario_WarnLevelFiltersInfoPassesError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{})
	l.out = &buf

	lvl := WarnLevel
	l.Configure(Options{Level: &lvl})

	l.Info("x")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got: %q", buf.String())
	}

	l.Error("y")
	if matched, err := regexp.MatchString(`^\[ERROR\] .*#\d+#.* y\n$`, buf.String()); err != nil || !matched {
		t.Fatalf("error line should carry an attribution, got: %q", buf.String())
	}
}

func TestEmittedLineFormat_Exact(t *testing.T) {
	l, buf := newSyntheticLogger(appFrames())

	l.Info("request accepted")
	want := "[INFO] service/api/handler.go#88#api.Handle request accepted\n"
	if got := buf.String(); got != want {
		t.Fatalf("line format mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormattedAndStructuredVariants(t *testing.T) {
	l, buf := newSyntheticLogger(appFrames())

	l.Infof("hi %d", 42)
	if !strings.Contains(buf.String(), "hi 42") {
		t.Fatalf("formatted message missing, got: %q", buf.String())
	}

	buf.Reset()
	l.InfoKV("request completed", "status", 200, "path", "/api/users")
	if got := buf.String(); !strings.Contains(got, "request completed status=200 path=/api/users") {
		t.Fatalf("structured fields missing, got: %q", got)
	}

	buf.Reset()
	l.WarnKV("no fields")
	if got := buf.String(); !strings.Contains(got, " no fields\n") {
		t.Fatalf("structured message without fields should still emit, got: %q", got)
	}
}

func TestColorizedOutput_UsesAnsi(t *testing.T) {
	colorize := true
	l, buf := newSyntheticLogger(appFrames())
	l.Configure(Options{Colorize: &colorize})

	l.Info("color-info")
	if !strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected ANSI color codes when Colorize is enabled, got: %q", buf.String())
	}

	colorize = false
	l.Configure(Options{Colorize: &colorize})
	buf.Reset()
	l.Info("plain-info")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected plain output when Colorize is disabled, got: %q", buf.String())
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	old := std
	defer func() { std = old }()

	var buf bytes.Buffer
	std = New(Options{})
	std.out = &buf
	std.capture = func() []Frame { return appFrames() }
	std.stat = statAbsent
	std.selfMarker = "internal/logging/"

	Debug("hidden")
	Info("visible")
	Warnf("count=%d", 7)
	ErrorKV("failed", "code", 500)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug should be filtered by the default configuration, got: %q", got)
	}
	for _, want := range []string{"[INFO] ", "visible", "count=7", "failed code=500"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q, got: %q", want, got)
		}
	}

	lvl := ErrorLevel
	Configure(Options{Level: &lvl})
	buf.Reset()
	Info("now filtered")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered after raising the level, got: %q", buf.String())
	}
}
