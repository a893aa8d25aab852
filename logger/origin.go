package logger

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// missingField is the literal placeholder for an absent line number or
// function name. The attribution format is fixed: fields are concatenated
// as-is, never prettified away.
const missingField = "undefined"

// fallbackFrameIndex is the frame picked when every captured frame looks
// internal. A last-resort heuristic, not load-bearing.
const fallbackFrameIndex = 3

// selfDir is the directory holding this package's sources, recorded at
// process start. Frames under it belong to the logger itself and are
// skipped during origin selection.
var selfDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}()

// formatFrame renders file#line#function using the already-normalized file.
func formatFrame(file string, f Frame) string {
	line := missingField
	if f.Line > 0 {
		line = strconv.Itoa(f.Line)
	}
	fn := f.Function
	if fn == "" {
		fn = missingField
	}
	return file + "#" + line + "#" + fn
}

// Origin returns the attribution of the captured frame at depth, or the
// empty string when the stack is shallower. The index is raw: frame 0 is
// the Origin call itself, and callers account for any layers of their own.
// Paths are reported as captured, with no project-root normalization.
func (l *Logger) Origin(depth int) string {
	frames := l.capture()
	if depth < 0 || depth >= len(frames) {
		return ""
	}
	return formatFrame(frames[depth].File, frames[depth])
}

// origin picks the first captured frame outside the logger's own sources
// and renders it relative to the project root when one is known. When the
// whole visible stack is internal it falls back to fallbackFrameIndex (or
// the last frame of a shorter stack) rather than failing. Callers hold
// l.mu.
func (l *Logger) origin(frames []Frame) string {
	if len(frames) == 0 {
		return ""
	}
	marker := l.markerPath()
	for _, f := range frames {
		p := l.displayPath(f.File)
		if marker != "" && strings.Contains(p, marker) {
			continue
		}
		return formatFrame(p, f)
	}
	i := fallbackFrameIndex
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return formatFrame(l.displayPath(frames[i].File), frames[i])
}

// markerPath returns the substring identifying the logger's own frames.
// The default is this package's source directory, normalized the same way
// frame paths are so containment works for both relative and absolute
// renderings.
func (l *Logger) markerPath() string {
	if l.selfMarker != "" {
		return l.selfMarker
	}
	if selfDir == "" {
		return ""
	}
	l.selfMarker = l.displayPath(selfDir) + string(filepath.Separator)
	return l.selfMarker
}
