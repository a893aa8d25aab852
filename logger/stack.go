package logger

import (
	"runtime"
	"strings"
)

// Frame describes one entry of a captured call stack. A Line of zero and an
// empty Function mark metadata the capture facility could not provide.
type Frame struct {
	File     string
	Line     int
	Function string
}

// StackSource returns the ordered call frames active at the point of
// invocation. Frame 0 corresponds to the immediate caller of the source.
// The logger depends only on this contract, so tests can substitute a
// synthetic stack for the runtime-backed capture.
type StackSource func() []Frame

// maxStackDepth bounds how many frames a single capture collects.
const maxStackDepth = 64

// captureFrames is the runtime-backed StackSource.
func captureFrames() []Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}
	out := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := iter.Next()
		out = append(out, Frame{
			File:     fr.File,
			Line:     fr.Line,
			Function: shortFuncName(fr.Function),
		})
		if !more {
			break
		}
	}
	return out
}

// shortFuncName strips the import path prefix, keeping package.Function.
func shortFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 && i+1 < len(full) {
		return full[i+1:]
	}
	return full
}
