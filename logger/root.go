package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// manifestName is the filename probed for during project root discovery.
// Its presence alone marks the root; the file is never read.
const manifestName = "go.mod"

// fileURIPrefix strips URI-style file references down to plain paths.
const fileURIPrefix = "file://"

// rootState tracks project root discovery as an explicit tri-state so the
// attempted-once invariant stays visible: once the state leaves
// rootUnresolved it never changes, even when discovery failed.
type rootState int

const (
	rootUnresolved rootState = iota
	rootFound
	rootAbsent
)

// displayPath normalizes a raw file reference for display and caches the
// result per distinct raw reference. Callers hold l.mu.
func (l *Logger) displayPath(raw string) string {
	if p, ok := l.pathCache[raw]; ok {
		return p
	}
	p := strings.TrimPrefix(raw, fileURIPrefix)
	l.resolveRoot(p)
	if l.rootState == rootFound {
		if rel, err := filepath.Rel(l.rootDir, p); err == nil && !strings.HasPrefix(rel, "..") {
			p = rel
		}
	}
	l.pathCache[raw] = p
	return p
}

// resolveRoot walks upward from the directory containing path (or path
// itself when it is a directory), probing each level for the manifest
// file. It runs at most once per logger; both outcomes are permanent.
// Filesystem errors degrade to "no root" and are reported on the
// diagnostic writer, never to the logging caller.
func (l *Logger) resolveRoot(path string) {
	if l.rootState != rootUnresolved {
		return
	}
	l.rootState = rootAbsent

	dir := path
	if fi, err := l.stat(path); err != nil || !fi.IsDir() {
		dir = filepath.Dir(path)
	}
	for {
		fi, err := l.stat(filepath.Join(dir, l.manifest))
		if err == nil && !fi.IsDir() {
			l.rootDir = dir
			l.rootState = rootFound
			return
		}
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(l.diag, "logger: project root discovery failed at %s: %v\n", dir, err)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
