// Package logger provides namespaced debug loggers in the style of the npm
// "debug" package. Loggers are silent unless the DEBUG environment variable
// matches their namespace.
//
// Namespaces are colon-separated, e.g. "cli:filters" or "jira:client". DEBUG
// accepts a comma-separated list of glob patterns:
//
//	DEBUG=*              enable everything
//	DEBUG=cli:*          enable all cli loggers
//	DEBUG=cli:*,jira:*   enable cli and jira loggers
//	DEBUG=*,-jira:*      enable everything except jira loggers
//
// All output goes to stderr so it never interferes with machine-readable
// output on stdout.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is a namespaced debug logger. The zero value is not usable; create
// loggers with New.
type Logger struct {
	namespace string
	enabled   bool
}

var (
	patternsOnce sync.Once
	enablers     []string
	disablers    []string
)

func loadPatterns() {
	patternsOnce.Do(func() {
		for _, p := range strings.Split(os.Getenv("DEBUG"), ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if strings.HasPrefix(p, "-") {
				disablers = append(disablers, p[1:])
			} else {
				enablers = append(enablers, p)
			}
		}
	})
}

// matchPattern reports whether namespace matches a DEBUG pattern. Patterns
// support a single trailing "*" wildcard, matching any suffix.
func matchPattern(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(namespace, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == namespace
}

func isEnabled(namespace string) bool {
	loadPatterns()
	enabled := false
	for _, p := range enablers {
		if matchPattern(p, namespace) {
			enabled = true
			break
		}
	}
	if !enabled {
		return false
	}
	for _, p := range disablers {
		if matchPattern(p, namespace) {
			return false
		}
	}
	return true
}

// New creates a logger for the given namespace. The enabled state is decided
// once at creation time from the DEBUG environment variable.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   isEnabled(namespace),
	}
}

// Enabled reports whether this logger will emit output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message when the logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs a message when the logger is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s %s\n", time.Now().Format("15:04:05.000"), l.namespace, msg)
}
