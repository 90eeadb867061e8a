package logger

import (
	"fmt"
	"strings"
	"sync"
)

// CaptureLogger records everything logged to it. Test helper.
type CaptureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *CaptureLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *CaptureLogger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg+"\n")
}

// Output returns everything logged so far as one string.
func (l *CaptureLogger) Output() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "")
}

// Contains reports whether any logged line contains the substring.
func (l *CaptureLogger) Contains(substr string) bool {
	return strings.Contains(l.Output(), substr)
}
