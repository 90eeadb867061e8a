package logger

import (
	"fmt"
	"os"
)

// Logger is the output seam used by every component; tests substitute a
// recording implementation to keep output assertions stable.
type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// StdoutLogger writes plain output to stdout.
type StdoutLogger struct{}

func (l *StdoutLogger) Logf(format string, args ...interface{}) { fmt.Printf(format, args...) }
func (l *StdoutLogger) Log(msg string)                          { fmt.Println(msg) }

// IsInteractive reports whether stdout is attached to a terminal. Interactive
// prompts and spinners are only rendered when this holds; piped or redirected
// output (tests, CI) falls back to plain logging.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
