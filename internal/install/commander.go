package install

import (
	"context"
	"os/exec"
)

// Commander abstracts system command execution so installers can be tested
// without invoking real tools.
type Commander interface {
	// LookPath checks if a command exists on PATH.
	LookPath(name string) (string, error)
	// Run executes a command in dir and returns its combined output.
	Run(ctx context.Context, name string, args []string, dir string) (string, error)
}

// RealCommander implements Commander using actual system commands.
type RealCommander struct{}

// NewRealCommander creates a commander backed by os/exec.
func NewRealCommander() Commander {
	return &RealCommander{}
}

func (r *RealCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *RealCommander) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}
