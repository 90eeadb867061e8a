package install

import (
	"context"
	"fmt"
	"strings"
)

// MockCommander implements Commander for testing. Responses and Errors are
// keyed by the full command line ("uv add logfire[fastapi]").
type MockCommander struct {
	Commands      map[string]bool   // which commands exist on PATH
	Responses     map[string]string // command line -> output
	Errors        map[string]error  // command line -> error
	RecordedCalls []RecordedCall
}

// RecordedCall captures a command invocation.
type RecordedCall struct {
	Name string
	Args []string
	Dir  string
}

// NewMockCommander creates a mock commander.
func NewMockCommander() *MockCommander {
	return &MockCommander{
		Commands:  make(map[string]bool),
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

func (m *MockCommander) LookPath(name string) (string, error) {
	if m.Commands[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (m *MockCommander) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Name: name, Args: args, Dir: dir})

	key := name + " " + strings.Join(args, " ")
	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	return m.Responses[key], nil
}
