package mcp

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Client is one MCP-capable editor or coding agent.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	marker  string // project-relative directory that implies the client
	command string // CLI to probe on PATH
}

var knownClients = []Client{
	{ID: "cursor", Name: "Cursor", marker: ".cursor"},
	{ID: "claude-code", Name: "Claude Code", marker: ".claude", command: "claude"},
	{ID: "vs-code", Name: "VS Code", marker: ".vscode", command: "code"},
	{ID: "zed", Name: "Zed", marker: ".zed", command: "zed"},
}

// DetectClient infers the most likely MCP client for a project: first by
// client-specific directories in the project, then by CLIs on PATH. Cursor is
// the fallback; its config shape is the most widely copied. lookPath may be
// nil to use the real PATH.
func DetectClient(projectDir string, lookPath func(string) (string, error)) Client {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	for _, client := range knownClients {
		if client.marker == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(projectDir, client.marker)); err == nil {
			return client
		}
	}

	for _, client := range knownClients {
		if client.command == "" {
			continue
		}
		if _, err := lookPath(client.command); err == nil {
			return client
		}
	}

	return knownClients[0]
}
