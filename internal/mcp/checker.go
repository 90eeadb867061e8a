package mcp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// serverName is the MCP server entry this tool looks for.
const serverName = "logfire"

// serverKeys are the JSON roots used by the different clients:
// mcpServers (Cursor, Cline, Claude Desktop, Claude Code), servers (VS Code),
// context_servers (Zed).
var serverKeys = []string{"mcpServers", "servers", "context_servers"}

// Status is the outcome of scanning for an existing MCP configuration.
// Computed once, read-only afterwards.
type Status struct {
	Configured   bool   `json:"configured"`
	Location     string `json:"location,omitempty"`
	HasReadToken bool   `json:"has_read_token"`
}

// ConfigLocations returns the fixed, ordered list of well-known MCP config
// file paths for a project. Order matters: the first parseable file with a
// logfire entry wins.
func ConfigLocations(projectDir, homeDir string) []string {
	locations := []string{
		filepath.Join(projectDir, ".mcp.json"),
		filepath.Join(projectDir, ".cursor", "mcp.json"),
		filepath.Join(projectDir, "cline_mcp_settings.json"),
		filepath.Join(projectDir, ".claude", "mcp.json"),
		filepath.Join(projectDir, ".vscode", "mcp.json"),
		filepath.Join(projectDir, ".zed", "settings.json"),
	}
	if homeDir != "" {
		locations = append(locations, filepath.Join(homeDir, "Library", "Application Support", "Claude", "claude_desktop_config.json"))
	}
	return locations
}

// Check scans the well-known config locations for a logfire MCP server
// entry. Absence is a valid status, not an error; unreadable or malformed
// files are skipped.
func Check(projectDir, homeDir string) Status {
	for _, path := range ConfigLocations(projectDir, homeDir) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if !gjson.ValidBytes(data) {
			continue
		}
		for _, key := range serverKeys {
			entry := gjson.GetBytes(data, key+"."+serverName)
			if !entry.Exists() {
				continue
			}
			return Status{
				Configured:   true,
				Location:     path,
				HasReadToken: hasReadToken(entry),
			}
		}
	}
	return Status{}
}

// hasReadToken reports whether the server entry carries a read-token
// reference, either as a CLI argument or an env entry.
func hasReadToken(entry gjson.Result) bool {
	for _, arg := range entry.Get("args").Array() {
		s := arg.String()
		if strings.Contains(s, "--read-token") || strings.Contains(s, "LOGFIRE_READ_TOKEN") {
			return true
		}
	}
	return entry.Get("env.LOGFIRE_READ_TOKEN").String() != ""
}
