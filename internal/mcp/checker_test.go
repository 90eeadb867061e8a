package mcp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckNotConfigured(t *testing.T) {
	status := Check(t.TempDir(), t.TempDir())
	if status.Configured {
		t.Error("expected not configured")
	}
	if status.HasReadToken {
		t.Error("HasReadToken must be false when not configured")
	}
}

func TestCheckFindsServerWithEnvToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mcp.json", `{
		"mcpServers": {
			"logfire": {
				"command": "uvx",
				"args": ["logfire-mcp@latest"],
				"env": {"LOGFIRE_READ_TOKEN": "pylf_read"}
			}
		}
	}`)

	status := Check(dir, t.TempDir())
	if !status.Configured {
		t.Fatal("expected configured")
	}
	if !status.HasReadToken {
		t.Error("expected read token to be detected")
	}
	if !strings.HasSuffix(status.Location, ".mcp.json") {
		t.Errorf("Location = %q", status.Location)
	}
}

func TestCheckFindsServerWithArgToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, filepath.Join(".cursor", "mcp.json"), `{
		"mcpServers": {
			"logfire": {
				"command": "uvx",
				"args": ["logfire-mcp@latest", "--read-token=pylf_read"]
			}
		}
	}`)

	status := Check(dir, t.TempDir())
	if !status.Configured || !status.HasReadToken {
		t.Errorf("status = %+v, want configured with token", status)
	}
}

func TestCheckConfiguredWithoutToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mcp.json", `{
		"mcpServers": {
			"logfire": {"command": "uvx", "args": ["logfire-mcp@latest"]}
		}
	}`)

	status := Check(dir, t.TempDir())
	if !status.Configured {
		t.Fatal("expected configured")
	}
	if status.HasReadToken {
		t.Error("no token reference present, HasReadToken must be false")
	}
}

func TestCheckEmptyEnvTokenDoesNotCount(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mcp.json", `{
		"mcpServers": {
			"logfire": {"command": "uvx", "env": {"LOGFIRE_READ_TOKEN": ""}}
		}
	}`)

	if status := Check(dir, t.TempDir()); status.HasReadToken {
		t.Error("empty token reference must not count as a read credential")
	}
}

func TestCheckAlternateServerKeys(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		body string
	}{
		{"vscode servers", filepath.Join(".vscode", "mcp.json"), `{"servers": {"logfire": {"command": "uvx"}}}`},
		{"zed context_servers", filepath.Join(".zed", "settings.json"), `{"context_servers": {"logfire": {"command": "uvx"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.rel, tt.body)
			if status := Check(dir, t.TempDir()); !status.Configured {
				t.Errorf("expected configured via %s", tt.rel)
			}
		})
	}
}

func TestCheckSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mcp.json", "{broken json")
	writeConfig(t, dir, filepath.Join(".cursor", "mcp.json"), `{"mcpServers": {"logfire": {"command": "uvx"}}}`)

	status := Check(dir, t.TempDir())
	if !status.Configured {
		t.Fatal("expected fallthrough to the next location")
	}
	if !strings.Contains(status.Location, ".cursor") {
		t.Errorf("Location = %q, want the cursor config", status.Location)
	}
}

func TestCheckIgnoresOtherServers(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mcp.json", `{"mcpServers": {"github": {"command": "gh-mcp"}}}`)
	if status := Check(dir, t.TempDir()); status.Configured {
		t.Error("a config without a logfire entry is not configured")
	}
}

func TestReadTokenURL(t *testing.T) {
	if got := ReadTokenURL(""); got != genericReadTokenURL {
		t.Errorf("generic URL = %q", got)
	}
	want := "https://logfire-us.pydantic.dev/acme/backend/settings/read-tokens/new"
	if got := ReadTokenURL("https://logfire-us.pydantic.dev/acme/backend"); got != want {
		t.Errorf("project URL = %q, want %q", got, want)
	}
}

func TestConfigExample(t *testing.T) {
	for _, client := range []string{"cursor", "claude-desktop", "cline", "claude-code", "vs-code", "zed"} {
		if example := ConfigExample(client); !strings.Contains(example, "logfire") {
			t.Errorf("example for %q does not mention logfire", client)
		}
	}
	if ConfigExample("unknown-client") != ConfigExample("cursor") {
		t.Error("unknown clients should fall back to the cursor example")
	}
}
