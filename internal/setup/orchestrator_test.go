package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydantic/logfire-setup/internal/auth"
	"github.com/pydantic/logfire-setup/internal/install"
	"github.com/pydantic/logfire-setup/internal/logger"
	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/selection"
)

// echoPrompter confirms exactly what detection pre-checked, mimicking a user
// accepting the defaults; a non-nil script overrides a pass.
type echoPrompter struct {
	script [][]string
	pass   int
}

func (p *echoPrompter) MultiSelect(title, description string, options []selection.Option) ([]string, error) {
	idx := p.pass
	p.pass++
	if idx < len(p.script) && p.script[idx] != nil {
		return p.script[idx], nil
	}
	var confirmed []string
	for _, opt := range options {
		if opt.Preselected {
			confirmed = append(confirmed, opt.Extra)
		}
	}
	return confirmed, nil
}

type yesConfirmer struct{ answer bool }

func (c yesConfirmer) Confirm(string, bool) (bool, error) { return c.answer, nil }

// fakeInstaller records install calls without shelling out.
type fakeInstaller struct {
	available bool
	err       error
	calls     []string
}

func (i *fakeInstaller) Available() bool { return i.available }

func (i *fakeInstaller) Install(_ context.Context, projectDir string, extras []string, dryRun bool) error {
	i.calls = append(i.calls, install.PackageSpec(extras))
	return i.err
}

func newOrchestrator(t *testing.T, projectDir string, prompter selection.Prompter, confirmer Confirmer, installer Installer) (*Orchestrator, *logger.CaptureLogger) {
	t.Helper()
	t.Setenv("LOGFIRE_TOKEN", "")
	os.Unsetenv("LOGFIRE_TOKEN")
	log := &logger.CaptureLogger{}
	return &Orchestrator{
		Registry: registry.Default(),
		Resolver: &auth.Resolver{
			StorePath:  filepath.Join(projectDir, "no-store.toml"),
			ProjectDir: projectDir,
			Logger:     log,
		},
		Prompter:  prompter,
		Confirmer: confirmer,
		Installer: installer,
		Logger:    log,
		HomeDir:   projectDir,
	}, log
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// A detected project: declared deps pre-select extras, the user accepts, and
// the exact spec reaches the installer.
func TestRunDetectedProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `
[project]
name = "shop"
dependencies = ["fastapi>=0.100", "HTTPX"]
`)
	writeFile(t, dir, "main.py", "import fastapi\n")

	installer := &fakeInstaller{available: true}
	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"fastapi", "httpx"}, res.Detection.Extras())
	assert.Equal(t, []string{"fastapi", "httpx"}, res.Selection.Extras())
	require.Equal(t, []string{"logfire[fastapi,httpx]"}, installer.calls)
	assert.True(t, res.Installed)

	content, err := os.ReadFile(res.AgentFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Logfire")
	assert.Contains(t, string(content), "instrument_fastapi")
}

// An empty project with no credentials: nothing detected, empty confirmation
// is honored, and the bare package is still installed.
func TestRunEmptyProjectUnauthenticated(t *testing.T) {
	dir := t.TempDir()

	installer := &fakeInstaller{available: true}
	o, log := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.Equal(t, auth.StateUnauthenticated, res.Session.State)
	assert.Empty(t, res.Selection.Extras())
	assert.Equal(t, []string{"logfire"}, installer.calls)
	assert.True(t, log.Contains("No known integrations detected"))
	assert.True(t, log.Contains("logfire-mcp@latest"), "missing MCP config example for the detected client")

	_, statErr := os.Stat(filepath.Join(dir, "AGENTS.md"))
	assert.NoError(t, statErr)
}

// An MCP config without a read token: the status is surfaced and the
// generated instructions link to the read-token page.
func TestRunMcpConfiguredWithoutReadToken(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join(".cursor", "mcp.json"), `{
  "mcpServers": {"logfire": {"command": "uvx", "args": ["logfire-mcp@latest"]}}
}`)
	writeFile(t, dir, "CLAUDE.md", "# My project\n\nExisting notes.\n")

	installer := &fakeInstaller{available: true}
	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.True(t, res.McpStatus.Configured)
	assert.False(t, res.McpStatus.HasReadToken)
	assert.Equal(t, filepath.Join(dir, "CLAUDE.md"), res.AgentFile)

	content, err := os.ReadFile(res.AgentFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Existing notes.")
	assert.Contains(t, string(content), "Using Logfire MCP")
	assert.Contains(t, string(content), "read-tokens/new")
}

func TestRunDeclinedConfirmationAborts(t *testing.T) {
	dir := t.TempDir()

	installer := &fakeInstaller{available: true}
	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{false}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.True(t, res.Aborted)
	assert.Empty(t, installer.calls)
	_, statErr := os.Stat(filepath.Join(dir, "AGENTS.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingUvFails(t *testing.T) {
	dir := t.TempDir()

	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, &fakeInstaller{available: false})

	_, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uv is required")
}

// Install failures are reported but do not block the instructions write.
func TestRunInstallFailureContinues(t *testing.T) {
	dir := t.TempDir()

	installer := &fakeInstaller{
		available: true,
		err:       &install.Error{Spec: "logfire", Output: "resolution failed", Err: errors.New("exit status 1")},
	}
	o, log := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.True(t, log.Contains("resolution failed"))
	assert.False(t, res.Installed)
	assert.NotEmpty(t, res.AgentFile)
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", "redis\n")

	installer := &fakeInstaller{available: true}
	o, log := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true, DryRun: true})
	require.NoError(t, err)

	assert.False(t, res.Installed)
	assert.Equal(t, []string{"logfire[redis]"}, installer.calls)
	assert.True(t, log.Contains("Would write Logfire instructions"))
	_, statErr := os.Stat(filepath.Join(dir, "AGENTS.md"))
	assert.True(t, os.IsNotExist(statErr))
}

// The config file can force skip flags and add detection patterns.
func TestRunProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".logfire-setup.yaml", `
skip_mcp: true
extra_patterns:
  redis:
    - internal-redis-client
`)
	writeFile(t, dir, "requirements.txt", "internal-redis-client==2.0\n")
	writeFile(t, dir, filepath.Join(".cursor", "mcp.json"), `{"mcpServers": {"logfire": {}}}`)

	installer := &fakeInstaller{available: true}
	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)

	res, err := o.Run(context.Background(), Options{ProjectDir: dir, SkipAuth: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"redis"}, res.Selection.Extras())
	assert.False(t, res.McpStatus.Configured, "skip_mcp should bypass the MCP check")
}

// A credential store with a valid token authenticates without any network
// when the project is already bound locally.
func TestRunLocalProjectBinding(t *testing.T) {
	dir := t.TempDir()
	expiry := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	writeFile(t, dir, "store.toml", fmt.Sprintf(`
[tokens."https://logfire-us.pydantic.dev"]
token = "pylf_v1_us_abc"
expiration = %q
`, expiry))
	writeFile(t, dir, filepath.Join(".logfire", "logfire_credentials.json"),
		`{"project_url": "https://logfire-us.pydantic.dev/acme/shop"}`)

	installer := &fakeInstaller{available: true}
	o, _ := newOrchestrator(t, dir, &echoPrompter{}, yesConfirmer{true}, installer)
	o.Resolver.StorePath = filepath.Join(dir, "store.toml")

	res, err := o.Run(context.Background(), Options{ProjectDir: dir})
	require.NoError(t, err)

	assert.Equal(t, auth.StateProjectBound, res.Session.State)
	assert.True(t, strings.HasSuffix(res.Session.ProjectURL, "/acme/shop"))
}
