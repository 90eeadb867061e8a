package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pydantic/logfire-setup/internal/auth"
	"github.com/pydantic/logfire-setup/internal/config"
	"github.com/pydantic/logfire-setup/internal/detector"
	"github.com/pydantic/logfire-setup/internal/install"
	"github.com/pydantic/logfire-setup/internal/instructions"
	"github.com/pydantic/logfire-setup/internal/logger"
	"github.com/pydantic/logfire-setup/internal/manifest"
	"github.com/pydantic/logfire-setup/internal/mcp"
	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/selection"
	"github.com/pydantic/logfire-setup/internal/ui"
)

// Confirmer asks a single yes/no question.
type Confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// Installer is the package installation capability.
type Installer interface {
	Available() bool
	Install(ctx context.Context, projectDir string, extras []string, dryRun bool) error
}

// Options are the per-run knobs, typically mapped from CLI flags. Values from
// the project config file are merged in, with true winning over false.
type Options struct {
	ProjectDir string
	SkipAuth   bool
	SkipMcp    bool
	DryRun     bool
}

// Orchestrator drives the end-to-end setup flow. Every interactive or
// external capability is injected so the flow is testable with fakes.
type Orchestrator struct {
	Registry  *registry.Registry
	Resolver  *auth.Resolver
	Prompter  selection.Prompter
	Confirmer Confirmer
	Installer Installer
	Logger    logger.Logger
	HomeDir   string

	// extraPatterns comes from the project config file during mergeConfig and
	// is applied on top of builtin detection.
	extraPatterns map[string][]string
}

// Result reports what one run did, for display and for tests.
type Result struct {
	Session   auth.Session
	Languages []string
	Detection detector.Result
	Selection selection.Set
	Aborted   bool
	Installed bool
	McpStatus mcp.Status
	AgentFile string
}

// Run executes the setup flow: resolve credentials, detect integrations,
// confirm the selection, install, check MCP, and write agent instructions.
// Detection and install problems degrade to warnings; only a refused
// confirmation or a failed instructions write stops the flow.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	opts = o.mergeConfig(opts)

	res.Session = o.Resolver.Resolve(ctx, opts.SkipAuth)
	o.reportSession(res.Session)

	res.Languages = o.scanLanguages(opts.ProjectDir)
	res.Detection = o.detect(opts.ProjectDir)

	set, err := selection.Select(res.Detection, o.Registry, o.Prompter)
	if err != nil {
		return res, err
	}
	res.Selection = set

	spec := install.PackageSpec(set.Extras())
	proceed, err := o.Confirmer.Confirm(fmt.Sprintf("Install %s with uv?", spec), true)
	if err != nil {
		return res, err
	}
	if !proceed {
		res.Aborted = true
		o.Logger.Log("Setup aborted. Nothing was installed.")
		return res, nil
	}

	installed, err := o.runInstall(ctx, opts, set.Extras())
	if err != nil {
		return res, err
	}
	res.Installed = installed && !opts.DryRun

	if !opts.SkipMcp {
		res.McpStatus = mcp.Check(opts.ProjectDir, o.HomeDir)
		o.reportMcp(res.McpStatus, res.Session.ProjectURL, opts.ProjectDir)
	}

	doc := instructions.Compose(set, o.Registry, res.McpStatus, res.Session.ProjectURL)
	if opts.DryRun {
		o.Logger.Logf("Would write Logfire instructions to %s\n", o.agentTarget(opts.ProjectDir))
		return res, nil
	}
	path, err := instructions.WriteToProject(doc, opts.ProjectDir)
	if err != nil {
		return res, err
	}
	res.AgentFile = path
	o.Logger.Logf("Logfire instructions written to %s\n", path)

	return res, nil
}

// mergeConfig folds the optional project config file into the options. A
// malformed file is reported and ignored.
func (o *Orchestrator) mergeConfig(opts Options) Options {
	cfg, err := config.Load(opts.ProjectDir)
	if err != nil {
		o.Logger.Logf("Ignoring project config: %v\n", err)
		return opts
	}
	opts.SkipAuth = opts.SkipAuth || cfg.SkipAuth
	opts.SkipMcp = opts.SkipMcp || cfg.SkipMcp
	o.extraPatterns = cfg.ExtraPatterns
	return opts
}

func (o *Orchestrator) reportSession(session auth.Session) {
	switch session.State {
	case auth.StateProjectBound:
		o.Logger.Logf("Authenticated via %s, project: %s\n", session.TokenSource, session.ProjectPath)
	case auth.StateAuthenticatedNoProject:
		o.Logger.Logf("Authenticated via %s (no project selected)\n", session.TokenSource)
	default:
		o.Logger.Log("Not authenticated. Run `logfire auth` later to send data to Logfire.")
	}
}

// scanLanguages summarizes the project's languages and warns when the tree
// does not look like a Python project.
func (o *Orchestrator) scanLanguages(projectDir string) []string {
	languages, err := detector.ProjectLanguages(projectDir)
	if err != nil {
		o.Logger.Logf("Language scan failed: %v\n", err)
		return nil
	}
	if len(languages) > 0 && !detector.IsPythonProject(languages) {
		o.Logger.Log(ui.Warning("this looks like a %s project; Logfire's SDK targets Python", strings.Join(languages, "/")))
	}
	return languages
}

// detect reads the manifests and matches declared packages against the
// registry, then layers user-configured patterns on top. A manifest that
// exists but cannot be parsed degrades to an empty package set.
func (o *Orchestrator) detect(projectDir string) detector.Result {
	declared, err := manifest.ReadDeclaredPackages(projectDir)
	if err != nil {
		var parseErr *manifest.ParseError
		if errors.As(err, &parseErr) {
			o.Logger.Logf("Skipping unreadable manifest: %v\n", parseErr)
		} else {
			o.Logger.Logf("Manifest read failed: %v\n", err)
		}
	}

	res := detector.Detect(declared, o.Registry)
	if len(o.extraPatterns) > 0 {
		var unknown []string
		res, unknown = detector.ApplyCustomPatterns(res, o.Registry, o.extraPatterns)
		for _, extra := range unknown {
			o.Logger.Logf("Unknown extra %q in %s, ignoring\n", extra, config.FileName)
		}
	}

	if extras := res.Extras(); len(extras) > 0 {
		o.Logger.Logf("Detected integrations: %s\n", strings.Join(extras, ", "))
	} else {
		o.Logger.Log("No known integrations detected in the project manifests.")
	}
	return res
}

// runInstall shells out to uv, or explains how to get it. An install failure
// is reported but does not stop the flow; the selection is still recorded in
// the generated instructions so the user can retry by hand.
func (o *Orchestrator) runInstall(ctx context.Context, opts Options, extras []string) (bool, error) {
	if !o.Installer.Available() {
		return false, fmt.Errorf("uv is required but was not found on PATH; install it from https://docs.astral.sh/uv/")
	}
	if err := o.Installer.Install(ctx, opts.ProjectDir, extras, opts.DryRun); err != nil {
		var installErr *install.Error
		if errors.As(err, &installErr) {
			o.Logger.Logf("%v\nRun `uv add %s` manually once the problem is fixed.\n", installErr, installErr.Spec)
			if installErr.Output != "" {
				o.Logger.Log(installErr.Output)
			}
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (o *Orchestrator) reportMcp(status mcp.Status, projectURL, projectDir string) {
	if status.Configured {
		o.Logger.Logf("Logfire MCP server configured in %s\n", status.Location)
		if !status.HasReadToken {
			o.Logger.Logf("The MCP config has no read token. Create one at %s\n", mcp.ReadTokenURL(projectURL))
		}
		return
	}
	client := mcp.DetectClient(projectDir, nil)
	o.Logger.Log("No Logfire MCP server configured. To query your Logfire data from your editor, add one:")
	o.Logger.Log(ui.Panel(client.Name, mcp.ConfigExample(client.ID)))
}

// agentTarget names the file a real run would write to, for dry-run output.
func (o *Orchestrator) agentTarget(projectDir string) string {
	if existing := instructions.FindAgentFile(projectDir); existing != "" {
		return existing
	}
	return "AGENTS.md"
}
