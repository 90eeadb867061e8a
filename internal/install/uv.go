package install

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pydantic/logfire-setup/internal/logger"
)

// basePackage is the package every install targets, with or without extras.
const basePackage = "logfire"

// Error reports a failed install invocation with the tool output attached.
type Error struct {
	Spec   string
	Output string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to install %s: %v", e.Spec, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UvInstaller installs logfire with selected extras using uv.
type UvInstaller struct {
	commander Commander
	logger    logger.Logger
}

// NewUvInstaller creates an installer that shells out through the given
// commander.
func NewUvInstaller(commander Commander, log logger.Logger) *UvInstaller {
	return &UvInstaller{commander: commander, logger: log}
}

// Available reports whether uv is on PATH.
func (i *UvInstaller) Available() bool {
	_, err := i.commander.LookPath("uv")
	return err == nil
}

// PackageSpec renders the install target for the given extras. Extras are
// sorted and comma-joined so the constructed command is deterministic; an
// empty set yields the bare package, never a no-op.
func PackageSpec(extras []string) string {
	if len(extras) == 0 {
		return basePackage
	}
	sorted := append([]string(nil), extras...)
	sort.Strings(sorted)
	return fmt.Sprintf("%s[%s]", basePackage, strings.Join(sorted, ","))
}

// Install runs `uv add` for the base package with the given extras. A failed
// invocation is reported, not retried; the caller decides whether the rest of
// the flow continues.
func (i *UvInstaller) Install(ctx context.Context, projectDir string, extras []string, dryRun bool) error {
	spec := PackageSpec(extras)

	if dryRun {
		i.logger.Logf("Would run: uv add %s\n", spec)
		return nil
	}

	i.logger.Logf("Installing %s...\n", spec)
	output, err := i.commander.Run(ctx, "uv", []string{"add", spec}, projectDir)
	if err != nil {
		return &Error{Spec: spec, Output: output, Err: err}
	}
	i.logger.Logf("Installed %s\n", spec)
	return nil
}
