package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pydantic/logfire-setup/internal/auth"
	"github.com/pydantic/logfire-setup/internal/install"
	"github.com/pydantic/logfire-setup/internal/logger"
	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/setup"
	"github.com/pydantic/logfire-setup/internal/ui"
)

// rootCmd runs the interactive setup flow when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "logfire-setup [path]",
	Short: "Set up Pydantic Logfire in a Python project",
	Long: `logfire-setup guides you through adding the Logfire SDK to a Python project:

- Checks your Logfire authentication and project binding
- Detects which integrations your project already uses
- Installs logfire with the extras you confirm, via uv
- Checks for a Logfire MCP server configuration
- Writes Logfire usage instructions for coding agents (AGENTS.md)

Example usage:
  logfire-setup                     # Set up the current directory
  logfire-setup /path/to/project    # Set up a specific directory
  logfire-setup --skip-auth         # Skip the authentication step`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSetup,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Bool("skip-auth", false, "skip authentication and project selection")
	rootCmd.Flags().Bool("skip-mcp", false, "skip the MCP configuration check")
	rootCmd.Flags().Bool("dry-run", false, "show what would be done without installing or writing files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("path", "p", "", "project directory (overrides the positional argument)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	projectDir, err := resolveProjectDir(cmd, args)
	if err != nil {
		return err
	}

	skipAuth, _ := cmd.Flags().GetBool("skip-auth")
	skipMcp, _ := cmd.Flags().GetBool("skip-mcp")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if !logger.IsInteractive() {
		return fmt.Errorf("logfire-setup is interactive and needs a terminal; use `logfire-setup detect` for scripted runs")
	}

	fmt.Print(ui.Welcome())

	log := &logger.StdoutLogger{}
	commander := &install.RealCommander{}
	prompter := ui.NewPrompter()
	homeDir, _ := os.UserHomeDir()

	orchestrator := &setup.Orchestrator{
		Registry: registry.Default(),
		Resolver: &auth.Resolver{
			StorePath:  auth.DefaultStorePath(),
			ProjectDir: projectDir,
			Client:     auth.NewProjectsClient(),
			Picker:     prompter,
			Auth:       &auth.CLIAuthenticator{Commander: commander, ProjectDir: projectDir},
			Commander:  commander,
			Logger:     log,
		},
		Prompter:  prompter,
		Confirmer: prompter,
		Installer: install.NewUvInstaller(commander, log),
		Logger:    log,
		HomeDir:   homeDir,
	}

	res, err := orchestrator.Run(cmd.Context(), setup.Options{
		ProjectDir: projectDir,
		SkipAuth:   skipAuth,
		SkipMcp:    skipMcp,
		DryRun:     dryRun,
	})
	if err != nil {
		return err
	}
	if res.Aborted || dryRun {
		return nil
	}

	fmt.Println()
	fmt.Println(ui.Checkmark("Logfire is set up."))
	if res.Session.ProjectURL != "" {
		fmt.Println(ui.Dim("View your data at " + res.Session.ProjectURL))
	} else if !res.Session.Authenticated() {
		fmt.Println(ui.Dim("Run `logfire auth` when you are ready to send data to Logfire."))
	}
	return nil
}

func resolveProjectDir(cmd *cobra.Command, args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	if flagPath, _ := cmd.Flags().GetString("path"); flagPath != "" {
		target = flagPath
	}
	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("path does not exist: %s", absPath)
	}
	return absPath, nil
}
