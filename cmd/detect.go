package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydantic/logfire-setup/internal/config"
	"github.com/pydantic/logfire-setup/internal/detector"
	"github.com/pydantic/logfire-setup/internal/logger"
	"github.com/pydantic/logfire-setup/internal/manifest"
	"github.com/pydantic/logfire-setup/internal/mcp"
	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/ui"
)

// detectCmd reports what setup would find, without prompting or installing.
var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Show which Logfire integrations apply to a project",
	Long: `Detect inspects a project's manifests and reports the Logfire integrations
matching its declared dependencies, along with the MCP configuration status.
It never prompts, installs, or writes files, so it is safe for scripts and CI.

Example usage:
  logfire-setup detect                  # Inspect the current directory
  logfire-setup detect --output json    # Machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
}

// detectReport is the JSON shape of one detect run.
type detectReport struct {
	Path             string     `json:"path"`
	Languages        []string   `json:"languages,omitempty"`
	DeclaredPackages int        `json:"declared_packages"`
	DetectedExtras   []string   `json:"detected_extras"`
	Mcp              mcp.Status `json:"mcp"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	projectDir, err := resolveProjectDir(cmd, args)
	if err != nil {
		return err
	}
	outputFormat, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := &logger.StdoutLogger{}
	reg := registry.Default()

	var report detectReport
	report.Path = projectDir

	scan := func() error {
		languages, langErr := detector.ProjectLanguages(projectDir)
		if langErr != nil {
			return langErr
		}
		report.Languages = languages

		declared, manifestErr := manifest.ReadDeclaredPackages(projectDir)
		if manifestErr != nil && verbose {
			log.Logf("Manifest problem: %v\n", manifestErr)
		}
		report.DeclaredPackages = len(declared)

		res := detector.Detect(declared, reg)
		if cfg, cfgErr := config.Load(projectDir); cfgErr == nil && len(cfg.ExtraPatterns) > 0 {
			res, _ = detector.ApplyCustomPatterns(res, reg, cfg.ExtraPatterns)
		}
		report.DetectedExtras = res.Extras()

		homeDir, _ := os.UserHomeDir()
		report.Mcp = mcp.Check(projectDir, homeDir)
		return nil
	}

	if logger.IsInteractive() && outputFormat != "json" {
		err = ui.RunSpinner(cmd.Context(), "Inspecting project...", scan)
	} else {
		err = scan()
	}
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	printDetectReport(report, reg)
	return nil
}

func printDetectReport(report detectReport, reg *registry.Registry) {
	fmt.Printf("Project: %s\n", report.Path)
	if len(report.Languages) > 0 {
		fmt.Printf("Languages: %v\n", report.Languages)
	}
	fmt.Printf("Declared packages: %d\n", report.DeclaredPackages)

	if len(report.DetectedExtras) == 0 {
		fmt.Println("No known integrations detected.")
	} else {
		fmt.Println("Detected integrations:")
		for _, extra := range report.DetectedExtras {
			if integ, ok := reg.FindByExtra(extra); ok {
				fmt.Printf("  %s - %s\n", integ.DisplayName, integ.Description)
			}
		}
	}

	if report.Mcp.Configured {
		fmt.Printf("MCP: configured in %s", report.Mcp.Location)
		if !report.Mcp.HasReadToken {
			fmt.Print(" (no read token)")
		}
		fmt.Println()
	} else {
		fmt.Println("MCP: not configured")
	}
}
