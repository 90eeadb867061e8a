package instructions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// agentFileCandidates are checked in order; the first existing file wins.
var agentFileCandidates = []string{
	"AGENTS.md",
	"CLAUDE.md",
	filepath.Join(".claude", "AGENTS.md"),
	filepath.Join(".claude", "CLAUDE.md"),
}

// FindAgentFile locates an existing AGENTS.md/CLAUDE.md for the project,
// resolving symlinks so a shared file outside the project is edited in place.
// Returns "" when none exists.
func FindAgentFile(projectDir string) string {
	for _, candidate := range agentFileCandidates {
		path := filepath.Join(projectDir, candidate)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			return resolved
		}
		return path
	}
	return ""
}

// HasLogfireInstructions reports whether the file already carries Logfire
// guidance, to avoid appending duplicates.
func HasLogfireInstructions(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	text := string(content)
	return strings.Contains(text, "logfire.configure(") ||
		strings.Contains(text, "https://logfire.pydantic.dev")
}

// WriteToProject appends the document to the project's agent file, or creates
// AGENTS.md when none exists. Returns the path written to.
func WriteToProject(doc Document, projectDir string) (string, error) {
	markdown := doc.Markdown()

	if existing := FindAgentFile(projectDir); existing != "" {
		if HasLogfireInstructions(existing) {
			// Already present; treat as done rather than duplicating.
			return existing, nil
		}
		return existing, appendWithSeparator(existing, markdown)
	}

	path := filepath.Join(projectDir, "AGENTS.md")
	if err := os.WriteFile(path, []byte(markdown+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	return path, nil
}

func appendWithSeparator(path, markdown string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 {
		if !strings.HasSuffix(string(existing), "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n---\n\n")
	}
	b.WriteString(markdown)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
