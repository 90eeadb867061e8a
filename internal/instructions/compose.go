package instructions

import (
	"fmt"
	"strings"

	"github.com/pydantic/logfire-setup/internal/mcp"
	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/selection"
)

// Section is one titled block of the generated document.
type Section struct {
	Title string
	Body  string
}

// Document is the ordered sequence of sections handed to the renderer/writer.
// The composer never decides the target file or performs the write.
type Document struct {
	Sections []Section
}

// Markdown renders the document as a single markdown string.
func (d Document) Markdown() string {
	var b strings.Builder
	for i, section := range d.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		b.WriteString(strings.TrimRight(section.Body, "\n"))
		b.WriteString("\n")
	}
	return "# Logfire\n\n" + b.String()
}

// Compose builds the usage document for the confirmed integrations. The core
// section always comes first regardless of selection size; integration and
// MCP sections follow only when applicable.
func Compose(set selection.Set, reg *registry.Registry, status mcp.Status, projectURL string) Document {
	doc := Document{Sections: coreSections()}

	if status.Configured {
		doc.Sections = append(doc.Sections, mcpSection(status, projectURL))
	}

	if body := instrumentationBody(set, reg); body != "" {
		doc.Sections = append(doc.Sections, Section{Title: "Instrumentation", Body: body})
	}

	doc.Sections = append(doc.Sections, Section{
		Title: "Resources",
		Body: "- Docs: https://logfire.pydantic.dev/docs/\n" +
			"- API Reference: https://logfire.pydantic.dev/docs/reference/api/logfire/\n",
	})
	return doc
}

func coreSections() []Section {
	return []Section{
		{
			Title: "Setup",
			Body: "```python\n" +
				"import logfire\n\n" +
				"logfire.configure(send_to_logfire='if-token-present')\n" +
				"```\n\n" +
				"For production, use the `LOGFIRE_TOKEN` environment variable with write tokens.\n",
		},
		{
			Title: "Logging Patterns",
			Body: "### Spans\n\n" +
				"Spans create parent-child relationships and measure duration:\n\n" +
				"```python\n" +
				"with logfire.span('processing_order', order_id=order_id):\n" +
				"    ...\n" +
				"```\n\n" +
				"### F-Strings (Python 3.11+)\n\n" +
				"Logfire automatically extracts variable names from f-strings:\n\n" +
				"```python\n" +
				"logfire.info(f'Hello {name}')  # Automatically sets name attribute\n" +
				"```\n\n" +
				"### Structured Attributes\n\n" +
				"```python\n" +
				"logfire.info('Operation complete', status='success', duration_ms=123)\n" +
				"```\n\n" +
				"### Exception Handling\n\n" +
				"Unhandled exceptions are recorded automatically. For caught exceptions:\n\n" +
				"```python\n" +
				"try:\n" +
				"    risky_operation()\n" +
				"except Exception as e:\n" +
				"    logfire.exception('Operation failed', error_type=type(e).__name__)\n" +
				"```\n\n" +
				"### Function Tracing\n\n" +
				"```python\n" +
				"@logfire.instrument()  # Must be first/outermost decorator\n" +
				"def my_function(x, y):\n" +
				"    return x + y\n" +
				"```\n\n" +
				"Available levels: trace, debug, info, notice, warn, error, fatal.\n",
		},
		{
			Title: "Data Privacy",
			Body: "Logfire automatically scrubs passwords, secrets, API keys, cookies, session tokens,\n" +
				"credit cards, SSNs, and JWT tokens. Prefer message templates over string\n" +
				"concatenation so scrubbing keeps working.\n",
		},
	}
}

func mcpSection(status mcp.Status, projectURL string) Section {
	body := "The Logfire MCP (Model Context Protocol) server is configured for this project. Use it to:\n\n" +
		"- **Query your Logfire data** during development\n" +
		"- **Debug issues** by inspecting traces, spans, and logs\n"
	if !status.HasReadToken {
		body += fmt.Sprintf("\nThe configuration is missing a read token. Create one at: %s\n", mcp.ReadTokenURL(projectURL))
	}
	return Section{Title: "Using Logfire MCP", Body: body}
}
