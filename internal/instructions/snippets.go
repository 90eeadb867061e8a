package instructions

import (
	"fmt"
	"strings"

	"github.com/pydantic/logfire-setup/internal/registry"
	"github.com/pydantic/logfire-setup/internal/selection"
)

// snippet groups: which extras render under which instrumentation heading.
var (
	webFrameworkExtras = []string{"fastapi", "django", "flask", "starlette"}
	httpClientExtras   = []string{"httpx", "requests", "aiohttp-client"}
	databaseExtras     = []string{"sqlalchemy", "asyncpg", "psycopg", "psycopg2", "pymongo", "redis", "mysql"}
	llmExtras          = []string{"pydantic-ai", "google-genai", "litellm"}
)

func contains(extras []string, extra string) bool {
	for _, e := range extras {
		if e == extra {
			return true
		}
	}
	return false
}

// instrumentationBody renders the per-integration code examples. Not every
// integration has a bespoke snippet; the core section covers the rest.
func instrumentationBody(set selection.Set, reg *registry.Registry) string {
	if len(set.ConfirmedExtras) == 0 {
		return ""
	}

	// Walk the registry (not the set) so output order is stable.
	var web, clients, databases, llm, other []registry.Integration
	for _, integ := range reg.All() {
		if !set.Contains(integ.Extra) {
			continue
		}
		switch {
		case contains(webFrameworkExtras, integ.Extra):
			web = append(web, integ)
		case contains(httpClientExtras, integ.Extra):
			clients = append(clients, integ)
		case contains(databaseExtras, integ.Extra):
			databases = append(databases, integ)
		case contains(llmExtras, integ.Extra):
			llm = append(llm, integ)
		default:
			other = append(other, integ)
		}
	}

	var b strings.Builder
	b.WriteString("```python\nimport logfire\n\nlogfire.configure(send_to_logfire='if-token-present')\n")

	writeGroup(&b, "Web framework", web, webFrameworkSnippet)
	writeGroup(&b, "HTTP clients", clients, httpClientSnippet)
	writeGroup(&b, "Databases", databases, databaseSnippet)
	writeGroup(&b, "LLM & AI", llm, llmSnippet)
	writeGroup(&b, "Other", other, otherSnippet)

	b.WriteString("```\n\n")
	b.WriteString("For detailed integration docs, see: https://logfire.pydantic.dev/docs/integrations/\n")
	return b.String()
}

func writeGroup(b *strings.Builder, heading string, integrations []registry.Integration, snippet func(registry.Integration) string) {
	if len(integrations) == 0 {
		return
	}
	fmt.Fprintf(b, "\n# %s\n", heading)
	for _, integ := range integrations {
		b.WriteString(snippet(integ))
	}
}

func webFrameworkSnippet(integ registry.Integration) string {
	switch integ.Extra {
	case "fastapi":
		return "logfire.instrument_fastapi(app)\n"
	case "django":
		return "logfire.instrument_django()\n"
	case "flask":
		return "logfire.instrument_flask(app)\n"
	case "starlette":
		return "logfire.instrument_starlette(app)\n"
	}
	return ""
}

func httpClientSnippet(integ registry.Integration) string {
	switch integ.Extra {
	case "httpx":
		return "# Global instrumentation (all clients)\n" +
			"logfire.instrument_httpx()\n\n" +
			"# Per-client instrumentation\n" +
			"async with httpx.AsyncClient() as client:\n" +
			"    logfire.instrument_httpx(client)\n"
	case "requests":
		return "logfire.instrument_requests()\n"
	case "aiohttp-client":
		return "logfire.instrument_aiohttp_client()\n"
	}
	return ""
}

func databaseSnippet(integ registry.Integration) string {
	switch integ.Extra {
	case "sqlalchemy":
		return "logfire.instrument_sqlalchemy(engine=engine)\n"
	case "asyncpg", "psycopg", "psycopg2":
		return fmt.Sprintf("# %s is auto-instrumented\n", integ.DisplayName)
	case "pymongo":
		return "logfire.instrument_pymongo()\n"
	case "redis":
		return "logfire.instrument_redis()\n"
	}
	return ""
}

func llmSnippet(integ registry.Integration) string {
	switch integ.Extra {
	case "pydantic-ai":
		return "logfire.instrument_pydantic_ai()\n"
	case "google-genai":
		return "# Google GenAI auto-instrumentation via opentelemetry\n"
	case "litellm":
		return "# LiteLLM auto-instrumentation via openinference\n"
	}
	return ""
}

func otherSnippet(integ registry.Integration) string {
	switch integ.Extra {
	case "celery":
		return "logfire.instrument_celery()\n"
	case "system-metrics":
		return "logfire.instrument_system_metrics()\n"
	}
	return ""
}
