package mcp

// genericReadTokenURL is used when no project is bound; it redirects to the
// latest project's settings in the Logfire console.
const genericReadTokenURL = "https://logfire.pydantic.dev/-/redirect/latest-project/settings/read-tokens"

// ReadTokenURL builds the link for creating a read token. With a bound
// project the link is project-specific; otherwise the generic redirect.
func ReadTokenURL(projectURL string) string {
	if projectURL == "" {
		return genericReadTokenURL
	}
	return projectURL + "/settings/read-tokens/new"
}

var configExamples = map[string]string{
	"cursor": `{
  "mcpServers": {
    "logfire": {
      "command": "uvx",
      "args": ["logfire-mcp@latest", "--read-token=YOUR_TOKEN"]
    }
  }
}`,
	"claude-desktop": `{
  "mcpServers": {
    "logfire": {
      "command": ["uvx"],
      "args": ["logfire-mcp@latest"],
      "type": "stdio",
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      }
    }
  }
}`,
	"cline": `{
  "mcpServers": {
    "logfire": {
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      },
      "disabled": false,
      "autoApprove": []
    }
  }
}`,
	"claude-code": `Run: claude mcp add logfire -e LOGFIRE_READ_TOKEN=YOUR_TOKEN -- uvx logfire-mcp@latest`,
	"vs-code": `{
  "servers": {
    "logfire": {
      "type": "stdio",
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      }
    }
  }
}`,
	"zed": `{
  "context_servers": {
    "logfire": {
      "source": "custom",
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      },
      "enabled": true
    }
  }
}`,
}

// ConfigExample returns the MCP setup snippet for a client; unknown clients
// get the cursor example.
func ConfigExample(client string) string {
	if example, ok := configExamples[client]; ok {
		return example
	}
	return configExamples["cursor"]
}
