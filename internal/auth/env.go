package auth

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// tokenEnvVar is the write-token variable the Logfire SDK reads at runtime.
const tokenEnvVar = "LOGFIRE_TOKEN"

// EnvToken looks for a write token outside the credential store: first in the
// process environment, then in the project's .env file. A token found here
// authenticates the SDK but carries no API base URL, so project listing is
// not possible with it.
func EnvToken(projectDir string) (token, source string, ok bool) {
	if v := os.Getenv(tokenEnvVar); v != "" {
		return v, "environment", true
	}

	envPath := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return "", "", false
	}
	cfg, err := ini.Load(envPath)
	if err != nil {
		return "", "", false
	}
	if v := cfg.Section("").Key(tokenEnvVar).String(); v != "" {
		return v, ".env file", true
	}
	return "", "", false
}
