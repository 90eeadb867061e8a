package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// projectCredentials is the shape of .logfire/logfire_credentials.json,
// written by `logfire projects use`.
type projectCredentials struct {
	ProjectName string `json:"project_name"`
	ProjectURL  string `json:"project_url"`
}

// ReadProjectCredentials returns the project URL from an existing local
// project binding, if any. Absence or malformed content is "no binding",
// never an error.
func ReadProjectCredentials(projectDir string) (projectURL string, ok bool) {
	path := filepath.Join(projectDir, ".logfire", "logfire_credentials.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var creds projectCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", false
	}
	if creds.ProjectURL == "" {
		return "", false
	}
	return creds.ProjectURL, true
}
