package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Project is one remote project reachable with the user's token.
type Project struct {
	ID               string `json:"id,omitempty"`
	OrganizationName string `json:"organization_name"`
	ProjectName      string `json:"project_name"`
	ProjectURL       string `json:"project_url,omitempty"`
}

// Path returns the org/name label shown to the user.
func (p Project) Path() string {
	return p.OrganizationName + "/" + p.ProjectName
}

// ProjectsClient lists the projects writable with a bearer token. Transport
// details, timeouts and retry policy are the implementation's concern.
type ProjectsClient interface {
	ListProjects(ctx context.Context, baseURL, token string) ([]Project, error)
}

// HTTPProjectsClient talks to the Logfire API.
type HTTPProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates an API client with a bounded request timeout.
func NewProjectsClient() *HTTPProjectsClient {
	return &HTTPProjectsClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPProjectsClient) ListProjects(ctx context.Context, baseURL, token string) ([]Project, error) {
	url := strings.TrimSuffix(baseURL, "/") + "/v1/writable-projects/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("projects API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects response: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects response: %w", err)
	}
	return projects, nil
}
