package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "default.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadUserTokenValid(t *testing.T) {
	path := writeStore(t, `
[tokens."https://logfire-us.pydantic.dev"]
token = "pylf_v1_us_abc"
expiration = "2027-01-01T00:00:00Z"
`)

	token, baseURL, ok := ReadUserToken(path, testNow)
	require.True(t, ok)
	assert.Equal(t, "pylf_v1_us_abc", token)
	assert.Equal(t, "https://logfire-us.pydantic.dev", baseURL)
}

func TestReadUserTokenExpired(t *testing.T) {
	path := writeStore(t, `
[tokens."https://logfire-us.pydantic.dev"]
token = "pylf_v1_us_old"
expiration = "2025-01-01T00:00:00Z"
`)

	_, _, ok := ReadUserToken(path, testNow)
	assert.False(t, ok)
}

func TestReadUserTokenZonelessExpiration(t *testing.T) {
	path := writeStore(t, `
[tokens."https://logfire-eu.pydantic.dev"]
token = "pylf_v1_eu_abc"
expiration = "2027-06-01T00:00:00"
`)

	_, baseURL, ok := ReadUserToken(path, testNow)
	require.True(t, ok)
	assert.Equal(t, "https://logfire-eu.pydantic.dev", baseURL)
}

func TestReadUserTokenMissingFile(t *testing.T) {
	_, _, ok := ReadUserToken(filepath.Join(t.TempDir(), "nope.toml"), testNow)
	assert.False(t, ok)
}

func TestReadUserTokenMalformedStore(t *testing.T) {
	path := writeStore(t, "not [valid toml")
	_, _, ok := ReadUserToken(path, testNow)
	assert.False(t, ok)
}

func TestEnvTokenFromEnvironment(t *testing.T) {
	t.Setenv("LOGFIRE_TOKEN", "pylf_env")

	token, source, ok := EnvToken(t.TempDir())
	require.True(t, ok)
	assert.Equal(t, "pylf_env", token)
	assert.Equal(t, "environment", source)
}

func TestEnvTokenFromDotenvFile(t *testing.T) {
	t.Setenv("LOGFIRE_TOKEN", "")
	os.Unsetenv("LOGFIRE_TOKEN")

	dir := t.TempDir()
	envContent := "DEBUG=1\nLOGFIRE_TOKEN=pylf_dotenv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envContent), 0600))

	token, source, ok := EnvToken(dir)
	require.True(t, ok)
	assert.Equal(t, "pylf_dotenv", token)
	assert.Equal(t, ".env file", source)
}

func TestEnvTokenAbsent(t *testing.T) {
	t.Setenv("LOGFIRE_TOKEN", "")
	os.Unsetenv("LOGFIRE_TOKEN")

	_, _, ok := EnvToken(t.TempDir())
	assert.False(t, ok)
}

func TestReadProjectCredentials(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".logfire"), 0755))
	creds := `{"project_name": "backend", "project_url": "https://logfire-us.pydantic.dev/acme/backend"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".logfire", "logfire_credentials.json"), []byte(creds), 0600))

	url, ok := ReadProjectCredentials(dir)
	require.True(t, ok)
	assert.Equal(t, "https://logfire-us.pydantic.dev/acme/backend", url)
}

func TestReadProjectCredentialsAbsentOrMalformed(t *testing.T) {
	if _, ok := ReadProjectCredentials(t.TempDir()); ok {
		t.Error("expected no binding for empty dir")
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".logfire"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".logfire", "logfire_credentials.json"), []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok := ReadProjectCredentials(dir); ok {
		t.Error("expected no binding for malformed credentials")
	}
}
