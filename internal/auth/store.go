package auth

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// tokenEntry is one named token in the user credential store. The store maps
// API base URLs to tokens, each with an expiration timestamp.
type tokenEntry struct {
	Token      string `toml:"token"`
	Expiration string `toml:"expiration"`
}

type userStore struct {
	Tokens map[string]tokenEntry `toml:"tokens"`
}

// DefaultStorePath returns the per-user credential store location,
// ~/.logfire/default.toml. The engine only ever reads it; `logfire auth`
// owns writes.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".logfire", "default.toml")
}

// ReadUserToken reads the credential store and returns the first non-expired
// token together with its API base URL. A missing or unreadable store, or a
// store with only expired tokens, yields ok=false; none of these are errors.
func ReadUserToken(storePath string, now time.Time) (token, baseURL string, ok bool) {
	if storePath == "" {
		return "", "", false
	}
	var store userStore
	if _, err := toml.DecodeFile(storePath, &store); err != nil {
		return "", "", false
	}
	for url, entry := range store.Tokens {
		if entry.Token == "" {
			continue
		}
		if expiry, err := parseExpiration(entry.Expiration); err == nil && now.Before(expiry) {
			return entry.Token, url, true
		}
	}
	return "", "", false
}

// parseExpiration accepts RFC3339 and the zone-less variant the Python SDK
// writes, which is treated as UTC.
func parseExpiration(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
