package config

import (
	"os"
	"strings"
)

// Auth configures the /api auth middleware.
type Auth struct {
	Type      string // "basic" (default) or "key"
	User      string
	Pass      string
	APIKey    string
	SkipPaths []string
}

// LoadAuthConfig reads AUTH_TYPE, API_USER, API_PASS, API_KEY and AUTH_SKIP_PATHS.
func LoadAuthConfig() Auth {
	a := Auth{
		Type:      envOrDefault("AUTH_TYPE", "basic"),
		User:      os.Getenv("API_USER"),
		Pass:      os.Getenv("API_PASS"),
		APIKey:    os.Getenv("API_KEY"),
		SkipPaths: []string{"/graphql", "/playground"},
	}
	if v := os.Getenv("AUTH_SKIP_PATHS"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				a.SkipPaths = append(a.SkipPaths, p)
			}
		}
	}
	return a
}
