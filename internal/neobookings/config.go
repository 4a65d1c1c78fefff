// Package neobookings binds the Neobookings reservation API: environment
// configuration, the request/response envelope wire format, the error
// taxonomy, and the authenticated HTTP gateway.
package neobookings

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables consumed by ResolveConfig.
const (
	EnvClientCode = "NEO_CLIENT_CODE"
	EnvSystemCode = "NEO_SYSTEM_CODE"
	EnvUsername   = "NEO_USERNAME"
	EnvPassword   = "NEO_PASSWORD"
	EnvBaseURL    = "NEO_API_BASE_URL"
	EnvTimeout    = "NEO_API_TIMEOUT"
)

const defaultTimeout = 30 * time.Second

// Config carries everything needed to reach the API. It is a plain value:
// resolved fresh per invocation, owned by its caller, never cached.
type Config struct {
	ClientCode string
	SystemCode string
	Username   string
	Password   string
	BaseURL    string
	Timeout    time.Duration
}

// ConfigError reports an unusable environment. Missing lists every absent
// required variable, not just the first one found.
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required environment variables: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}

// ResolveConfig reads the NEO_* environment. All variables are required
// except NEO_API_TIMEOUT, which defaults to 30 seconds.
func ResolveConfig() (Config, error) {
	var missing []string
	get := func(name string) string {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}

	cfg := Config{
		ClientCode: get(EnvClientCode),
		SystemCode: get(EnvSystemCode),
		Username:   get(EnvUsername),
		Password:   get(EnvPassword),
		BaseURL:    get(EnvBaseURL),
		Timeout:    defaultTimeout,
	}
	if len(missing) > 0 {
		return Config{}, &ConfigError{Missing: missing}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if raw := strings.TrimSpace(os.Getenv(EnvTimeout)); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, &ConfigError{Reason: fmt.Sprintf("invalid %s value %q: want a positive number of seconds", EnvTimeout, raw)}
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
