package neobookings

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvClientCode, EnvSystemCode, EnvUsername, EnvPassword, EnvBaseURL, EnvTimeout} {
		t.Setenv(name, "")
	}
}

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvClientCode, "neo")
	t.Setenv(EnvSystemCode, "XML")
	t.Setenv(EnvUsername, "neomcp")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvBaseURL, "https://ws-test.example.com/api/v2")
}

func TestResolveConfigListsEveryMissingVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvClientCode, "neo")
	t.Setenv(EnvBaseURL, "https://ws-test.example.com/api/v2")

	_, err := ResolveConfig()
	if err == nil {
		t.Fatal("expected error for missing variables")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}

	want := []string{EnvSystemCode, EnvUsername, EnvPassword}
	if len(cfgErr.Missing) != len(want) {
		t.Fatalf("Missing = %v, want %v", cfgErr.Missing, want)
	}
	for i, name := range want {
		if cfgErr.Missing[i] != name {
			t.Fatalf("Missing = %v, want %v", cfgErr.Missing, want)
		}
	}
	for _, name := range want {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q does not name %s", err.Error(), name)
		}
	}
}

func TestResolveConfigDefaultsAndOverrides(t *testing.T) {
	clearEnv(t)
	setValidEnv(t)

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v, want 30s", cfg.Timeout)
	}

	t.Setenv(EnvTimeout, "5")
	cfg, err = ResolveConfig()
	if err != nil {
		t.Fatalf("ResolveConfig with timeout: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestResolveConfigRejectsBadTimeout(t *testing.T) {
	for _, tc := range []string{"abc", "-3", "0"} {
		t.Run(tc, func(t *testing.T) {
			clearEnv(t)
			setValidEnv(t)
			t.Setenv(EnvTimeout, tc)

			_, err := ResolveConfig()
			if err == nil {
				t.Fatalf("expected error for timeout %q", tc)
			}
			if !strings.Contains(err.Error(), EnvTimeout) {
				t.Fatalf("error %q does not name %s", err.Error(), EnvTimeout)
			}
		})
	}
}

func TestResolveConfigTrimsTrailingSlash(t *testing.T) {
	clearEnv(t)
	setValidEnv(t)
	t.Setenv(EnvBaseURL, "https://ws-test.example.com/api/v2/")

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.BaseURL != "https://ws-test.example.com/api/v2" {
		t.Fatalf("BaseURL = %q, want trailing slash stripped", cfg.BaseURL)
	}
}
