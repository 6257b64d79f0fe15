package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider.Name != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider.Name)
	}
	if cfg.Provider.BaseURL != defaultSportsDBBaseURL || cfg.Provider.APIKey != defaultSportsDBAPIKey {
		t.Fatalf("unexpected provider defaults %+v", cfg.Provider)
	}
	if cfg.Provider.RelayURL != "" {
		t.Fatalf("expected no relay by default, got %s", cfg.Provider.RelayURL)
	}
	if cfg.Timezone != defaultTimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultTimezone, cfg.Timezone)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS origin, got %v", cfg.CORSOrigins)
	}
}

func TestLoadGatewayDefaults(t *testing.T) {
	g := Load().Gateway

	if g.MaxDays != 30 || g.EmptyStreakLimit != 3 {
		t.Fatalf("unexpected scan bounds %+v", g)
	}
	if g.DayDelay != 300*time.Millisecond || g.PostRateLimitDelay != time.Second || g.RateLimitBackoff != 2*time.Second {
		t.Fatalf("unexpected scan delays %+v", g)
	}
	if g.Cooldown != 30*time.Second || g.MaxCooldownWait != 30*time.Second {
		t.Fatalf("unexpected cooldown settings %+v", g)
	}
}

func TestLoadCacheDefaults(t *testing.T) {
	c := Load().Cache

	if c.Backend != "memory" {
		t.Fatalf("expected memory backend, got %s", c.Backend)
	}
	if c.GamesTTL != 10*time.Minute || c.HighlightsTTL != 30*time.Minute || c.Retention != 7*24*time.Hour {
		t.Fatalf("unexpected cache horizons %+v", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "thesportsdb")
	t.Setenv(envSportsDBBaseURL, "http://example.com/api")
	t.Setenv(envSportsDBAPIKey, "secret-key")
	t.Setenv(envRelayURL, "https://relay.example.com/get")
	t.Setenv(envCORSOrigins, "https://a.example.com, https://b.example.com,")
	t.Setenv(envScanMaxDays, "10")
	t.Setenv(envMaxCooldownWait, "5s")
	t.Setenv(envCacheBackend, "redis")
	t.Setenv(envRedisDB, "2")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider.Name != "thesportsdb" {
		t.Fatalf("expected provider thesportsdb, got %s", cfg.Provider.Name)
	}
	if cfg.Provider.BaseURL != "http://example.com/api" || cfg.Provider.APIKey != "secret-key" {
		t.Fatalf("expected provider overrides, got %+v", cfg.Provider)
	}
	if cfg.Provider.RelayURL != "https://relay.example.com/get" {
		t.Fatalf("expected relay override, got %s", cfg.Provider.RelayURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.CORSOrigins)
	}
	if cfg.Gateway.MaxDays != 10 || cfg.Gateway.MaxCooldownWait != 5*time.Second {
		t.Fatalf("expected gateway overrides, got %+v", cfg.Gateway)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisDB != 2 {
		t.Fatalf("expected cache overrides, got %+v", cfg.Cache)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}
