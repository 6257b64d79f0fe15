package config

// GatewayConfig tunes the backwards day-scan.
type GatewayConfig struct {
	MaxDays            int
	EmptyStreakLimit   int
	DayDelay           Duration
	PostRateLimitDelay Duration
	RateLimitBackoff   Duration
	Cooldown           Duration
	MaxCooldownWait    Duration
}

func loadGateway() GatewayConfig {
	return GatewayConfig{
		MaxDays:            intEnvOrDefault(envScanMaxDays, defaultScanMaxDays),
		EmptyStreakLimit:   intEnvOrDefault(envScanEmptyStreak, defaultScanEmptyStreak),
		DayDelay:           durationEnvOrDefault(envScanDayDelay, defaultScanDayDelay),
		PostRateLimitDelay: durationEnvOrDefault(envScanRateLimitDelay, defaultScanRateLimitDelay),
		RateLimitBackoff:   durationEnvOrDefault(envRateLimitBackoff, defaultRateLimitBackoff),
		Cooldown:           durationEnvOrDefault(envRateLimitCooldown, defaultRateLimitCooldown),
		MaxCooldownWait:    durationEnvOrDefault(envMaxCooldownWait, defaultMaxCooldownWait),
	}
}
