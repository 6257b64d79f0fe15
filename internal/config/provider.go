package config

// ProviderConfig controls how we talk to TheSportsDB.
type ProviderConfig struct {
	// Name selects the upstream: "thesportsdb" or "fixture".
	Name              string
	BaseURL           string
	APIKey            string
	RelayURL          string
	RequestsPerMinute int
	RetryAttempts     int
}

func loadProvider() ProviderConfig {
	return ProviderConfig{
		Name:              envOrDefault(envProvider, defaultProvider),
		BaseURL:           envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
		APIKey:            envOrDefault(envSportsDBAPIKey, defaultSportsDBAPIKey),
		RelayURL:          envOrDefault(envRelayURL, ""),
		RequestsPerMinute: intEnvOrDefault(envRequestsPerMinute, defaultRequestsPerMinute),
		RetryAttempts:     intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
	}
}
