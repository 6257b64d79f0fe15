package thesportsdb

import "time"

const (
	providerName       = "thesportsdb"
	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "3"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
