package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A cold scan walks up to SCAN_MAX_DAYS paced provider calls before it can answer.
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
