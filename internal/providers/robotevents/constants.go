package robotevents

import "time"

const (
	providerName = "robotevents"

	defaultBaseURL     = "https://www.robotevents.com/api/v2"
	defaultPerPage     = 250
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 8

	// Upstream enforces roughly one request per second per token.
	defaultRequestsPerMinute = 60

	userAgent = "vex-stats-service/1.0"
)
