package config

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envHistorySeasons = "HISTORY_SEASONS"
	envAwardsSeasons  = "AWARDS_SEASONS"
	envEventsAfter    = "EVENTS_START_AFTER"
	envMetricsOn      = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "robotevents"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"

	// Season id windows for the query-heavy screens. RobotEvents season ids
	// grow monotonically per program year; these cover the V5RC seasons the
	// skills and awards screens care about.
	defaultHistorySeasonLo = 189
	defaultHistorySeasonHi = 202
	defaultAwardsSeasonLo  = 181
	defaultAwardsSeasonHi  = 210

	// Only events from this date forward count toward the awards join; older
	// events never carry awards we need dates for.
	defaultEventsStartAfter = "2023-08-01T00:00:00Z"
)
