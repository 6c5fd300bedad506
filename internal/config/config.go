package config

// Config holds runtime configuration for the server.
type Config struct {
	Port             string
	Provider         string
	LogLevel         string
	LogFormat        string
	HistorySeasonIDs []int
	AwardsSeasonIDs  []int
	EventsStartAfter string
	RobotEvents      RobotEventsConfig
	Metrics          MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		Provider:         envOrDefault(envProvider, defaultProvider),
		LogLevel:         envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:        envOrDefault(envLogFormat, defaultLogFormat),
		HistorySeasonIDs: seasonRangeEnvOrDefault(envHistorySeasons, defaultHistorySeasonLo, defaultHistorySeasonHi),
		AwardsSeasonIDs:  seasonRangeEnvOrDefault(envAwardsSeasons, defaultAwardsSeasonLo, defaultAwardsSeasonHi),
		EventsStartAfter: envOrDefault(envEventsAfter, defaultEventsStartAfter),
		RobotEvents:      loadRobotEvents(),
		Metrics:          loadMetrics(),
	}
}
