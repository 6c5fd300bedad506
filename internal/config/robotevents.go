package config

const (
	envReBaseURL  = "ROBOTEVENTS_BASE_URL"
	envReToken    = "ROBOTEVENTS_TOKEN"
	envReRPM      = "ROBOTEVENTS_RPM"
	envReMaxPages = "ROBOTEVENTS_MAX_PAGES"

	defaultReBaseURL = "https://www.robotevents.com/api/v2"
)

// RobotEventsConfig controls how we talk to the RobotEvents API.
type RobotEventsConfig struct {
	BaseURL           string
	Token             string
	RequestsPerMinute int
	MaxPages          int
}

func loadRobotEvents() RobotEventsConfig {
	return RobotEventsConfig{
		BaseURL:           envOrDefault(envReBaseURL, defaultReBaseURL),
		Token:             envOrDefault(envReToken, ""),
		RequestsPerMinute: intEnvOrDefault(envReRPM, 0),
		MaxPages:          intEnvOrDefault(envReMaxPages, 0),
	}
}
