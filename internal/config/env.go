package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

// seasonRangeEnvOrDefault reads an inclusive "lo-hi" range (e.g. "189-202")
// and expands it to a list of season ids. Malformed or inverted ranges fall
// back to the defaults.
func seasonRangeEnvOrDefault(key string, defaultLo, defaultHi int) []int {
	lo, hi := defaultLo, defaultHi

	raw := strings.TrimSpace(os.Getenv(key))
	if raw != "" {
		parts := strings.SplitN(raw, "-", 2)
		if len(parts) == 2 {
			parsedLo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
			parsedHi, errHi := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errLo == nil && errHi == nil && parsedLo > 0 && parsedHi >= parsedLo {
				lo, hi = parsedLo, parsedHi
			}
		}
	}

	ids := make([]int, 0, hi-lo+1)
	for id := lo; id <= hi; id++ {
		ids = append(ids, id)
	}
	return ids
}
