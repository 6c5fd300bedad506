package normalize

import "strings"

// Program-name prefixes stripped from V5 / VEX U season names so the
// headers read "2024-2025" instead of the full program title. Any other
// season name passes through unchanged.
var seasonPrefixes = []string{
	"VEX V5 Robotics Competition ",
	"VEX U Robotics Competition ",
	"V5RC ",
}

// SeasonLabel normalizes a season name for display grouping.
func SeasonLabel(name string) string {
	for _, prefix := range seasonPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
