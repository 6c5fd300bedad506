package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.RobotEvents.BaseURL != defaultReBaseURL {
		t.Fatalf("expected default robotevents base url %s, got %s", defaultReBaseURL, cfg.RobotEvents.BaseURL)
	}
	if cfg.RobotEvents.Token != "" {
		t.Fatalf("expected empty robotevents token by default, got %s", cfg.RobotEvents.Token)
	}
	if cfg.EventsStartAfter != defaultEventsStartAfter {
		t.Fatalf("expected default events start date, got %s", cfg.EventsStartAfter)
	}

	wantHistory := defaultHistorySeasonHi - defaultHistorySeasonLo + 1
	if len(cfg.HistorySeasonIDs) != wantHistory {
		t.Fatalf("expected %d history seasons, got %d", wantHistory, len(cfg.HistorySeasonIDs))
	}
	if cfg.HistorySeasonIDs[0] != defaultHistorySeasonLo {
		t.Fatalf("expected history seasons to start at %d, got %d", defaultHistorySeasonLo, cfg.HistorySeasonIDs[0])
	}

	wantAwards := defaultAwardsSeasonHi - defaultAwardsSeasonLo + 1
	if len(cfg.AwardsSeasonIDs) != wantAwards {
		t.Fatalf("expected %d awards seasons, got %d", wantAwards, len(cfg.AwardsSeasonIDs))
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envReBaseURL, "http://example.com/api/v2")
	t.Setenv(envReToken, "secret-token")
	t.Setenv(envHistorySeasons, "190-192")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.RobotEvents.BaseURL != "http://example.com/api/v2" {
		t.Fatalf("expected robotevents base url override, got %s", cfg.RobotEvents.BaseURL)
	}
	if cfg.RobotEvents.Token != "secret-token" {
		t.Fatalf("expected robotevents token override, got %s", cfg.RobotEvents.Token)
	}
	if len(cfg.HistorySeasonIDs) != 3 || cfg.HistorySeasonIDs[0] != 190 || cfg.HistorySeasonIDs[2] != 192 {
		t.Fatalf("expected history seasons 190..192, got %v", cfg.HistorySeasonIDs)
	}
}

func TestSeasonRangeFallsBackOnMalformedValue(t *testing.T) {
	for _, bad := range []string{"banana", "200-190", "-5-10", "190"} {
		t.Setenv(envHistorySeasons, bad)

		cfg := Load()

		want := defaultHistorySeasonHi - defaultHistorySeasonLo + 1
		if len(cfg.HistorySeasonIDs) != want || cfg.HistorySeasonIDs[0] != defaultHistorySeasonLo {
			t.Fatalf("expected default history seasons for %q, got %v", bad, cfg.HistorySeasonIDs)
		}
	}
}
