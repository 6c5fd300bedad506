package teamlookup

import (
	"context"
	"errors"
	"testing"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/testutil"
)

func TestValidNumber(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"1234A", true},
		{"1234a", true}, // uppercased before matching
		{" 99x ", true},
		{"AB", true},
		{"A", false},
		{"", false},
		{"12345678901", false},
		{"12-34", false},
	}

	for _, tc := range cases {
		if got := ValidNumber(tc.number); got != tc.valid {
			t.Fatalf("ValidNumber(%q) = %v, want %v", tc.number, got, tc.valid)
		}
	}
}

func TestLookupNormalizesAndReturnsCandidates(t *testing.T) {
	provider := &testutil.StubProvider{
		TeamsFn: func(ctx context.Context, number string) ([]domain.Team, error) {
			if number != "1234A" {
				t.Fatalf("expected normalized number 1234A, got %q", number)
			}
			return []domain.Team{
				{ID: 42, Number: "1234A", Name: "Cyber Hawks", Program: domain.Program{Code: "V5RC"}},
				{ID: 77, Number: "1234A", Name: "Cyber Hawks JV", Program: domain.Program{Code: "VIQRC"}},
			}, nil
		},
	}

	s := NewService(provider, nil, metrics.NewRecorder())
	teams, err := s.Lookup(context.Background(), " 1234a ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 || teams[0].ID != 42 {
		t.Fatalf("unexpected candidates %+v", teams)
	}
}

func TestLookupRejectsInvalidNumber(t *testing.T) {
	called := false
	provider := &testutil.StubProvider{
		TeamsFn: func(ctx context.Context, number string) ([]domain.Team, error) {
			called = true
			return nil, nil
		},
	}

	s := NewService(provider, nil, metrics.NewRecorder())
	if _, err := s.Lookup(context.Background(), "!!"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if called {
		t.Fatal("expected no provider call for invalid input")
	}
}

func TestLookupWrapsProviderFailure(t *testing.T) {
	provider := &testutil.StubProvider{
		TeamsFn: func(ctx context.Context, number string) ([]domain.Team, error) {
			return nil, &providers.NetworkError{Provider: "test", Operation: "teams", Err: errors.New("dial tcp: timeout")}
		},
	}

	s := NewService(provider, nil, metrics.NewRecorder())
	_, err := s.Lookup(context.Background(), "1234A")
	if err == nil {
		t.Fatal("expected error")
	}
	if agg, ok := fetch.AsAggregateError(err); !ok || agg.Screen != "teamlookup" {
		t.Fatalf("expected teamlookup aggregate error, got %v", err)
	}
}
