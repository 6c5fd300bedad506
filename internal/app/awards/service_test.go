package awards

import (
	"context"
	"testing"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/testutil"
	"github.com/jayala/vex-stats-service/internal/view"
)

func TestFetchResolvesDatesAndSortsNewestFirst(t *testing.T) {
	provider := &testutil.StubProvider{
		EventsFn: func(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error) {
			if startAfter != "2023-08-01T00:00:00Z" {
				t.Fatalf("expected configured start date, got %q", startAfter)
			}
			return []domain.EventRef{
				{ID: 101, Name: "Winter Open", Start: "2024-01-20T00:00:00-05:00"},
				{ID: 102, Name: "Spring Regional", Start: "2024-03-02T00:00:00-05:00"},
			}, nil
		},
		AwardsFn: func(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
			return []domain.AwardRecord{
				{Title: "Design Award (VRC/VEXU)", EventID: 101, EventName: "Winter Open", HasEvent: true, SeasonName: "VEX V5 Robotics Competition 2023-2024: Over Under"},
				{Title: "Tournament Champions (VRC/VEXU)", EventID: 102, EventName: "Spring Regional", HasEvent: true, SeasonName: "VEX V5 Robotics Competition 2023-2024: Over Under"},
				{Title: "Judges Award", HasEvent: false},
			}, nil
		},
	}

	s := NewService(provider, nil, metrics.NewRecorder(), []int{181, 182}, "2023-08-01T00:00:00Z")
	model, err := s.Fetch(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := make([]view.AwardRow, 0, len(model.Items))
	for _, item := range model.Items {
		if item.Kind == view.KindRow {
			rows = append(rows, *item.Row)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 award rows, got %d", len(rows))
	}

	// Newest dated row first, undated row trailing.
	if rows[0].Title != "Tournament Champions" || rows[0].DisplayDate != "03/02/24" {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].EventName != "Winter Open" || rows[1].DisplayDate != "01/20/24" {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
	if rows[2].EventName != domain.UnknownEventName || rows[2].DisplayDate != "TBD" {
		t.Fatalf("expected trailing unknown-event row, got %+v", rows[2])
	}

	if _, ok := s.Latest(42); !ok {
		t.Fatal("expected snapshot to be stored")
	}
}

func TestFetchFailsWhenEitherPageFails(t *testing.T) {
	provider := &testutil.StubProvider{
		AwardsFn: func(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
			return nil, &providers.ServerError{Provider: "test", Operation: "awards", StatusCode: 502}
		},
	}

	s := NewService(provider, nil, metrics.NewRecorder(), []int{181}, "")
	_, err := s.Fetch(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}
	agg, ok := fetch.AsAggregateError(err)
	if !ok || agg.Screen != "awards" {
		t.Fatalf("expected awards aggregate error, got %v", err)
	}
	if got := s.Status().Phase; got != fetch.PhaseFailure {
		t.Fatalf("expected failure phase, got %s", got)
	}
}
