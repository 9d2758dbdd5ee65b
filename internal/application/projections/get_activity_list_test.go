package projections

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clubadmin/internal/application/listutil"
	"clubadmin/internal/domain/activity"
)

// TestQueryGetActivityList tests filtering and pagination of the
// activity table.
func TestQueryGetActivityList(t *testing.T) {
	activities := map[string]activity.Activity{}
	for i := 1; i <= 25; i++ {
		id := fmt.Sprintf("a%02d", i)
		activities[id] = activity.Activity{
			ID:    id,
			Title: fmt.Sprintf("Sinh hoạt tháng %d", i),
			Kind:  activity.KindSingleDay,
			Date:  "2026-03-02",
		}
	}
	activities["camp"] = activity.Activity{
		ID:        "camp",
		Title:     "Chiến dịch Mùa hè xanh",
		Kind:      activity.KindMultipleDays,
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	}
	store := &mockActivityStore{activities: activities}
	deps := GetActivityListDeps{ActivityStore: store}
	now := time.Date(2026, 7, 5, 12, 0, 0, 0, time.UTC)

	// Kind filter narrows to the one campaign, with its date range and
	// phase resolved.
	got, err := QueryGetActivityList(context.Background(), now, GetActivityListQuery{
		Page:   listutil.PageParams{Page: 1, PerPage: 20},
		Filter: listutil.FilterParams{Filters: map[string]string{"kind": activity.KindMultipleDays}},
	}, deps)
	if err != nil {
		t.Fatalf("expected list, got: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got.Rows))
	}
	row := got.Rows[0]
	if row.StartDate != "2026-07-01" || row.EndDate != "2026-07-10" {
		t.Fatalf("expected campaign date range, got %s..%s", row.StartDate, row.EndDate)
	}
	if row.Phase != activity.PhaseDuring {
		t.Fatalf("expected during, got %s", row.Phase)
	}

	// Pagination: 26 activities, 20 per page.
	got, err = QueryGetActivityList(context.Background(), now, GetActivityListQuery{
		Page: listutil.PageParams{Page: 2, PerPage: 20},
	}, deps)
	if err != nil {
		t.Fatalf("expected list, got: %v", err)
	}
	if got.PageInfo.Total != 26 || got.PageInfo.TotalPages != 2 {
		t.Fatalf("expected 26 rows over 2 pages, got %+v", got.PageInfo)
	}
	if len(got.Rows) != 6 {
		t.Fatalf("expected 6 rows on page 2, got %d", len(got.Rows))
	}

	// Case-insensitive title search.
	got, err = QueryGetActivityList(context.Background(), now, GetActivityListQuery{
		Page:   listutil.PageParams{Page: 1, PerPage: 20},
		Filter: listutil.FilterParams{Search: "mùa hè"},
	}, deps)
	if err != nil {
		t.Fatalf("expected list, got: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].ID != "camp" {
		t.Fatalf("expected search to find the campaign, got %+v", got.Rows)
	}
}
