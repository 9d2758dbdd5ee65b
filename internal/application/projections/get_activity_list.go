package projections

import (
	"context"
	"strings"
	"time"

	"clubadmin/internal/application/listutil"
	"clubadmin/internal/domain/activity"
)

// ListActivityStore defines the store interface needed by this projection.
type ListActivityStore interface {
	List(ctx context.Context) ([]activity.Activity, error)
}

// GetActivityListQuery carries query parameters.
type GetActivityListQuery struct {
	Page   listutil.PageParams
	Filter listutil.FilterParams
}

// ActivityListRow is one row of the paginated activity table.
type ActivityListRow struct {
	ID        string
	Title     string
	Kind      string
	StartDate string // the single date for single-day activities
	EndDate   string
	Phase     activity.Phase
}

// GetActivityListResult carries the query result.
type GetActivityListResult struct {
	Rows     []ActivityListRow
	PageInfo listutil.PageInfo
}

// GetActivityListDeps holds dependencies for GetActivityList.
type GetActivityListDeps struct {
	ActivityStore ListActivityStore
}

// QueryGetActivityList returns one page of the activity table, filtered
// by kind and free-text title search, each row carrying its temporal
// phase for the status column.
// PRE: Valid query parameters (defaults applied by listutil)
// POST: Returns matching rows for the requested page with page metadata
func QueryGetActivityList(ctx context.Context, now time.Time, query GetActivityListQuery, deps GetActivityListDeps) (GetActivityListResult, error) {
	all, err := deps.ActivityStore.List(ctx)
	if err != nil {
		return GetActivityListResult{}, err
	}

	kind := query.Filter.Filters["kind"]
	search := strings.ToLower(strings.TrimSpace(query.Filter.Search))

	var matched []activity.Activity
	for _, a := range all {
		if kind != "" && a.Kind != kind {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.Title), search) {
			continue
		}
		matched = append(matched, a)
	}

	info := listutil.NewPageInfo(query.Page.Page, query.Page.PerPage, len(matched))
	start, end := info.Bounds()

	rows := make([]ActivityListRow, 0, end-start)
	for _, a := range matched[start:end] {
		row := ActivityListRow{
			ID:    a.ID,
			Title: a.Title,
			Kind:  a.Kind,
			Phase: activity.Classify(now, a),
		}
		if a.Kind == activity.KindSingleDay {
			row.StartDate, row.EndDate = a.Date, a.Date
		} else {
			row.StartDate, row.EndDate = a.StartDate, a.EndDate
		}
		rows = append(rows, row)
	}
	return GetActivityListResult{Rows: rows, PageInfo: info}, nil
}
