package projections

import (
	"context"

	"clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/location"
	"clubadmin/internal/domain/schedule"
)

// ScheduleActivityStore defines the store interface needed by this projection.
type ScheduleActivityStore interface {
	GetByID(ctx context.Context, id string) (activity.Activity, error)
}

// GetActivityScheduleDeps holds dependencies for the projection.
type GetActivityScheduleDeps struct {
	ActivityStore ScheduleActivityStore
}

// SlotView is one time slot resolved for display: location fallbacks
// applied and the geofence radius defaulted.
type SlotView struct {
	SlotKey          string
	Label            string
	StartTime        string
	EndTime          string
	IsActive         bool
	Activities       string
	ActivitiesHTML   string // rendered by the HTTP layer, empty here
	DetailedLocation string
	MapLocation      *location.Assignment
	Radius           int // effective check-in radius in meters
	LocationLabel    string
}

// DayView is one calendar day of the schedule with its decoded slots.
type DayView struct {
	Day          int
	Date         string
	WeekdayIndex int
	Slots        []SlotView
}

// WeekCell is one of the seven positions of a display week.
type WeekCell struct {
	WeekdayIndex int
	Day          *DayView // nil outside the activity's range
}

// WeekView is a 7-cell row of the paged multi-day layout.
type WeekView struct {
	WeekNumber int
	Days       []WeekCell
}

// ScheduleView is the full decoded schedule of an activity.
type ScheduleView struct {
	ActivityID string
	Title      string
	Kind       string
	Day        *DayView   // single-day activities
	Weeks      []WeekView // multi-day activities
}

// QueryGetActivitySchedule resolves an activity's schedule for display:
// multi-day raw text blobs are decoded, location fallbacks applied per
// slot, radii defaulted, and days laid out into fixed 7-day weeks.
// PRE: activityID is non-empty
// POST: Returns the decoded schedule; malformed day text degrades to
// empty slots, never an error
func QueryGetActivitySchedule(ctx context.Context, deps GetActivityScheduleDeps, activityID string) (ScheduleView, error) {
	a, err := deps.ActivityStore.GetByID(ctx, activityID)
	if err != nil {
		return ScheduleView{}, err
	}

	view := ScheduleView{ActivityID: a.ID, Title: a.Title, Kind: a.Kind}
	switch a.Kind {
	case activity.KindSingleDay:
		day := singleDayView(a)
		view.Day = &day
	case activity.KindMultipleDays:
		view.Weeks = multiDayWeeks(a)
	}
	return view, nil
}

// singleDayView builds the day view of a single-day activity from its
// authored time slots. Per-slot map locations fall back to the global
// assignment.
func singleDayView(a activity.Activity) DayView {
	day := DayView{Day: 1, Date: a.Date}
	for _, s := range a.TimeSlots {
		loc := s.Location
		if loc == nil {
			loc = a.Location
		}
		sv := SlotView{
			SlotKey:          s.SlotKey,
			Label:            activity.SlotLabel(s.SlotKey),
			StartTime:        s.StartTime,
			EndTime:          s.EndTime,
			IsActive:         s.IsActive,
			Activities:       s.Activities,
			DetailedLocation: s.DetailedLocation,
			MapLocation:      loc,
			Radius:           loc.EffectiveRadius(),
		}
		switch {
		case loc != nil:
			sv.LocationLabel = loc.Address
		default:
			sv.LocationLabel = s.DetailedLocation
		}
		day.Slots = append(day.Slots, sv)
	}
	return day
}

// multiDayWeeks decodes every day blob and lays the days out into weeks.
func multiDayWeeks(a activity.Activity) []WeekView {
	dayViews := make(map[int]*DayView, len(a.Schedule))
	for _, ds := range a.Schedule {
		decoded := schedule.DecodeDay(ds.RawText)
		dv := &DayView{Day: ds.Day, Date: ds.Date}
		for _, rec := range decoded.Slots {
			resolved := schedule.ResolveSlot(rec, decoded)
			dv.Slots = append(dv.Slots, SlotView{
				SlotKey:          rec.SlotKey,
				Label:            activity.SlotLabel(rec.SlotKey),
				StartTime:        rec.StartTime,
				EndTime:          rec.EndTime,
				IsActive:         true,
				Activities:       rec.Activities,
				DetailedLocation: resolved.DetailedLocation,
				MapLocation:      resolved.MapLocation,
				Radius:           resolved.MapLocation.EffectiveRadius(),
				LocationLabel:    schedule.DisplayLabel(rec, decoded),
			})
		}
		dayViews[ds.Day] = dv
	}

	weeks := schedule.GroupIntoWeeks(a.Schedule)
	views := make([]WeekView, 0, len(weeks))
	for _, w := range weeks {
		wv := WeekView{WeekNumber: w.WeekNumber}
		for _, slot := range w.Days {
			cell := WeekCell{WeekdayIndex: slot.WeekdayIndex}
			if slot.Schedule != nil {
				if dv, ok := dayViews[slot.Schedule.Day]; ok {
					dv.WeekdayIndex = slot.WeekdayIndex
					cell.Day = dv
				}
			}
			wv.Days = append(wv.Days, cell)
		}
		views = append(views, wv)
	}
	return views
}
