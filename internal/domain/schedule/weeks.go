package schedule

import (
	"time"

	"clubadmin/internal/domain/activity"
)

// DaysPerWeek is the fixed width of a display week.
const DaysPerWeek = 7

// DaySlot is one of the seven positions of a display week. Schedule is
// nil when the position falls outside the activity's day range.
type DaySlot struct {
	WeekdayIndex int // 0=Monday .. 6=Sunday
	Schedule     *activity.DaySchedule
}

// Week is a fixed 7-slot row of the paged schedule display.
// INVARIANT: len(Days) == DaysPerWeek; WeekNumber is 1-based
type Week struct {
	WeekNumber int
	Days       []DaySlot
}

// GroupIntoWeeks lays an ordered, contiguous day list out into fixed
// 7-day display weeks. Positions before the first day and after the
// last day of each week are padded with empty slots. An empty input
// produces zero weeks.
func GroupIntoWeeks(days []activity.DaySchedule) []Week {
	var weeks []Week
	var cur *Week
	prevIdx := -1

	closeWeek := func() {
		for len(cur.Days) < DaysPerWeek {
			cur.Days = append(cur.Days, DaySlot{WeekdayIndex: len(cur.Days)})
		}
		weeks = append(weeks, *cur)
		cur = nil
	}

	for i := range days {
		idx := weekdayIndex(days[i].Date)
		if idx < 0 {
			// Unparseable date: place sequentially after the previous
			// day so the input is never dropped.
			idx = (prevIdx + 1) % DaysPerWeek
		}
		if cur != nil && (prevIdx == DaysPerWeek-1 || idx < len(cur.Days)) {
			closeWeek()
		}
		if cur == nil {
			cur = &Week{WeekNumber: len(weeks) + 1}
		}
		for len(cur.Days) < idx {
			cur.Days = append(cur.Days, DaySlot{WeekdayIndex: len(cur.Days)})
		}
		cur.Days = append(cur.Days, DaySlot{WeekdayIndex: idx, Schedule: &days[i]})
		prevIdx = idx
	}
	if cur != nil {
		closeWeek()
	}
	return weeks
}

// weekdayIndex converts a YYYY-MM-DD date to a Monday-first weekday
// index, or -1 when the date does not parse.
func weekdayIndex(date string) int {
	t, err := time.Parse(activity.DateLayout, date)
	if err != nil {
		return -1
	}
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

// ClampWeekIndex clamps a current-week index to the valid range for n
// weeks. With zero weeks the only sensible index is 0.
func ClampWeekIndex(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// PrevWeekIndex moves one week back, stopping at the first week.
func PrevWeekIndex(idx, n int) int {
	return ClampWeekIndex(idx-1, n)
}

// NextWeekIndex moves one week forward, stopping at the last week.
func NextWeekIndex(idx, n int) int {
	return ClampWeekIndex(idx+1, n)
}
