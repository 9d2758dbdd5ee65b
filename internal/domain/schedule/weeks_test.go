package schedule

import (
	"testing"
	"time"

	"clubadmin/internal/domain/activity"
)

// makeDays builds n contiguous DaySchedules starting at the given date.
func makeDays(t *testing.T, start string, n int) []activity.DaySchedule {
	t.Helper()
	first, err := time.Parse(activity.DateLayout, start)
	if err != nil {
		t.Fatalf("bad start date %q: %v", start, err)
	}
	days := make([]activity.DaySchedule, n)
	for i := 0; i < n; i++ {
		days[i] = activity.DaySchedule{
			Day:  i + 1,
			Date: first.AddDate(0, 0, i).Format(activity.DateLayout),
		}
	}
	return days
}

// TestGroupIntoWeeks_TenDaysFromWednesday tests the layout of 10
// contiguous days starting on a Wednesday: two weeks, with Mon/Tue of
// week 1 and Sat/Sun of week 2 empty.
func TestGroupIntoWeeks_TenDaysFromWednesday(t *testing.T) {
	days := makeDays(t, "2026-07-01", 10) // 2026-07-01 is a Wednesday

	weeks := GroupIntoWeeks(days)
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}

	w1 := weeks[0]
	if w1.WeekNumber != 1 || len(w1.Days) != DaysPerWeek {
		t.Fatalf("expected week 1 with 7 slots, got number=%d len=%d", w1.WeekNumber, len(w1.Days))
	}
	for i := 0; i < 2; i++ {
		if w1.Days[i].Schedule != nil {
			t.Fatalf("expected empty slot at weekday %d of week 1", i)
		}
	}
	for i := 2; i < 7; i++ {
		if w1.Days[i].Schedule == nil {
			t.Fatalf("expected real day at weekday %d of week 1", i)
		}
	}

	w2 := weeks[1]
	if w2.WeekNumber != 2 || len(w2.Days) != DaysPerWeek {
		t.Fatalf("expected week 2 with 7 slots, got number=%d len=%d", w2.WeekNumber, len(w2.Days))
	}
	for i := 0; i < 5; i++ {
		if w2.Days[i].Schedule == nil {
			t.Fatalf("expected real day at weekday %d of week 2", i)
		}
	}
	for i := 5; i < 7; i++ {
		if w2.Days[i].Schedule != nil {
			t.Fatalf("expected empty slot at weekday %d of week 2", i)
		}
	}
}

// TestGroupIntoWeeks_CoversInputExactly tests that the non-empty slots
// across all weeks equal the input list, in order, for several lengths
// and starting weekdays.
func TestGroupIntoWeeks_CoversInputExactly(t *testing.T) {
	starts := []string{
		"2026-07-06", // Monday
		"2026-07-09", // Thursday
		"2026-07-12", // Sunday
	}
	for _, start := range starts {
		for _, n := range []int{1, 3, 7, 10, 21, 30} {
			days := makeDays(t, start, n)
			weeks := GroupIntoWeeks(days)

			var placed []activity.DaySchedule
			for _, w := range weeks {
				if len(w.Days) != DaysPerWeek {
					t.Fatalf("start %s n=%d: week %d has %d slots", start, n, w.WeekNumber, len(w.Days))
				}
				for i, slot := range w.Days {
					if slot.WeekdayIndex != i {
						t.Fatalf("start %s n=%d: slot %d has weekday index %d", start, n, i, slot.WeekdayIndex)
					}
					if slot.Schedule != nil {
						placed = append(placed, *slot.Schedule)
					}
				}
			}
			if len(placed) != n {
				t.Fatalf("start %s n=%d: expected %d placed days, got %d", start, n, len(placed), n)
			}
			for i := range placed {
				if placed[i].Day != days[i].Day || placed[i].Date != days[i].Date {
					t.Fatalf("start %s n=%d: day %d out of order: got %+v", start, n, i, placed[i])
				}
			}
			for i, w := range weeks {
				if w.WeekNumber != i+1 {
					t.Fatalf("start %s n=%d: expected week number %d, got %d", start, n, i+1, w.WeekNumber)
				}
			}
		}
	}
}

// TestGroupIntoWeeks_Empty tests that no weeks are produced for an
// empty day list.
func TestGroupIntoWeeks_Empty(t *testing.T) {
	if weeks := GroupIntoWeeks(nil); len(weeks) != 0 {
		t.Fatalf("expected zero weeks, got %d", len(weeks))
	}
	if weeks := GroupIntoWeeks([]activity.DaySchedule{}); len(weeks) != 0 {
		t.Fatalf("expected zero weeks, got %d", len(weeks))
	}
}

// TestGroupIntoWeeks_UnparseableDate tests that a day with a corrupt
// date is still placed rather than dropped.
func TestGroupIntoWeeks_UnparseableDate(t *testing.T) {
	days := []activity.DaySchedule{
		{Day: 1, Date: "2026-07-06"}, // Monday
		{Day: 2, Date: "corrupt"},
		{Day: 3, Date: "2026-07-08"}, // Wednesday
	}
	weeks := GroupIntoWeeks(days)
	if len(weeks) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weeks))
	}
	count := 0
	for _, slot := range weeks[0].Days {
		if slot.Schedule != nil {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected all 3 days placed, got %d", count)
	}
}

// TestWeekNavigation tests clamped previous/next week movement.
func TestWeekNavigation(t *testing.T) {
	if got := ClampWeekIndex(5, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampWeekIndex(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampWeekIndex(0, 0); got != 0 {
		t.Fatalf("expected 0 with no weeks, got %d", got)
	}
	if got := PrevWeekIndex(0, 3); got != 0 {
		t.Fatalf("expected prev to stop at 0, got %d", got)
	}
	if got := PrevWeekIndex(2, 3); got != 1 {
		t.Fatalf("expected prev 1, got %d", got)
	}
	if got := NextWeekIndex(2, 3); got != 2 {
		t.Fatalf("expected next to stop at 2, got %d", got)
	}
	if got := NextWeekIndex(0, 3); got != 1 {
		t.Fatalf("expected next 1, got %d", got)
	}
}
