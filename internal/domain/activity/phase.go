package activity

import "time"

// Phase is the tri-state temporal classification of an activity.
type Phase string

// Phase constants.
const (
	PhaseBefore Phase = "before"
	PhaseDuring Phase = "during"
	PhaseAfter  Phase = "after"
)

// GracePeriod extends a slot's end time; check-in is still considered
// open for this long after the slot ends.
const GracePeriod = 15 * time.Minute

// Classify decides whether an activity is upcoming, currently running,
// or finished at the given instant. Pure and deterministic; now is
// injected so callers stay testable.
//
// Multi-day activities compare calendar dates only, so an activity is
// During for the whole of its first and last day regardless of slot
// times. That coarseness is intentional.
//
// Anything malformed (unparseable dates, unknown kind, no active slots
// on the activity's day) classifies as After: a check-in affordance is
// never shown without a valid window.
func Classify(now time.Time, a Activity) Phase {
	switch a.Kind {
	case KindMultipleDays:
		return classifyMultiDay(now, a)
	case KindSingleDay:
		return classifySingleDay(now, a)
	}
	return PhaseAfter
}

func classifyMultiDay(now time.Time, a Activity) Phase {
	start, err := time.ParseInLocation(DateLayout, a.StartDate, now.Location())
	if err != nil {
		return PhaseAfter
	}
	end, err := time.ParseInLocation(DateLayout, a.EndDate, now.Location())
	if err != nil {
		return PhaseAfter
	}
	if end.Before(start) {
		return PhaseAfter
	}
	today := dateOnly(now)
	if today.Before(start) {
		return PhaseBefore
	}
	if today.After(end) {
		return PhaseAfter
	}
	return PhaseDuring
}

func classifySingleDay(now time.Time, a Activity) Phase {
	date, err := time.ParseInLocation(DateLayout, a.Date, now.Location())
	if err != nil {
		return PhaseAfter
	}
	today := dateOnly(now)
	if today.Before(date) {
		return PhaseBefore
	}
	if today.After(date) {
		return PhaseAfter
	}

	// On the day itself: During until the latest active slot's end time
	// plus the grace period.
	var latestEnd time.Time
	for i := range a.TimeSlots {
		s := &a.TimeSlots[i]
		if !s.IsActive {
			continue
		}
		endClock, err := time.Parse(TimeLayout, s.EndTime)
		if err != nil {
			continue
		}
		end := date.Add(time.Duration(endClock.Hour())*time.Hour +
			time.Duration(endClock.Minute())*time.Minute).Add(GracePeriod)
		if end.After(latestEnd) {
			latestEnd = end
		}
	}
	if latestEnd.IsZero() {
		return PhaseAfter
	}
	if now.After(latestEnd) {
		return PhaseAfter
	}
	return PhaseDuring
}

// dateOnly truncates a time to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
