package activity

import (
	"errors"
	"strings"
	"time"

	"clubadmin/internal/domain/location"
)

// Activity kind constants.
const (
	KindSingleDay    = "single_day"    // one calendar date, up to 3 named slots
	KindMultipleDays = "multiple_days" // a date range with one DaySchedule per day
)

// Time slot key constants.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ValidSlots contains all valid slot keys, in display order.
var ValidSlots = []string{SlotMorning, SlotAfternoon, SlotEvening}

// Date and wall-clock layouts used across the activity model.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Domain errors
var (
	ErrEmptyTitle        = errors.New("activity title cannot be empty")
	ErrInvalidKind       = errors.New("kind must be 'single_day' or 'multiple_days'")
	ErrEmptyDate         = errors.New("single-day activity requires a date")
	ErrEmptyDateRange    = errors.New("multi-day activity requires start and end dates")
	ErrInvalidDateRange  = errors.New("start date must be before or equal to end date")
	ErrInvalidSlotKey    = errors.New("slot key must be one of: morning, afternoon, evening")
	ErrDuplicateSlotKey  = errors.New("each slot key may appear at most once")
	ErrInvalidSlotTime   = errors.New("slot times must be in HH:MM format")
	ErrInvalidDayNumbers = errors.New("day schedules must be numbered 1..N contiguously")
)

// TimeSlotDefinition describes one of the three named parts of a day an
// activity can be active in.
type TimeSlotDefinition struct {
	SlotKey          string // morning, afternoon, evening
	StartTime        string // HH:MM format
	EndTime          string // HH:MM format
	IsActive         bool
	Activities       string // free-text description of what happens
	DetailedLocation string // free-text location, e.g. "Sân A1"
	Location         *location.Assignment
}

// DaySchedule is one calendar day of a multi-day activity. RawText is
// the authored per-day blob; the schedule package decodes it.
type DaySchedule struct {
	Day     int    // 1-based position within the activity
	Date    string // YYYY-MM-DD
	RawText string
}

// Activity represents a club activity with its schedule and locations.
// Single-day activities carry Date and TimeSlots; multi-day activities
// carry StartDate/EndDate and one DaySchedule per day in the range.
type Activity struct {
	ID        string
	Title     string
	Kind      string // single_day or multiple_days
	Date      string // YYYY-MM-DD, single-day only
	StartDate string // YYYY-MM-DD, multi-day only
	EndDate   string // YYYY-MM-DD, multi-day only
	TimeSlots []TimeSlotDefinition
	Schedule  []DaySchedule
	Location  *location.Assignment // global assignment for the whole activity
	CreatedBy string               // account ID
	CreatedAt time.Time
}

// Validate checks the activity's invariants on the authoring path.
// Legacy data read back from storage is deliberately NOT re-validated;
// readers degrade per the error policy instead.
// PRE: Activity struct is populated
// POST: Returns nil if valid, error describing the first violation otherwise
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	switch a.Kind {
	case KindSingleDay:
		if err := a.validateSingleDay(); err != nil {
			return err
		}
	case KindMultipleDays:
		if err := a.validateMultiDay(); err != nil {
			return err
		}
	default:
		return ErrInvalidKind
	}
	if a.Location != nil {
		if err := a.Location.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Activity) validateSingleDay() error {
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return ErrEmptyDate
	}
	seen := make(map[string]bool, len(a.TimeSlots))
	for i := range a.TimeSlots {
		s := &a.TimeSlots[i]
		if !IsValidSlot(s.SlotKey) {
			return ErrInvalidSlotKey
		}
		if seen[s.SlotKey] {
			return ErrDuplicateSlotKey
		}
		seen[s.SlotKey] = true
		if _, err := time.Parse(TimeLayout, s.StartTime); err != nil {
			return ErrInvalidSlotTime
		}
		if _, err := time.Parse(TimeLayout, s.EndTime); err != nil {
			return ErrInvalidSlotTime
		}
		if s.Location != nil {
			if err := s.Location.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Activity) validateMultiDay() error {
	start, err := time.Parse(DateLayout, a.StartDate)
	if err != nil {
		return ErrEmptyDateRange
	}
	end, err := time.Parse(DateLayout, a.EndDate)
	if err != nil {
		return ErrEmptyDateRange
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	for i := range a.Schedule {
		if a.Schedule[i].Day != i+1 {
			return ErrInvalidDayNumbers
		}
	}
	return nil
}

// IsValidSlot reports whether key is one of the three named slot keys.
func IsValidSlot(key string) bool {
	for _, s := range ValidSlots {
		if s == key {
			return true
		}
	}
	return false
}

// SlotLabel returns the Vietnamese display label for a slot key, or ""
// for an unknown key.
func SlotLabel(key string) string {
	switch key {
	case SlotMorning:
		return "Sáng"
	case SlotAfternoon:
		return "Chiều"
	case SlotEvening:
		return "Tối"
	}
	return ""
}

// SlotKeyForLabel returns the slot key for a Vietnamese display label,
// or "" for an unknown label.
func SlotKeyForLabel(label string) string {
	switch label {
	case "Sáng":
		return SlotMorning
	case "Chiều":
		return SlotAfternoon
	case "Tối":
		return SlotEvening
	}
	return ""
}
