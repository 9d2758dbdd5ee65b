package location

import (
	"errors"
	"strings"
)

// Geofence radius bounds in meters.
const (
	MinRadius     = 50
	MaxRadius     = 1000
	DefaultRadius = 200
)

// Assignment scope constants. Scope records what a map location is
// attached to: the whole activity, one named time slot, one calendar
// day, or one slot of one calendar day.
const (
	ScopeGlobal      = "global"
	ScopePerTimeSlot = "per_time_slot"
	ScopePerDay      = "per_day"
	ScopePerDaySlot  = "per_day_slot"
)

// ValidScopes contains all valid scope values.
var ValidScopes = []string{ScopeGlobal, ScopePerTimeSlot, ScopePerDay, ScopePerDaySlot}

// Domain errors
var (
	ErrEmptyAddress  = errors.New("address cannot be empty")
	ErrInvalidLat    = errors.New("latitude must be between -90 and 90")
	ErrInvalidLng    = errors.New("longitude must be between -180 and 180")
	ErrInvalidRadius = errors.New("radius must be between 50 and 1000 meters")
	ErrInvalidScope  = errors.New("scope must be one of: global, per_time_slot, per_day, per_day_slot")
)

// Assignment associates a map point and a check-in radius with part of
// an activity. Radius 0 means "not set"; readers must go through
// EffectiveRadius rather than using the field directly.
type Assignment struct {
	Address string
	Lat     float64
	Lng     float64
	Radius  int    // meters; 0 means unset
	Scope   string // one of ValidScopes; empty allowed for decoded legacy data
}

// Validate checks if the Assignment has valid data.
// PRE: Assignment struct is populated (authoring path, not legacy decode)
// POST: Returns nil if valid, error otherwise
func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.Address) == "" {
		return ErrEmptyAddress
	}
	if a.Lat < -90 || a.Lat > 90 {
		return ErrInvalidLat
	}
	if a.Lng < -180 || a.Lng > 180 {
		return ErrInvalidLng
	}
	if a.Radius != 0 && (a.Radius < MinRadius || a.Radius > MaxRadius) {
		return ErrInvalidRadius
	}
	if a.Scope != "" && !isValidScope(a.Scope) {
		return ErrInvalidScope
	}
	return nil
}

// EffectiveRadius returns the check-in radius to enforce for this
// assignment. Absent or out-of-range values fall back to DefaultRadius,
// so corrupt legacy data never produces a zero-size or oversized fence.
// INVARIANT: MinRadius <= result <= MaxRadius
func (a *Assignment) EffectiveRadius() int {
	if a == nil {
		return DefaultRadius
	}
	if a.Radius < MinRadius || a.Radius > MaxRadius {
		return DefaultRadius
	}
	return a.Radius
}

func isValidScope(scope string) bool {
	for _, s := range ValidScopes {
		if s == scope {
			return true
		}
	}
	return false
}
