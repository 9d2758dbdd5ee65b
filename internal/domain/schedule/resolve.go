package schedule

import "clubadmin/internal/domain/location"

// ResolvedLocation is the location information a slot ends up with after
// fallbacks are applied. Either field may be unset; they may come from
// different sources.
type ResolvedLocation struct {
	MapLocation      *location.Assignment
	DetailedLocation string
}

// ResolveSlot applies the day-level fallback to one slot. Each field is
// resolved independently: the slot's own value wins, otherwise the
// day-level value, otherwise unset.
func ResolveSlot(slot SlotRecord, day DecodedDay) ResolvedLocation {
	res := ResolvedLocation{
		MapLocation:      slot.MapLocation,
		DetailedLocation: slot.DetailedLocation,
	}
	if res.MapLocation == nil {
		res.MapLocation = day.MapLocation
	}
	if res.DetailedLocation == "" {
		res.DetailedLocation = day.DetailedLocation
	}
	return res
}

// DisplayLabel picks the single best human-readable location label for a
// slot, in precedence order: the slot's map location, the slot's
// detailed text, the day's map location, the day's detailed text. Empty
// when nothing is set anywhere.
func DisplayLabel(slot SlotRecord, day DecodedDay) string {
	switch {
	case slot.MapLocation != nil:
		return slot.MapLocation.Address
	case slot.DetailedLocation != "":
		return slot.DetailedLocation
	case day.MapLocation != nil:
		return day.MapLocation.Address
	case day.DetailedLocation != "":
		return day.DetailedLocation
	}
	return ""
}
