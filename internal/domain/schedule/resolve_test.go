package schedule

import (
	"testing"

	"clubadmin/internal/domain/location"
)

// TestResolveSlot tests per-field fallback from slot to day level.
func TestResolveSlot(t *testing.T) {
	slotLoc := &location.Assignment{Address: "Hội trường B", Lat: 10.73, Lng: 106.69, Scope: location.ScopePerDaySlot}
	dayLoc := &location.Assignment{Address: "Công viên Thống Nhất", Lat: 21.01, Lng: 105.84, Scope: location.ScopePerDay}

	day := DecodedDay{DetailedLocation: "Khu cắm trại số 2", MapLocation: dayLoc}

	tests := []struct {
		name         string
		slot         SlotRecord
		wantMap      *location.Assignment
		wantDetailed string
	}{
		{
			"slot values win",
			SlotRecord{DetailedLocation: "Sân A1", MapLocation: slotLoc},
			slotLoc, "Sân A1",
		},
		{
			"map falls back independently",
			SlotRecord{DetailedLocation: "Sân A1"},
			dayLoc, "Sân A1",
		},
		{
			"text falls back independently",
			SlotRecord{MapLocation: slotLoc},
			slotLoc, "Khu cắm trại số 2",
		},
		{
			"both fall back",
			SlotRecord{},
			dayLoc, "Khu cắm trại số 2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveSlot(tc.slot, day)
			if got.MapLocation != tc.wantMap {
				t.Fatalf("expected map location %+v, got %+v", tc.wantMap, got.MapLocation)
			}
			if got.DetailedLocation != tc.wantDetailed {
				t.Fatalf("expected detailed %q, got %q", tc.wantDetailed, got.DetailedLocation)
			}
		})
	}
}

// TestResolveSlot_EmptyDay tests that a bare day leaves everything unset.
func TestResolveSlot_EmptyDay(t *testing.T) {
	got := ResolveSlot(SlotRecord{}, DecodedDay{})
	if got.MapLocation != nil || got.DetailedLocation != "" {
		t.Fatalf("expected unset location, got %+v", got)
	}
}

// TestDisplayLabel tests the interleaved display precedence.
func TestDisplayLabel(t *testing.T) {
	slotLoc := &location.Assignment{Address: "Hội trường B"}
	dayLoc := &location.Assignment{Address: "Công viên Thống Nhất"}

	tests := []struct {
		name string
		slot SlotRecord
		day  DecodedDay
		want string
	}{
		{"slot map first", SlotRecord{MapLocation: slotLoc, DetailedLocation: "Sân A1"}, DecodedDay{MapLocation: dayLoc}, "Hội trường B"},
		{"slot text before day map", SlotRecord{DetailedLocation: "Sân A1"}, DecodedDay{MapLocation: dayLoc}, "Sân A1"},
		{"day map before day text", SlotRecord{}, DecodedDay{MapLocation: dayLoc, DetailedLocation: "Khu B"}, "Công viên Thống Nhất"},
		{"day text last", SlotRecord{}, DecodedDay{DetailedLocation: "Khu B"}, "Khu B"},
		{"nothing set", SlotRecord{}, DecodedDay{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayLabel(tc.slot, tc.day); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
