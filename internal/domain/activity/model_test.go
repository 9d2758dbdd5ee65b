package activity

import (
	"testing"

	"clubadmin/internal/domain/location"
)

func validSingleDay() Activity {
	return Activity{
		ID:    "a1",
		Title: "Sinh hoạt Chi đoàn",
		Kind:  KindSingleDay,
		Date:  "2026-03-02",
		TimeSlots: []TimeSlotDefinition{
			{SlotKey: SlotMorning, StartTime: "07:00", EndTime: "11:30", IsActive: true, Activities: "Chào cờ đầu tuần"},
			{SlotKey: SlotAfternoon, StartTime: "13:30", EndTime: "17:00", IsActive: true},
		},
		CreatedBy: "admin1",
	}
}

func validMultiDay() Activity {
	return Activity{
		ID:        "a2",
		Title:     "Chiến dịch Mùa hè xanh",
		Kind:      KindMultipleDays,
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
		Schedule: []DaySchedule{
			{Day: 1, Date: "2026-07-01"},
			{Day: 2, Date: "2026-07-02"},
		},
		CreatedBy: "admin1",
	}
}

// TestActivity_Validate_SingleDay tests single-day validation rules.
func TestActivity_Validate_SingleDay(t *testing.T) {
	valid := validSingleDay()
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid activity, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(a *Activity)
		wantErr error
	}{
		{"empty title", func(a *Activity) { a.Title = " " }, ErrEmptyTitle},
		{"bad kind", func(a *Activity) { a.Kind = "weekly" }, ErrInvalidKind},
		{"missing date", func(a *Activity) { a.Date = "" }, ErrEmptyDate},
		{"unparseable date", func(a *Activity) { a.Date = "02/03/2026" }, ErrEmptyDate},
		{"bad slot key", func(a *Activity) { a.TimeSlots[0].SlotKey = "noon" }, ErrInvalidSlotKey},
		{"duplicate slot key", func(a *Activity) { a.TimeSlots[1].SlotKey = SlotMorning }, ErrDuplicateSlotKey},
		{"bad start time", func(a *Activity) { a.TimeSlots[0].StartTime = "7h00" }, ErrInvalidSlotTime},
		{"bad end time", func(a *Activity) { a.TimeSlots[0].EndTime = "" }, ErrInvalidSlotTime},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validSingleDay()
			tc.modify(&a)
			if err := a.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// TestActivity_Validate_MultiDay tests multi-day validation rules.
func TestActivity_Validate_MultiDay(t *testing.T) {
	valid := validMultiDay()
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid activity, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(a *Activity)
		wantErr error
	}{
		{"missing start", func(a *Activity) { a.StartDate = "" }, ErrEmptyDateRange},
		{"missing end", func(a *Activity) { a.EndDate = "" }, ErrEmptyDateRange},
		{"end before start", func(a *Activity) { a.EndDate = "2026-06-30" }, ErrInvalidDateRange},
		{"gap in day numbers", func(a *Activity) { a.Schedule[1].Day = 3 }, ErrInvalidDayNumbers},
		{"days not 1-based", func(a *Activity) { a.Schedule[0].Day = 0 }, ErrInvalidDayNumbers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validMultiDay()
			tc.modify(&a)
			if err := a.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// TestActivity_Validate_BadLocation tests that location validation is
// surfaced through activity validation.
func TestActivity_Validate_BadLocation(t *testing.T) {
	a := validSingleDay()
	a.Location = &location.Assignment{Address: "", Lat: 10.7, Lng: 106.7}
	if err := a.Validate(); err != location.ErrEmptyAddress {
		t.Fatalf("expected %v, got: %v", location.ErrEmptyAddress, err)
	}

	a = validSingleDay()
	a.TimeSlots[0].Location = &location.Assignment{Address: "Sân A1", Lat: 99, Lng: 106.7}
	if err := a.Validate(); err != location.ErrInvalidLat {
		t.Fatalf("expected %v, got: %v", location.ErrInvalidLat, err)
	}
}

// TestSlotLabel tests slot key to label round-trips.
func TestSlotLabel(t *testing.T) {
	for _, key := range ValidSlots {
		label := SlotLabel(key)
		if label == "" {
			t.Fatalf("expected label for %q", key)
		}
		if got := SlotKeyForLabel(label); got != key {
			t.Fatalf("expected %q for label %q, got %q", key, label, got)
		}
	}
	if SlotLabel("noon") != "" {
		t.Fatal("expected empty label for unknown key")
	}
	if SlotKeyForLabel("Trưa") != "" {
		t.Fatal("expected empty key for unknown label")
	}
}
