package location

import "testing"

// TestAssignment_Validate tests Assignment validation rules.
func TestAssignment_Validate(t *testing.T) {
	valid := Assignment{
		Address: "Hội trường B",
		Lat:     10.7325,
		Lng:     106.6992,
		Radius:  150,
		Scope:   ScopePerDaySlot,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid assignment, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(a *Assignment)
		wantErr error
	}{
		{"empty address", func(a *Assignment) { a.Address = "  " }, ErrEmptyAddress},
		{"lat too low", func(a *Assignment) { a.Lat = -90.5 }, ErrInvalidLat},
		{"lat too high", func(a *Assignment) { a.Lat = 91 }, ErrInvalidLat},
		{"lng too low", func(a *Assignment) { a.Lng = -181 }, ErrInvalidLng},
		{"lng too high", func(a *Assignment) { a.Lng = 180.1 }, ErrInvalidLng},
		{"radius too small", func(a *Assignment) { a.Radius = 49 }, ErrInvalidRadius},
		{"radius too large", func(a *Assignment) { a.Radius = 1001 }, ErrInvalidRadius},
		{"bad scope", func(a *Assignment) { a.Scope = "per_week" }, ErrInvalidScope},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.modify(&a)
			if err := a.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// TestAssignment_Validate_UnsetOptionalFields tests that radius 0 and
// empty scope are accepted (both mean "not set").
func TestAssignment_Validate_UnsetOptionalFields(t *testing.T) {
	a := Assignment{Address: "Sân A1", Lat: 10.7, Lng: 106.7}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid assignment with unset radius/scope, got: %v", err)
	}
}

// TestAssignment_EffectiveRadius tests radius defaulting at point of use.
func TestAssignment_EffectiveRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius int
		want   int
	}{
		{"unset", 0, DefaultRadius},
		{"below minimum", 10, DefaultRadius},
		{"at minimum", MinRadius, MinRadius},
		{"in range", 150, 150},
		{"at maximum", MaxRadius, MaxRadius},
		{"above maximum", 5000, DefaultRadius},
		{"negative", -1, DefaultRadius},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Assignment{Address: "x", Radius: tc.radius}
			if got := a.EffectiveRadius(); got != tc.want {
				t.Fatalf("expected radius %d, got %d", tc.want, got)
			}
		})
	}
}

// TestAssignment_EffectiveRadius_Nil tests the nil receiver default.
func TestAssignment_EffectiveRadius_Nil(t *testing.T) {
	var a *Assignment
	if got := a.EffectiveRadius(); got != DefaultRadius {
		t.Fatalf("expected default radius %d for nil assignment, got %d", DefaultRadius, got)
	}
}
