package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/location"
)

// Keyword prefixes of the per-day text micro-format. These are part of
// stored legacy data and must not change.
const (
	slotPrefix     = "Buổi "
	keyDetailed    = "Địa điểm chi tiết:"
	keyMapLocation = "Địa điểm map:"
	keyRadius      = "Bán kính:"
)

// slotHeaderRe matches the start of a slot line:
// "Buổi <Label> (<HH:MM>-<HH:MM>)".
var slotHeaderRe = regexp.MustCompile(`^Buổi (\p{L}+) \((\d{1,2}:\d{2})-(\d{1,2}:\d{2})\)`)

// coordSuffixRe matches micro-format A: "<address> (<lat>, <lng>)".
var coordSuffixRe = regexp.MustCompile(`^(.*?)\s*\((-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)\)$`)

// SlotRecord is one decoded slot line of a day blob.
type SlotRecord struct {
	SlotKey          string // morning, afternoon, evening
	StartTime        string // HH:MM
	EndTime          string // HH:MM
	Activities       string
	DetailedLocation string
	MapLocation      *location.Assignment
}

// DecodedDay is the structured form of one day's raw text: up to three
// slot records plus an optional day-level location fallback.
type DecodedDay struct {
	Slots            []SlotRecord
	DetailedLocation string               // day-level fallback text
	MapLocation      *location.Assignment // day-level fallback map location
}

// DecodeDay parses a per-day text blob into structured slot records and
// the day-level fallback. Each line is parsed independently in input
// order; a line matching no known pattern is skipped, never an error.
// Numeric fields that fail to parse are left unset and defaulted where
// consumed.
func DecodeDay(rawText string) DecodedDay {
	var day DecodedDay
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rec, ok := decodeSlotLine(line); ok {
			day.Slots = append(day.Slots, rec)
			continue
		}
		decodeDayLevelLine(line, &day)
	}
	return day
}

// decodeSlotLine parses a "Buổi ..." line into a SlotRecord.
func decodeSlotLine(line string) (SlotRecord, bool) {
	m := slotHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return SlotRecord{}, false
	}
	key := activity.SlotKeyForLabel(m[1])
	if key == "" {
		return SlotRecord{}, false
	}
	rec := SlotRecord{SlotKey: key, StartTime: m[2], EndTime: m[3]}

	seg := splitSegments(line[len(m[0]):])
	rec.Activities = seg.leading
	rec.DetailedLocation = seg.detailed
	if seg.mapLocation != "" {
		rec.MapLocation = ParseMapLocation(seg.mapLocation)
		if rec.MapLocation != nil {
			rec.MapLocation.Scope = location.ScopePerDaySlot
			applyRadius(rec.MapLocation, seg.radius)
		}
	}
	return rec, true
}

// decodeDayLevelLine handles non-slot lines carrying the "detailed
// location" / "map location" keywords; these become the day fallback.
// Later lines overwrite earlier ones, matching last-write-wins in the
// authored data.
func decodeDayLevelLine(line string, day *DecodedDay) {
	if !strings.Contains(line, keyDetailed) && !strings.Contains(line, keyMapLocation) {
		return // unknown line, silently skipped
	}
	seg := splitSegments(line)
	if seg.detailed != "" {
		day.DetailedLocation = seg.detailed
	}
	if seg.mapLocation != "" {
		if loc := ParseMapLocation(seg.mapLocation); loc != nil {
			loc.Scope = location.ScopePerDay
			applyRadius(loc, seg.radius)
			day.MapLocation = loc
		}
	}
}

// segments holds the annotated parts of one line.
type segments struct {
	leading     string // free text before the first keyword
	detailed    string
	mapLocation string
	radius      string
}

// splitSegments slices a line at the keyword markers. Markers may
// appear in any order; each value runs until the next marker or end of
// line, with separator dashes trimmed.
func splitSegments(s string) segments {
	type marker struct {
		key string
		pos int
	}
	var markers []marker
	for _, key := range []string{keyDetailed, keyMapLocation, keyRadius} {
		if pos := strings.Index(s, key); pos >= 0 {
			markers = append(markers, marker{key, pos})
		}
	}
	// Order markers by position.
	for i := 0; i < len(markers); i++ {
		for j := i + 1; j < len(markers); j++ {
			if markers[j].pos < markers[i].pos {
				markers[i], markers[j] = markers[j], markers[i]
			}
		}
	}

	var seg segments
	end := len(s)
	if len(markers) > 0 {
		end = markers[0].pos
	}
	seg.leading = trimSegment(s[:end])

	for i, m := range markers {
		valEnd := len(s)
		if i+1 < len(markers) {
			valEnd = markers[i+1].pos
		}
		val := trimSegment(s[m.pos+len(m.key) : valEnd])
		switch m.key {
		case keyDetailed:
			seg.detailed = val
		case keyMapLocation:
			seg.mapLocation = val
		case keyRadius:
			seg.radius = val
		}
	}
	return seg
}

// trimSegment removes surrounding whitespace and the " - " separator
// remnants from a segment value.
func trimSegment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")
	return strings.TrimSpace(s)
}

// ParseMapLocation decodes a map-location value in either of the two
// historically coexisting micro-formats:
//
//	A: "Hội trường B (10.7325, 106.6992)"  (radius annotated separately)
//	B: "lat:10.7325,lng:106.6992,address:Hội trường B,radius:150"
//
// Returns nil when neither format matches. Numeric fields that fail to
// parse are left unset; the radius in particular is defaulted at point
// of use, not here.
func ParseMapLocation(s string) *location.Assignment {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc := parseAddressCoords(s); loc != nil {
		return loc
	}
	return parseKeyValueForm(s)
}

// parseAddressCoords handles micro-format A.
func parseAddressCoords(s string) *location.Assignment {
	m := coordSuffixRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	lat, errLat := strconv.ParseFloat(m[2], 64)
	lng, errLng := strconv.ParseFloat(m[3], 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &location.Assignment{
		Address: strings.TrimSpace(m[1]),
		Lat:     lat,
		Lng:     lng,
	}
}

// parseKeyValueForm handles micro-format B. The address value may itself
// contain commas, so bare parts following an address key are folded back
// into it.
func parseKeyValueForm(s string) *location.Assignment {
	var loc location.Assignment
	matched := false
	lastKey := ""
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		key, val, found := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch {
		case found && key == "lat":
			if v, err := strconv.ParseFloat(val, 64); err == nil {
				loc.Lat = v
			}
			matched, lastKey = true, "lat"
		case found && key == "lng":
			if v, err := strconv.ParseFloat(val, 64); err == nil {
				loc.Lng = v
			}
			matched, lastKey = true, "lng"
		case found && key == "address":
			loc.Address = val
			matched, lastKey = true, "address"
		case found && key == "radius":
			if v, err := strconv.Atoi(strings.TrimSuffix(val, "m")); err == nil {
				loc.Radius = v
			}
			matched, lastKey = true, "radius"
		case lastKey == "address":
			// Comma inside the address free text.
			loc.Address += ", " + part
		}
	}
	if !matched {
		return nil
	}
	return &loc
}

// applyRadius sets the radius from a "Bán kính" annotation value such
// as "150m", unless the location already carries one (format B).
func applyRadius(loc *location.Assignment, radius string) {
	if loc.Radius != 0 || radius == "" {
		return
	}
	radius = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(radius), "m"))
	if v, err := strconv.Atoi(radius); err == nil {
		loc.Radius = v
	}
}

// EncodeDay renders a DecodedDay back into the per-day text format.
// Output uses the canonical "address (lat, lng)" coordinate encoding
// with a separate radius annotation; the key:value form is accepted on
// decode only, for legacy reads. DecodeDay(EncodeDay(d)) is
// semantically equal to d.
func EncodeDay(d DecodedDay) string {
	var lines []string
	for _, rec := range d.Slots {
		var b strings.Builder
		fmt.Fprintf(&b, "%s%s (%s-%s)", slotPrefix, activity.SlotLabel(rec.SlotKey), rec.StartTime, rec.EndTime)
		if rec.Activities != "" {
			b.WriteString(" - " + rec.Activities)
		}
		if rec.DetailedLocation != "" {
			b.WriteString(" - " + keyDetailed + " " + rec.DetailedLocation)
		}
		appendMapLocation(&b, rec.MapLocation)
		lines = append(lines, b.String())
	}
	if d.DetailedLocation != "" || d.MapLocation != nil {
		var b strings.Builder
		if d.DetailedLocation != "" {
			b.WriteString(keyDetailed + " " + d.DetailedLocation)
		}
		appendMapLocation(&b, d.MapLocation)
		lines = append(lines, strings.TrimPrefix(b.String(), " - "))
	}
	return strings.Join(lines, "\n")
}

func appendMapLocation(b *strings.Builder, loc *location.Assignment) {
	if loc == nil {
		return
	}
	fmt.Fprintf(b, " - %s %s (%s, %s)", keyMapLocation, loc.Address,
		strconv.FormatFloat(loc.Lat, 'f', -1, 64),
		strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	if loc.Radius != 0 {
		fmt.Fprintf(b, " - %s %dm", keyRadius, loc.Radius)
	}
}
