package roster

import (
	"strings"
	"time"
)

// ShiftKind tags one of the three fixed daily work periods. The set is
// closed by domain definition; the declaration order is significant
// because the ordinal is part of every ShiftRecord id.
type ShiftKind int

const (
	// Early is the early shift, 07:00-14:00. Label "FD" (Fruehdienst).
	Early ShiftKind = iota
	// Late is the late shift, 14:00-20:00. Label "SD" (Spaetdienst).
	Late
	// Night is the night shift, ending 07:00 the next day. Label "ND"
	// (Nachtdienst). It starts at 21:00 on Fridays and Saturdays and at
	// 22:00 on all other days.
	Night
)

// Kinds lists all shift kinds in declaration order. Extraction iterates
// this slice, and the index equals each kind's Ordinal.
var Kinds = []ShiftKind{Early, Late, Night}

// kindSpec holds the per-kind lookup data: labels and working hours.
type kindSpec struct {
	label     string // canonical label, also used in event summaries
	altLabel  string // legacy label accepted on input, may be empty
	startHour int
	endHour   int
}

var kindSpecs = [...]kindSpec{
	Early: {label: "FD", altLabel: "TD", startHour: 7, endHour: 14},
	Late:  {label: "SD", startHour: 14, endHour: 20},
	Night: {label: "ND", startHour: 22, endHour: 7},
}

// Label returns the canonical label of the shift kind, e.g. "FD".
func (k ShiftKind) Label() string {
	return kindSpecs[k].label
}

// AlternateLabel returns the legacy input label of the shift kind, or
// an empty string if the kind has none.
func (k ShiftKind) AlternateLabel() string {
	return kindSpecs[k].altLabel
}

// Ordinal returns the fixed declaration index of the kind (Early=0,
// Late=1, Night=2).
func (k ShiftKind) Ordinal() int {
	return int(k)
}

// String implements fmt.Stringer for log output.
func (k ShiftKind) String() string {
	switch k {
	case Early:
		return "early"
	case Late:
		return "late"
	case Night:
		return "night"
	}
	return "unknown"
}

// Span returns the start and end timestamps for a shift of this kind on
// the given calendar day. Timestamps are timezone-naive local-calendar
// values (time.Local). Night shifts start at 21:00 on Fridays and
// Saturdays, 22:00 otherwise, and always end at 07:00 the next day.
func (k ShiftKind) Span(year int, month time.Month, day int) (start, end time.Time) {
	spec := kindSpecs[k]

	startHour := spec.startHour
	if k == Night {
		switch time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday() {
		case time.Friday, time.Saturday:
			startHour = 21
		}
	}

	start = time.Date(year, month, day, startHour, 0, 0, 0, time.Local)
	if k == Night {
		// time.Date normalizes day+1 across month boundaries.
		end = time.Date(year, month, day+1, spec.endHour, 0, 0, 0, time.Local)
	} else {
		end = time.Date(year, month, day, spec.endHour, 0, 0, 0, time.Local)
	}
	return start, end
}

// KindFromLabel resolves a cell or summary label to a shift kind.
// Canonical labels match as a suffix of the trimmed text, which
// tolerates free-text prefixes in corrupted combined cells (e.g.
// "Krank! SD"). When no canonical label matches, the alternate labels
// are tried as exact matches.
func KindFromLabel(text string) (ShiftKind, bool) {
	trimmed := strings.TrimSpace(text)
	if k, ok := kindFromCanonicalSuffix(trimmed); ok {
		return k, true
	}
	for _, k := range Kinds {
		if alt := kindSpecs[k].altLabel; alt != "" && trimmed == alt {
			return k, true
		}
	}
	return 0, false
}

// kindFromCanonicalSuffix matches the trimmed text against the
// canonical labels only, as a suffix.
func kindFromCanonicalSuffix(trimmed string) (ShiftKind, bool) {
	for _, k := range Kinds {
		if strings.HasSuffix(trimmed, kindSpecs[k].label) {
			return k, true
		}
	}
	return 0, false
}
