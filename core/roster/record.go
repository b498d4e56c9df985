package roster

import "time"

// ShiftRecord is one concrete shift assignment. Identity and equality
// are defined solely by ID; assignee and times are payload that may
// change for the same slot between roster versions.
type ShiftRecord struct {
	// ID is the stable slot identity, e.g. "2015_02_22_0". See ShiftID.
	ID string

	// Kind is the shift variant this record applies to.
	Kind ShiftKind

	// Assignee is the free-text name of the personnel on duty. It may
	// carry qualifiers (e.g. "Judy until 19:00").
	Assignee string

	// Start and End are the absolute shift timestamps.
	Start time.Time
	End   time.Time

	// ExternalRef is the opaque identifier of the calendar event backing
	// this record in the external store. Empty on freshly parsed
	// records.
	ExternalRef string

	// Revision is the store-supplied concurrency token that must be
	// presented when updating the backing event. Zero on freshly parsed
	// records.
	Revision int64
}

// NewShiftRecord builds a record for the given slot with derived id and
// shift times.
func NewShiftRecord(kind ShiftKind, year int, month time.Month, day int, assignee string) ShiftRecord {
	start, end := kind.Span(year, month, day)
	return ShiftRecord{
		ID:       ShiftID(kind, start),
		Kind:     kind,
		Assignee: assignee,
		Start:    start,
		End:      end,
	}
}

// Day returns the day of month the shift starts on.
func (r ShiftRecord) Day() int {
	return r.Start.Day()
}

// SameSlot reports whether both records describe the same shift slot.
func (r ShiftRecord) SameSlot(other ShiftRecord) bool {
	return r.ID == other.ID
}
