package roster

import (
	"fmt"
	"sort"
	"time"
)

// RosterMonth aggregates all shift records of one calendar month,
// grouped by day of month. Records are keyed by id within a day, so a
// slot exists at most once; the first record added for an id wins.
type RosterMonth struct {
	anchor time.Time
	days   map[int]map[string]ShiftRecord
}

// NewRosterMonth creates an empty roster for the given year and month.
func NewRosterMonth(year int, month time.Month) *RosterMonth {
	return &RosterMonth{
		anchor: time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
		days:   make(map[int]map[string]ShiftRecord),
	}
}

// Year returns the calendar year of the roster.
func (m *RosterMonth) Year() int {
	return m.anchor.Year()
}

// Month returns the calendar month of the roster.
func (m *RosterMonth) Month() time.Month {
	return m.anchor.Month()
}

// Anchor returns the first-of-month date identifying the roster.
func (m *RosterMonth) Anchor() time.Time {
	return m.anchor
}

// AddShift builds a record for the given slot and adds it. See Add.
func (m *RosterMonth) AddShift(kind ShiftKind, day int, assignee string) (ShiftRecord, error) {
	rec := NewShiftRecord(kind, m.Year(), m.Month(), day, assignee)
	if err := m.Add(rec); err != nil {
		return ShiftRecord{}, err
	}
	return rec, nil
}

// Add inserts a record into the roster. Records whose start timestamp
// falls outside the roster's month are rejected: date groups at the
// grid edges may bleed into adjacent months and must never be silently
// included. If the record's id already exists for its day, the existing
// record is kept.
func (m *RosterMonth) Add(rec ShiftRecord) error {
	if rec.Start.Year() != m.Year() || rec.Start.Month() != m.Month() {
		return fmt.Errorf("shift %s starts at %s, outside roster month %04d-%02d",
			rec.ID, rec.Start.Format("2006-01-02"), m.Year(), int(m.Month()))
	}

	day := rec.Day()
	slots, ok := m.days[day]
	if !ok {
		slots = make(map[string]ShiftRecord)
		m.days[day] = slots
	}
	if _, exists := slots[rec.ID]; exists {
		return nil
	}
	slots[rec.ID] = rec
	return nil
}

// Get returns the record with the given id, if present.
func (m *RosterMonth) Get(id string) (ShiftRecord, bool) {
	for _, slots := range m.days {
		if rec, ok := slots[id]; ok {
			return rec, true
		}
	}
	return ShiftRecord{}, false
}

// Len returns the total number of records in the roster.
func (m *RosterMonth) Len() int {
	n := 0
	for _, slots := range m.days {
		n += len(slots)
	}
	return n
}

// All returns every record of the month sorted by id. Sorting makes
// iteration deterministic regardless of map traversal order, which
// keeps diff output and reports reproducible.
func (m *RosterMonth) All() []ShiftRecord {
	records := make([]ShiftRecord, 0, m.Len())
	for _, slots := range m.days {
		for _, rec := range slots {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records
}

// Day returns the records of a single day sorted by id.
func (m *RosterMonth) Day(day int) []ShiftRecord {
	slots := m.days[day]
	records := make([]ShiftRecord, 0, len(slots))
	for _, rec := range slots {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records
}

// IDs returns the set of record ids present in the roster.
func (m *RosterMonth) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, m.Len())
	for _, slots := range m.days {
		for id := range slots {
			ids[id] = struct{}{}
		}
	}
	return ids
}
