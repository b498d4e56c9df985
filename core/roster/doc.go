// Package roster defines the domain model for monthly duty rosters.
//
// A duty roster assigns personnel to one of three fixed daily shifts
// (early, late, night). The package provides:
//
//   - ShiftKind: the closed set of shift variants with their labels and
//     working hours
//   - ShiftRecord: a single concrete assignment with a stable,
//     content-derived identity
//   - RosterMonth: the aggregate holding all assignments of one
//     calendar month, grouped by day
//
// # Identity
//
// Every ShiftRecord carries an id of the form "YYYY_MM_DD_<ordinal>"
// derived from its start date and shift kind. Two records with the same
// id describe the same shift slot regardless of who is assigned; this
// is what makes a roster updatable against an external calendar store.
//
// # Event summaries
//
// ShiftID, Summary and ParseSummary convert between records and the
// one-line text stored as the calendar event title (e.g. "FD: Judy").
// ParseSummary is lenient: foreign calendar entries simply fail to
// parse and are excluded rather than treated as errors.
package roster
