// Package grid provides the cell classification layer for duty roster
// tables.
//
// Roster documents arrive as an irregular grid of text cells: rows may
// have differing lengths and absent cells count as empty. The package
// is agnostic of the concrete document format; readers (xlsx, tests)
// produce a Grid and the extractor walks it.
//
// Each cell classifies as one of:
//
//   - a date anchor ("22.02." - day and month with a trailing dot and
//     no year), identifying the calendar day for its column
//   - a shift label (row header such as "FD", "SD", "ND", or the
//     legacy "TD"), identifying which shift the row holds
//   - free text (an assignee name, or anything else)
//
// Blank cells are a structural sentinel: a blank row header below a
// date row ends the shift group for that date column.
package grid
