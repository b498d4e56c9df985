package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"roster-importer/core/roster"
)

// Grid is a rectangular-ish sequence of rows of cell texts. Rows may
// have differing lengths; cells outside a row are treated as empty.
type Grid [][]string

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cell returns the text at the given position, or an empty string if
// the position lies outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// datePattern matches a day.month anchor: 1-2 digit day (1-31), 1-2
// digit month (1-12), each followed by a dot, and no year.
var datePattern = regexp.MustCompile(`^([1-9]|0[1-9]|[12][0-9]|3[01])\.([1-9]|0[1-9]|1[0-2])\.$`)

// ParseDateAnchor parses a date anchor cell such as "22.02." into its
// day and month. ok is false when the trimmed text is not an anchor.
func ParseDateAnchor(text string) (day int, month time.Month, ok bool) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])
	return day, time.Month(mon), true
}

// IsBlank reports whether the cell text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// LabelParseError reports a cell that was structurally expected to hold
// a shift label but matched neither a canonical nor an alternate label.
// It is recorded and skipped during extraction, never fatal.
type LabelParseError struct {
	Text string
}

func (e *LabelParseError) Error() string {
	return fmt.Sprintf("cell %q is not a shift label", e.Text)
}

// ParseShiftLabel classifies a row-header cell as a shift label.
// Canonical labels match as a suffix so that free-text prefixes from
// corrupted combined cells are tolerated; alternate labels must match
// exactly. A *LabelParseError is returned when neither matches.
func ParseShiftLabel(text string) (roster.ShiftKind, error) {
	if kind, ok := roster.KindFromLabel(text); ok {
		return kind, nil
	}
	return 0, &LabelParseError{Text: text}
}

// CellKind classifies a grid cell.
type CellKind int

const (
	// KindText is any cell that is neither an anchor nor a label.
	KindText CellKind = iota
	// KindDateAnchor is a day.month cell such as "22.02.".
	KindDateAnchor
	// KindShiftLabel is a shift row header such as "FD".
	KindShiftLabel
	// KindBlank is an empty or whitespace-only cell.
	KindBlank
)

// Cell is the classification result for one grid cell.
type Cell struct {
	Kind  CellKind
	Text  string
	Day   int
	Month time.Month
	Shift roster.ShiftKind
}

// Classify determines what a cell's text represents. Anchors take
// precedence over labels; a blank cell classifies as KindBlank.
func Classify(text string) Cell {
	if IsBlank(text) {
		return Cell{Kind: KindBlank, Text: text}
	}
	if day, month, ok := ParseDateAnchor(text); ok {
		return Cell{Kind: KindDateAnchor, Text: text, Day: day, Month: month}
	}
	if kind, ok := roster.KindFromLabel(text); ok {
		return Cell{Kind: KindShiftLabel, Text: text, Shift: kind}
	}
	return Cell{Kind: KindText, Text: text}
}
