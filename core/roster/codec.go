package roster

import (
	"strconv"
	"strings"
	"time"
)

// summarySeparator splits the shift label from the assignee in a
// calendar event summary.
const summarySeparator = ": "

// ShiftID derives the stable slot identity from a shift kind and start
// timestamp, e.g. "2015_02_22_2" for a night shift on 2015-02-22. The
// id is lexicographically sortable by calendar order within a month and
// collision-free within a day.
func ShiftID(kind ShiftKind, start time.Time) string {
	return start.Format("2006_01_02_") + strconv.Itoa(kind.Ordinal())
}

// Summary renders the one-line event title for a shift, e.g.
// "FD: Judy".
func Summary(kind ShiftKind, assignee string) string {
	return kind.Label() + summarySeparator + assignee
}

// ParseSummary splits an event summary back into shift kind and
// assignee. It returns ok=false when the text is not a roster shift
// summary: the separator is absent, or the left token does not end in
// a canonical shift label. Callers are expected to skip such entries;
// a calendar may legitimately contain foreign events.
func ParseSummary(text string) (kind ShiftKind, assignee string, ok bool) {
	label, rest, found := strings.Cut(text, summarySeparator)
	if !found {
		return 0, "", false
	}
	kind, ok = kindFromCanonicalSuffix(strings.TrimSpace(label))
	if !ok {
		return 0, "", false
	}
	return kind, rest, true
}
