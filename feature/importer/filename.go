package importer

import (
	"regexp"
	"strconv"
	"time"
)

// filenamePattern matches roster document names following the
// YYYY_MM.<ext> convention, e.g. "2015_03.xlsx".
var filenamePattern = regexp.MustCompile(`^(\d{4})_(\d{1,2})\.[A-Za-z0-9]+$`)

// ParseRosterFilename infers year and month from a document name
// following the YYYY_MM.<ext> convention. ok is false when the name
// does not follow the convention or the month is out of range.
func ParseRosterFilename(name string) (year int, month time.Month, ok bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])
	if mon < 1 || mon > 12 {
		return 0, 0, false
	}
	return year, time.Month(mon), true
}
