package importer

import (
	"strings"

	"roster-importer/core/roster"
)

// csvHeader is the column set Google Calendar expects on manual import.
const csvHeader = "Subject,Start Date,Start Time,End Date,End Time,All Day Event,Description,Location,Private"

const (
	csvDateFormat = "02/01/06"
	csvTimeFormat = "03:04:05 PM"
)

// RenderCSV renders the roster month as a CSV importable into any
// Google calendar. An empty month renders to an empty string.
func RenderCSV(month *roster.RosterMonth) string {
	records := month.All()
	if len(records) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\n")

	for _, rec := range records {
		sb.WriteString(roster.Summary(rec.Kind, rec.Assignee))
		sb.WriteString(",")
		sb.WriteString(rec.Start.Format(csvDateFormat))
		sb.WriteString(",")
		sb.WriteString(rec.Start.Format(csvTimeFormat))
		sb.WriteString(",")
		sb.WriteString(rec.End.Format(csvDateFormat))
		sb.WriteString(",")
		sb.WriteString(rec.End.Format(csvTimeFormat))
		sb.WriteString(",False,,,True\n")
	}

	return sb.String()
}
