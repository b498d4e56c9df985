package report

import (
	"fmt"
	"strings"

	"roster-importer/core/reconcile"
	"roster-importer/core/roster"
)

const (
	dateFormat = "02.01."
	timeFormat = "15:04"
	separator  = "\n-------------------------------------------\n"
)

// Render produces the textual change report for a diff. The sections
// appear in the fixed order deleted, added, changed; change entries
// list the before line first, then the after line.
func Render(diff *reconcile.Diff) string {
	var sb strings.Builder

	sb.WriteString("The duty roster has been updated.\n\n")
	fmt.Fprintf(&sb, "%d shift(s) deleted, %d shift(s) added, %d shift(s) changed.\n",
		diff.Deletions(), diff.Additions(), len(diff.Changes))

	if deletions := diff.OnlyOld.All(); len(deletions) > 0 {
		sb.WriteString(separator)
		sb.WriteString("The following shifts were deleted:\n\n")
		for _, rec := range deletions {
			writeShiftLine(&sb, "Date/shift: ", rec)
		}
	}

	if additions := diff.OnlyNew.All(); len(additions) > 0 {
		sb.WriteString(separator)
		sb.WriteString("The following shifts were added:\n\n")
		for _, rec := range additions {
			writeShiftLine(&sb, "Date/shift: ", rec)
		}
	}

	if len(diff.Changes) > 0 {
		sb.WriteString(separator)
		sb.WriteString("The following shifts were changed:\n\n")
		for _, change := range diff.Changes {
			writeShiftLine(&sb, "Date/shift before: ", change.Before)
			writeShiftLine(&sb, "Date/shift after:  ", change.After)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeShiftLine(sb *strings.Builder, prefix string, rec roster.ShiftRecord) {
	fmt.Fprintf(sb, "%s%s %s from %s to %s\n",
		prefix,
		rec.Start.Format(dateFormat),
		roster.Summary(rec.Kind, rec.Assignee),
		rec.Start.Format(timeFormat),
		rec.End.Format(timeFormat),
	)
}

// RenderFailures produces the block appended to a report when some
// store operations did not go through. Empty when none failed.
func RenderFailures(failed []*reconcile.OperationError) string {
	if len(failed) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(separator)
	fmt.Fprintf(&sb, "WARNING: %d calendar operation(s) failed and were not applied:\n\n", len(failed))
	for _, f := range failed {
		sb.WriteString(f.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderStatistics produces the statistics block appended to update
// mails.
func RenderStatistics(stats *Statistics) string {
	var sb strings.Builder

	sb.WriteString(separator)
	sb.WriteString("Statistics:")
	fmt.Fprintf(&sb, "\nTotal shifts:      %d", stats.TotalPossibleShifts())
	fmt.Fprintf(&sb, "\nAssigned:          %d", stats.TotalAssignedShifts())
	fmt.Fprintf(&sb, "\nIn %%:              %.1f", stats.PercentageAssigned())
	fmt.Fprintf(&sb, "\nEarly:             %d / %d", stats.PossibleEarlyShifts, stats.AssignedEarlyShifts)
	fmt.Fprintf(&sb, "\nLate:              %d / %d", stats.PossibleLateShifts, stats.AssignedLateShifts)
	fmt.Fprintf(&sb, "\nNight:             %d / %d", stats.PossibleNightShifts, stats.AssignedNightShifts)
	sb.WriteString("\n\nPer assignee total / percent (early/late/night):")

	for _, a := range stats.SortedAssignees() {
		fmt.Fprintf(&sb, "\n%s: \t", a.Name)
		if len(a.Name) < 7 {
			sb.WriteString("\t")
		}
		fmt.Fprintf(&sb, "%d / %.1f (%d/%d/%d)",
			a.TotalShifts(), a.Percentage, a.EarlyShifts, a.LateShifts, a.NightShifts)
	}
	sb.WriteString("\n")

	return sb.String()
}
