package importer

import (
	"time"

	"roster-importer/core/reconcile"
)

// ImportRequest describes one import run.
type ImportRequest struct {
	// Filename is the original document name. Year and Month are
	// inferred from it (convention YYYY_MM.<ext>) when left zero.
	Filename string

	// Year and Month select the roster month to reconcile.
	Year  int
	Month time.Month

	// DryRun computes and reports every change without touching the
	// store or sending mail.
	DryRun bool

	// CreateCSV additionally renders the extracted roster as a Google
	// calendar CSV.
	CreateCSV bool
}

// NoChangesMessage is returned when both snapshots already agree.
const NoChangesMessage = "no changes in duty roster"

// ImportResult is the outcome of one import run.
type ImportResult struct {
	// Changed is false when the roster and the store already agreed.
	Changed bool

	// Report is the rendered change report, or NoChangesMessage.
	Report string

	// CSV holds the rendered calendar CSV when requested.
	CSV string

	// Outcome describes the store mutations of the run.
	Outcome reconcile.Outcome
}
