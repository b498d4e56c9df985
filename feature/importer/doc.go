// Package importer turns duty roster documents into calendar updates.
//
// The pipeline is: read the document into a cell grid, extract the
// typed roster month, read the current month back from the calendar
// store, diff the two snapshots, apply the minimal set of mutations,
// and render the change report. A dry run walks the same pipeline but
// skips store mutations and mail delivery; its report is identical to
// the live run's.
//
// Imports of the same month are serialized; different months may
// import concurrently.
package importer
