package reconcile

import (
	"fmt"

	"roster-importer/core/roster"
)

// Change is a before/after pair for a slot whose assignee or times
// changed between the two snapshots. Both records share the same id.
// After carries the ExternalRef and Revision copied forward from
// Before, so it can be pushed to the store as an update.
type Change struct {
	Before roster.ShiftRecord
	After  roster.ShiftRecord
}

// Diff is the structural difference between an old and a new roster
// snapshot of the same month. It is immutable after Compute returns.
type Diff struct {
	// OnlyOld holds the records present in the old snapshot only. These
	// become deletions.
	OnlyOld *roster.RosterMonth

	// OnlyNew holds the records present in the new snapshot only. These
	// become additions.
	OnlyNew *roster.RosterMonth

	// Changes holds the in-place changes ordered by ascending id.
	Changes []Change
}

// HasDifferences reports whether any bucket is non-empty. A false
// result short-circuits reconciliation and reporting entirely.
func (d *Diff) HasDifferences() bool {
	return d.OnlyOld.Len() > 0 || d.OnlyNew.Len() > 0 || len(d.Changes) > 0
}

// Deletions returns the number of records to delete.
func (d *Diff) Deletions() int {
	return d.OnlyOld.Len()
}

// Additions returns the number of records to add.
func (d *Diff) Additions() int {
	return d.OnlyNew.Len()
}

// OpType names a store mutation.
type OpType string

const (
	OpDelete OpType = "delete"
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
)

// OperationError records a single failed store mutation. One failure
// never aborts the batch; the driver collects these in the Outcome.
type OperationError struct {
	Op     OpType
	Record roster.ShiftRecord
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s of shift %s failed: %v", e.Op, e.Record.ID, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Options controls driver behavior.
type Options struct {
	// DryRun computes and logs every operation but skips all mutating
	// store calls. Reports rendered from the diff are byte-identical to
	// a real run.
	DryRun bool
}

// Outcome is the result of applying a diff against the store.
type Outcome struct {
	// Attempted is false when nothing was applied at all: the diff had
	// no differences, or the run was a dry run.
	Attempted bool

	// DryRun records whether the driver ran in dry-run mode.
	DryRun bool

	// Deleted, Added and Updated count the operations that succeeded
	// (or, in a dry run, would have been issued).
	Deleted int
	Added   int
	Updated int

	// Failed lists the operations that errored.
	Failed []*OperationError
}

// FullyApplied reports whether every operation succeeded.
func (o Outcome) FullyApplied() bool {
	return o.Attempted && len(o.Failed) == 0
}

// PartiallyApplied reports whether some operations failed while others
// went through.
func (o Outcome) PartiallyApplied() bool {
	return o.Attempted && len(o.Failed) > 0
}
