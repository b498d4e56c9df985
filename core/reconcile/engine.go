package reconcile

import (
	"sort"
	"time"

	"roster-importer/core/roster"
)

// Compute builds the structural diff between an old and a new roster
// snapshot of the same month.
//
// Records are matched by id. Ids present on one side only land in the
// OnlyOld/OnlyNew buckets. For ids present on both sides, the assignee
// is compared exactly and start/end at minute granularity; sub-minute
// differences are ignored to tolerate store round-tripping jitter. On
// a detected change the old record's ExternalRef and Revision are
// copied onto the after-side record so the update targets the correct
// stored event.
func Compute(oldRoster, newRoster *roster.RosterMonth) *Diff {
	diff := &Diff{
		OnlyOld: roster.NewRosterMonth(oldRoster.Year(), oldRoster.Month()),
		OnlyNew: roster.NewRosterMonth(newRoster.Year(), newRoster.Month()),
	}

	newIDs := newRoster.IDs()
	oldIDs := oldRoster.IDs()

	for _, rec := range oldRoster.All() {
		if _, inNew := newIDs[rec.ID]; !inNew {
			// Out-of-month records cannot occur here: rec came from a
			// roster of the same month.
			_ = diff.OnlyOld.Add(rec)
		}
	}

	for _, rec := range newRoster.All() {
		if _, inOld := oldIDs[rec.ID]; !inOld {
			_ = diff.OnlyNew.Add(rec)
		}
	}

	// All() is id-sorted, so Changes ends up ordered by ascending id.
	for _, newRec := range newRoster.All() {
		oldRec, ok := oldRoster.Get(newRec.ID)
		if !ok {
			continue
		}
		if !recordChanged(oldRec, newRec) {
			continue
		}
		newRec.ExternalRef = oldRec.ExternalRef
		newRec.Revision = oldRec.Revision
		diff.Changes = append(diff.Changes, Change{Before: oldRec, After: newRec})
	}

	sort.Slice(diff.Changes, func(i, j int) bool {
		return diff.Changes[i].After.ID < diff.Changes[j].After.ID
	})

	return diff
}

// recordChanged compares two records of the same slot by assignee and
// by start/end at minute granularity.
func recordChanged(before, after roster.ShiftRecord) bool {
	if before.Assignee != after.Assignee {
		return true
	}
	if !sameMinute(before.Start, after.Start) {
		return true
	}
	return !sameMinute(before.End, after.End)
}

func sameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
