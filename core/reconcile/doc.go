// Package reconcile computes and applies the difference between two
// duty roster snapshots.
//
// One snapshot is freshly extracted from a roster document, the other
// is read back from an external calendar store. The diff is structural:
// records are matched by their stable slot id, so additions, deletions
// and in-place changes are detected correctly even when either side is
// traversed in arbitrary order. Applying the same roster twice yields
// an empty diff (idempotent re-application).
//
// # Architecture
//
// The package consists of three parts:
//
//  1. Engine (Compute): id-keyed set algebra over the two snapshots.
//     Records present on one side only land in the OnlyOld/OnlyNew
//     buckets; records present on both sides are compared by assignee
//     and by start/end at minute granularity, producing before/after
//     change pairs. Change pairs are ordered by ascending id for
//     reproducible reports.
//
//  2. Store: the narrow adapter interface to the external calendar
//     store (list, create, update, delete), plus ReadRosterMonth which
//     rebuilds a RosterMonth from stored event summaries.
//
//  3. Driver (Apply): orders the diff into a safe mutation sequence -
//     all deletions first, then additions, then updates - and collects
//     the outcome. Operations are independent: a failed call is
//     recorded and the batch continues. In dry-run mode every operation
//     is computed and logged but no mutating store call is made.
package reconcile
