package reconcile

import (
	"context"

	"roster-importer/core/roster"

	"go.uber.org/zap"
)

// Apply pushes a computed diff to the store.
//
// The execution order is fixed and significant: all deletions first,
// then all additions, then all updates. Deleting before adding avoids
// transient duplicate-looking entries when a slot's assignee moves
// between two records with different ids in the same run; updates run
// last because they target external references untouched by the
// delete/add pass.
//
// Each operation is independent. A failure is logged, recorded in the
// outcome and the batch continues; a single bad record never aborts
// the run.
// With opts.DryRun set, every operation is logged but no mutating
// store call is made.
func Apply(ctx context.Context, diff *Diff, store Store, opts Options, logger *zap.Logger) Outcome {
	outcome := Outcome{DryRun: opts.DryRun}

	if !diff.HasDifferences() {
		return outcome
	}
	outcome.Attempted = !opts.DryRun

	for _, rec := range diff.OnlyOld.All() {
		logger.Info("Deleting shift event",
			zap.String("id", rec.ID),
			zap.String("ref", rec.ExternalRef),
			zap.Bool("dry_run", opts.DryRun),
		)
		if opts.DryRun {
			outcome.Deleted++
			continue
		}
		if err := store.Delete(ctx, rec.ExternalRef); err != nil {
			logger.Error("Deleting shift event failed",
				zap.String("id", rec.ID),
				zap.String("ref", rec.ExternalRef),
				zap.Error(err),
			)
			outcome.Failed = append(outcome.Failed, &OperationError{Op: OpDelete, Record: rec, Err: err})
			continue
		}
		outcome.Deleted++
	}

	for _, rec := range diff.OnlyNew.All() {
		logger.Info("Creating shift event",
			zap.String("id", rec.ID),
			zap.String("summary", roster.Summary(rec.Kind, rec.Assignee)),
			zap.Bool("dry_run", opts.DryRun),
		)
		if opts.DryRun {
			outcome.Added++
			continue
		}
		if _, err := store.Create(ctx, rec); err != nil {
			logger.Error("Creating shift event failed",
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			outcome.Failed = append(outcome.Failed, &OperationError{Op: OpCreate, Record: rec, Err: err})
			continue
		}
		outcome.Added++
	}

	for _, change := range diff.Changes {
		rec := change.After
		logger.Info("Updating shift event",
			zap.String("id", rec.ID),
			zap.String("ref", rec.ExternalRef),
			zap.String("summary", roster.Summary(rec.Kind, rec.Assignee)),
			zap.Bool("dry_run", opts.DryRun),
		)
		if opts.DryRun {
			outcome.Updated++
			continue
		}
		if _, err := store.Update(ctx, rec.ExternalRef, rec, rec.Revision); err != nil {
			logger.Error("Updating shift event failed",
				zap.String("id", rec.ID),
				zap.String("ref", rec.ExternalRef),
				zap.Error(err),
			)
			outcome.Failed = append(outcome.Failed, &OperationError{Op: OpUpdate, Record: rec, Err: err})
			continue
		}
		outcome.Updated++
	}

	return outcome
}
