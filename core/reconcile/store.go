package reconcile

import (
	"context"
	"time"

	"roster-importer/core/roster"

	"go.uber.org/zap"
)

// StoredEvent is one calendar entry as listed by the external store.
type StoredEvent struct {
	// Summary is the event title, e.g. "FD: Judy" for roster shifts.
	Summary string

	// Start and End are the event timestamps.
	Start time.Time
	End   time.Time

	// ExternalRef is the store's opaque event identifier.
	ExternalRef string

	// Revision is the store's concurrency token for the event.
	Revision int64
}

// Store is the adapter interface to the external calendar-like store.
// Implementations own their transport concerns (timeouts, retries);
// the driver treats every call as returning exactly once with either a
// result or an error.
type Store interface {
	// ListMonth returns all events of the given calendar month.
	ListMonth(ctx context.Context, year int, month time.Month) ([]StoredEvent, error)

	// Create inserts an event for the record and returns its new
	// external reference.
	Create(ctx context.Context, rec roster.ShiftRecord) (string, error)

	// Update rewrites the event behind ref from the record, presenting
	// revision as the concurrency token, and returns the new revision.
	Update(ctx context.Context, ref string, rec roster.ShiftRecord, revision int64) (int64, error)

	// Delete removes the event behind ref.
	Delete(ctx context.Context, ref string) error
}

// ReadRosterMonth lists the given month from the store and rebuilds a
// RosterMonth from the event summaries. Entries whose summary does not
// parse as a roster shift are foreign calendar events; they are logged
// informationally and excluded, never treated as errors.
func ReadRosterMonth(ctx context.Context, store Store, year int, month time.Month, logger *zap.Logger) (*roster.RosterMonth, error) {
	events, err := store.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	m := roster.NewRosterMonth(year, month)
	for _, ev := range events {
		kind, assignee, ok := roster.ParseSummary(ev.Summary)
		if !ok {
			logger.Info("Ignoring non-roster event", zap.String("summary", ev.Summary))
			continue
		}
		rec := roster.ShiftRecord{
			ID:          roster.ShiftID(kind, ev.Start),
			Kind:        kind,
			Assignee:    assignee,
			Start:       ev.Start,
			End:         ev.End,
			ExternalRef: ev.ExternalRef,
			Revision:    ev.Revision,
		}
		if err := m.Add(rec); err != nil {
			// An event listed for this month but starting outside it
			// (e.g. stray timezone artifacts) is dropped like any other
			// foreign entry.
			logger.Info("Ignoring out-of-month event",
				zap.String("summary", ev.Summary),
				zap.Time("start", ev.Start),
			)
		}
	}
	return m, nil
}
