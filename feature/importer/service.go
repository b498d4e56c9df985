package importer

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"roster-importer/core/mailer"
	"roster-importer/core/reconcile"
	"roster-importer/core/roster"
	"roster-importer/feature/report"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// mailSubject heads every update mail.
const mailSubject = "Duty roster updated"

// Service runs the import pipeline.
type Service struct {
	store    reconcile.Store
	reader   DocumentReader
	archiver *Archiver
	sender   mailer.Sender
	logger   *zap.Logger

	// mu serializes imports per month. Concurrent imports of different
	// months proceed in parallel.
	mu     sync.Mutex
	months map[string]*sync.Mutex
}

// NewService creates an import service.
func NewService(store reconcile.Store, reader DocumentReader, archiver *Archiver, sender mailer.Sender, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		reader:   reader,
		archiver: archiver,
		sender:   sender,
		logger:   logger,
		months:   make(map[string]*sync.Mutex),
	}
}

// Import extracts the roster from the document, reconciles it against
// the calendar store and returns the rendered report.
func (s *Service) Import(ctx context.Context, req ImportRequest, document []byte) (*ImportResult, error) {
	if req.Year == 0 || req.Month == 0 {
		year, month, ok := ParseRosterFilename(req.Filename)
		if !ok {
			return nil, &DateRangeError{
				Reason: fmt.Sprintf("year/month not given and filename %q does not follow YYYY_MM.<ext>", req.Filename),
			}
		}
		req.Year, req.Month = year, month
	}

	lock := s.monthLock(req.Year, int(req.Month))
	lock.Lock()
	defer lock.Unlock()

	var newRoster, oldRoster *roster.RosterMonth

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grid, err := s.reader.ReadGrid(bytes.NewReader(document))
		if err != nil {
			return err
		}
		extracted, err := NewExtractor(s.logger).Extract(grid, req.Year)
		if err != nil {
			return err
		}
		if extracted.Month() != req.Month {
			return &DateRangeError{
				Reason: fmt.Sprintf("document covers %s, expected %s", extracted.Month(), req.Month),
			}
		}
		newRoster = extracted
		return nil
	})
	g.Go(func() error {
		read, err := reconcile.ReadRosterMonth(gctx, s.store, req.Year, req.Month, s.logger)
		if err != nil {
			return err
		}
		oldRoster = read
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.archiver.Store(ctx, req.Year, int(req.Month), req.Filename, document); err != nil {
		// The import is still good; the copy is best effort.
		s.logger.Warn("Archiving roster document failed", zap.Error(err))
	}

	result := &ImportResult{}
	if req.CreateCSV {
		result.CSV = RenderCSV(newRoster)
	}

	diff := reconcile.Compute(oldRoster, newRoster)
	if !diff.HasDifferences() {
		s.logger.Info("No changes in duty roster",
			zap.Int("year", req.Year),
			zap.Stringer("month", req.Month),
		)
		result.Report = NoChangesMessage
		return result, nil
	}

	result.Changed = true
	result.Outcome = reconcile.Apply(ctx, diff, s.store, reconcile.Options{DryRun: req.DryRun}, s.logger)
	if result.Outcome.PartiallyApplied() {
		s.logger.Warn("Calendar store rejected some operations",
			zap.Int("failed", len(result.Outcome.Failed)),
			zap.Int("applied", result.Outcome.Deleted+result.Outcome.Added+result.Outcome.Updated),
		)
	}

	stats := report.ComputeStatistics(newRoster)
	result.Report = report.Render(diff) + report.RenderStatistics(stats) +
		report.RenderFailures(result.Outcome.Failed)

	if s.sender != nil && !req.DryRun {
		if err := s.sender.Send(ctx, mailSubject, result.Report); err != nil {
			s.logger.Warn("Sending update mail failed", zap.Error(err))
		}
	}

	return result, nil
}

func (s *Service) monthLock(year, month int) *sync.Mutex {
	key := fmt.Sprintf("%04d-%02d", year, month)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock := s.months[key]
	if lock == nil {
		lock = &sync.Mutex{}
		s.months[key] = lock
	}
	return lock
}
