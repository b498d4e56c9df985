package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roster-importer/core/reconcile"
	"roster-importer/core/roster"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no event matches the given reference.
	ErrNotFound = errors.New("calendar event not found")
	// ErrRevisionConflict is returned when an update presents a stale revision.
	ErrRevisionConflict = errors.New("calendar event revision conflict")
)

// Store is the MySQL-backed implementation of reconcile.Store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListMonth returns all events starting within the given calendar month.
func (s *Store) ListMonth(ctx context.Context, year int, month time.Month) ([]reconcile.StoredEvent, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	var rows []Event
	err := s.db.WithContext(ctx).
		Where("starts_at >= ? AND starts_at < ?", from, to).
		Order("starts_at, event_uid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]reconcile.StoredEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, reconcile.StoredEvent{
			Summary:     row.Summary,
			Start:       row.StartsAt,
			End:         row.EndsAt,
			ExternalRef: row.EventUID,
			Revision:    row.Revision,
		})
	}
	return events, nil
}

// Create inserts a calendar event for the record and returns its UID.
func (s *Store) Create(ctx context.Context, rec roster.ShiftRecord) (string, error) {
	event := Event{
		EventUID: uuid.NewString(),
		Summary:  roster.Summary(rec.Kind, rec.Assignee),
		StartsAt: rec.Start,
		EndsAt:   rec.End,
		Revision: 1,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return event.EventUID, nil
}

// Update rewrites the event behind ref from the record. The presented
// revision must match the stored one; otherwise the update is rejected.
func (s *Store) Update(ctx context.Context, ref string, rec roster.ShiftRecord, revision int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&Event{}).
		Where("event_uid = ? AND revision = ?", ref, revision).
		Updates(map[string]any{
			"summary":   roster.Summary(rec.Kind, rec.Assignee),
			"starts_at": rec.Start,
			"ends_at":   rec.End,
			"revision":  revision + 1,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update calendar event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish a vanished event from a concurrent writer.
		var count int64
		if err := s.db.WithContext(ctx).Model(&Event{}).Where("event_uid = ?", ref).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to inspect calendar event: %w", err)
		}
		if count == 0 {
			return 0, ErrNotFound
		}
		return 0, ErrRevisionConflict
	}
	return revision + 1, nil
}

// Delete removes the event behind ref.
func (s *Store) Delete(ctx context.Context, ref string) error {
	res := s.db.WithContext(ctx).Where("event_uid = ?", ref).Delete(&Event{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete calendar event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
