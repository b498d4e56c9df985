package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes read access to the calendar store.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new calendar service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListEvents returns all events of the given month as API responses.
func (s *Service) ListEvents(ctx context.Context, year int, month time.Month) ([]EventResponse, error) {
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

	out := make([]EventResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, EventResponse{
			EventUID: row.EventUID,
			Summary:  row.Summary,
			StartsAt: row.StartsAt,
			EndsAt:   row.EndsAt,
			Revision: row.Revision,
		})
	}
	return out, nil
}
