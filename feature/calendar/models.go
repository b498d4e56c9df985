package calendar

import "time"

// Event is one calendar entry in the store.
type Event struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	EventUID  string    `gorm:"column:event_uid;uniqueIndex;size:36"`
	Summary   string    `gorm:"column:summary;size:255"`
	StartsAt  time.Time `gorm:"column:starts_at;index"`
	EndsAt    time.Time `gorm:"column:ends_at"`
	Revision  int64     `gorm:"column:revision"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for Event.
func (Event) TableName() string {
	return "calendar_events"
}

// EventResponse is the JSON shape returned by the events endpoint.
type EventResponse struct {
	EventUID string    `json:"event_uid"`
	Summary  string    `json:"summary"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Revision int64     `json:"revision"`
}
