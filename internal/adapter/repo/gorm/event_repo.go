package gormrepo

import (
	"context"

	"aulagen/internal/adapter/repo/gorm/model"
	"aulagen/internal/domain/classroom"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventJournal archives published classroom events. Rows are never read back
// into a session.
type EventJournal struct {
	db *gorm.DB
}

func NewEventJournal(db *gorm.DB) EventJournal {
	return EventJournal{db: db}
}

func (r EventJournal) Publish(ctx context.Context, events []classroom.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.ClassroomEvent, 0, len(events))
	for _, e := range events {
		rows = append(rows, model.ClassroomEvent{
			ID:         e.ID,
			Kind:       string(e.Kind),
			AgentID:    e.AgentID,
			AgentName:  e.AgentName,
			Content:    e.Content,
			OccurredAt: e.OccurredAt,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&rows).Error
}
