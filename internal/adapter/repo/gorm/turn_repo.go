package gormrepo

import (
	"context"

	"aulagen/internal/adapter/repo/gorm/model"
	"aulagen/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TurnJournal struct {
	db *gorm.DB
}

func NewTurnJournal(db *gorm.DB) TurnJournal {
	return TurnJournal{db: db}
}

func (r TurnJournal) RecordTurn(ctx context.Context, rec ports.TurnRecord) error {
	row := model.ClassroomTurn{
		TurnID:     rec.TurnID,
		Directive:  rec.Directive,
		Outcome:    rec.Outcome,
		Applied:    int32(rec.Applied),
		Dropped:    int32(rec.Dropped),
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "turn_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"outcome", "applied", "dropped", "finished_at"}),
		}).
		Create(&row).Error
}
