package ports

import (
	"context"
	"time"

	"aulagen/internal/domain/classroom"
)

type StudentRepository interface {
	// Create stores a new student; ErrConflict when the id is taken.
	Create(ctx context.Context, s classroom.Student) error
	Get(ctx context.Context, id string) (classroom.Student, error)
	// FindByName returns the earliest enrolled student with that name.
	FindByName(ctx context.Context, name string) (classroom.Student, error)
	List(ctx context.Context) ([]classroom.Student, error)
	// Save replaces an existing record in one step; ErrNotFound when absent.
	Save(ctx context.Context, s classroom.Student) error
}

type EventRepository interface {
	Append(ctx context.Context, events ...classroom.Event) error
	List(ctx context.Context) ([]classroom.Event, error)
	// Recent returns the last n events in insertion order.
	Recent(ctx context.Context, n int) ([]classroom.Event, error)
}

// EventSink receives every event after it has been appended to the log.
type EventSink interface {
	Publish(ctx context.Context, events []classroom.Event) error
}

type TurnRecord struct {
	TurnID     string    `json:"turn_id"`
	Directive  string    `json:"directive,omitempty"`
	Outcome    string    `json:"outcome"`
	Applied    int       `json:"applied"`
	Dropped    int       `json:"dropped"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// TurnJournal keeps an audit trail of resolved turns. It is never read back
// to restore state.
type TurnJournal interface {
	RecordTurn(ctx context.Context, rec TurnRecord) error
}
