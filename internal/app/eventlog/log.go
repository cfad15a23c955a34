// Package eventlog is the append-only narrative of a classroom session.
package eventlog

import (
	"context"
	"log/slog"
	"time"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"

	"github.com/google/uuid"
)

type Log struct {
	Events ports.EventRepository
	Sinks  []ports.EventSink
	Logger *slog.Logger
	Now    func() time.Time
	NewID  func() string
}

// System builds a system event with no speaker.
func System(content string) classroom.Event {
	return classroom.Event{Kind: classroom.EventSystem, Content: content}
}

// About builds an event attributed to a student.
func About(kind classroom.EventKind, s classroom.Student, content string) classroom.Event {
	return classroom.Event{Kind: kind, AgentID: s.ID, AgentName: s.Name, Content: content}
}

// Record stamps and stores events without notifying sinks. Use it inside a
// transaction and call Publish once the transaction has committed.
func (l Log) Record(ctx context.Context, events ...classroom.Event) ([]classroom.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}
	stamped := make([]classroom.Event, len(events))
	for i, e := range events {
		if e.ID == "" {
			e.ID = l.newID()
		}
		if e.OccurredAt.IsZero() {
			e.OccurredAt = l.now()
		}
		stamped[i] = e
	}
	if err := l.Events.Append(ctx, stamped...); err != nil {
		return nil, err
	}
	return stamped, nil
}

// Publish fans events out to every sink. Sink failures are logged only.
func (l Log) Publish(ctx context.Context, events []classroom.Event) {
	if len(events) == 0 {
		return
	}
	for _, sink := range l.Sinks {
		if sink == nil {
			continue
		}
		if err := sink.Publish(ctx, events); err != nil {
			l.logger().Warn("event sink publish failed", "events", len(events), "error", err)
		}
	}
}

func (l Log) Append(ctx context.Context, events ...classroom.Event) ([]classroom.Event, error) {
	stamped, err := l.Record(ctx, events...)
	if err != nil {
		return nil, err
	}
	l.Publish(ctx, stamped)
	return stamped, nil
}

func (l Log) Recent(ctx context.Context, n int) ([]classroom.Event, error) {
	return l.Events.Recent(ctx, n)
}

func (l Log) List(ctx context.Context) ([]classroom.Event, error) {
	return l.Events.List(ctx)
}

func (l Log) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l Log) newID() string {
	if l.NewID != nil {
		return l.NewID()
	}
	return uuid.NewString()
}

func (l Log) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
