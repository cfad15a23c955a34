package memory

import (
	"context"

	"aulagen/internal/domain/classroom"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, events ...classroom.Event) error {
	r.store.write(ctx, func() {
		r.store.events = append(r.store.events, events...)
	})
	return nil
}

func (r EventRepo) List(ctx context.Context) ([]classroom.Event, error) {
	var out []classroom.Event
	r.store.read(ctx, func() {
		out = append([]classroom.Event(nil), r.store.events...)
	})
	return out, nil
}

func (r EventRepo) Recent(ctx context.Context, n int) ([]classroom.Event, error) {
	var out []classroom.Event
	r.store.read(ctx, func() {
		start := 0
		if n >= 0 && len(r.store.events) > n {
			start = len(r.store.events) - n
		}
		out = append([]classroom.Event(nil), r.store.events[start:]...)
	})
	return out, nil
}
