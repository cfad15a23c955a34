// Package replay lets late observers catch up on the classroom narrative.
package replay

import (
	"context"
	"errors"
	"strings"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

// Execute returns the newest Limit events matching the filters, oldest first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || (req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo) {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.List(ctx)
	if err != nil {
		return Response{}, err
	}
	events = filterByAgent(events, strings.TrimSpace(req.AgentID))
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	if req.Limit > 0 && len(events) > req.Limit {
		events = events[len(events)-req.Limit:]
	}
	return Response{Events: events, Counts: countKinds(events)}, nil
}

func filterByAgent(events []classroom.Event, agentID string) []classroom.Event {
	if agentID == "" {
		return events
	}
	out := make([]classroom.Event, 0, len(events))
	for _, evt := range events {
		if evt.AgentID == agentID {
			out = append(out, evt)
		}
	}
	return out
}

func filterByTimeWindow(events []classroom.Event, from, to int64) []classroom.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]classroom.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func countKinds(events []classroom.Event) map[classroom.EventKind]int {
	counts := make(map[classroom.EventKind]int, 4)
	for _, evt := range events {
		counts[evt.Kind]++
	}
	return counts
}
