// Package oracle translates classroom state into requests for the cognitive
// oracle and its replies into validated intentions.
package oracle

import (
	"context"
	"fmt"

	"aulagen/internal/app/eventlog"
	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
)

const DefaultHistoryWindow = 15

type Gateway struct {
	Provider ports.IntentionProvider
	Grid     *world.Grid
	// HistoryWindow bounds how many recent events are replayed; zero means DefaultHistoryWindow.
	HistoryWindow int
}

func (g Gateway) Window() int {
	if g.HistoryWindow > 0 {
		return g.HistoryWindow
	}
	return DefaultHistoryWindow
}

// BuildRequest serializes the classroom for the oracle. history should
// already be the bounded recent window.
func (g Gateway) BuildRequest(students []classroom.Student, history []classroom.Event, directive string) ports.OracleRequest {
	if n := g.Window(); len(history) > n {
		history = history[len(history)-n:]
	}
	return ports.OracleRequest{
		Prompt:         renderPrompt(g.Grid, students, history, directive),
		ResponseSchema: ResponseSchema,
		Directive:      directive,
		Students:       students,
	}
}

// Consult performs the oracle call and parses its reply.
func (g Gateway) Consult(ctx context.Context, req ports.OracleRequest) ([]Intention, []Rejection, error) {
	if g.Provider == nil {
		return nil, nil, fmt.Errorf("%w: no provider configured", ErrOracleUnavailable)
	}
	raw, err := g.Provider.Propose(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	return ParseReply(raw)
}

// Resolve clamps the proposed target into the grid and keeps the student in
// place when the clamped tile cannot be stood on.
func (g Gateway) Resolve(in Intention, current world.Point) (target world.Point, substituted bool) {
	target = g.Grid.Clamp(in.TargetX, in.TargetY)
	if !g.Grid.WalkableAt(target) {
		return current, true
	}
	return target, false
}

// Narrate returns the two events an applied intention produces: the thought
// first, then the visible action or dialogue.
func Narrate(c classroom.Classifier, in Intention, s classroom.Student) []classroom.Event {
	return []classroom.Event{
		eventlog.About(classroom.EventThought, s, in.Thought),
		eventlog.About(c.Classify(in.Action), s, in.Action),
	}
}
