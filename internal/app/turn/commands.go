package turn

import (
	"context"
	"fmt"

	"aulagen/internal/app/eventlog"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
)

// PlaceAgent moves a student directly, bypassing the oracle and the turn
// guard. The memory stream is left untouched.
func (e *Engine) PlaceAgent(ctx context.Context, id string, x, y int) (classroom.Student, error) {
	var (
		moved    classroom.Student
		recorded []classroom.Event
	)
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := e.Roster.Relocate(txCtx, id, world.Point{X: x, Y: y}, classroom.PlacedStatus, classroom.PlacedThought)
		if err != nil {
			return err
		}
		moved = s
		recorded, err = e.Log.Record(txCtx, eventlog.System(fmt.Sprintf("Moviste a %s a (%d, %d)", s.Name, x, y)))
		return err
	})
	if err != nil {
		return classroom.Student{}, err
	}
	e.Log.Publish(ctx, recorded)
	e.logger().Info("student placed", "student_id", id, "x", x, "y", y)
	return moved, nil
}

// CreateAgent enrolls a new student on the first free walkable tile.
func (e *Engine) CreateAgent(ctx context.Context, name, personality string) (classroom.Student, error) {
	var (
		created  classroom.Student
		recorded []classroom.Event
	)
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := e.Roster.Create(txCtx, name, personality)
		if err != nil {
			return err
		}
		created = s
		recorded, err = e.Log.Record(txCtx, eventlog.System(fmt.Sprintf("%s se ha unido a la clase.", s.Name)))
		return err
	})
	if err != nil {
		return classroom.Student{}, err
	}
	e.Log.Publish(ctx, recorded)
	e.logger().Info("student enrolled", "student_id", created.ID, "x", created.Position.X, "y", created.Position.Y)
	return created, nil
}

// CurrentState returns a consistent copy of the roster and the event log.
func (e *Engine) CurrentState(ctx context.Context) (State, error) {
	var st State
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		students, err := e.Roster.List(txCtx)
		if err != nil {
			return err
		}
		events, err := e.Log.List(txCtx)
		if err != nil {
			return err
		}
		st.Students = students
		st.Events = events
		return nil
	})
	if err != nil {
		return State{}, err
	}
	st.TurnState = e.State()
	return st, nil
}
