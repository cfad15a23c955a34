// Package turn drives the classroom simulation one oracle-resolved turn at a
// time and hosts the direct teacher commands.
package turn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"aulagen/internal/app/eventlog"
	"aulagen/internal/app/oracle"
	"aulagen/internal/app/ports"
	"aulagen/internal/app/roster"
	"aulagen/internal/domain/classroom"

	"github.com/google/uuid"
)

var (
	ErrTurnInProgress = errors.New("turn already in progress")
	ErrTicketSpent    = errors.New("turn ticket already resolved")

	errDuplicateIntention = errors.New("student already updated this turn")
)

const (
	DefaultOracleTimeout = 60 * time.Second

	failureEvent  = "Error al procesar la simulación."
	freeRunEvent  = "Pasa el tiempo..."
	directiveText = "El Profesor interviene: \"%s\""
)

// Engine owns the turn state of one classroom session. Use it by pointer.
type Engine struct {
	Roster     roster.Registry
	Log        eventlog.Log
	Oracle     oracle.Gateway
	Classifier classroom.Classifier
	TxManager  ports.TxManager
	Metrics    ports.TurnMetrics
	Journal    ports.TurnJournal
	Logger     *slog.Logger
	Now        func() time.Time
	NewID      func() string
	// OracleTimeout bounds the oracle call; zero means DefaultOracleTimeout.
	OracleTimeout time.Duration

	resolving atomic.Bool
}

func (e *Engine) State() classroom.TurnState {
	if e.resolving.Load() {
		return classroom.TurnResolving
	}
	return classroom.TurnIdle
}

// Ticket is an accepted turn that has not been resolved yet. The engine stays
// in Resolving until Resolve returns.
type Ticket struct {
	ID        string
	StartedAt time.Time

	engine *Engine
	spent  atomic.Bool
}

// Begin moves the engine to Resolving. A second Begin before the first
// ticket resolves is rejected with ErrTurnInProgress; nothing is queued.
func (e *Engine) Begin() (*Ticket, error) {
	if !e.resolving.CompareAndSwap(false, true) {
		if e.Metrics != nil {
			e.Metrics.RecordRejected()
		}
		e.logger().Info("turn rejected", "reason", "in_progress")
		return nil, ErrTurnInProgress
	}
	return &Ticket{ID: e.newID(), StartedAt: e.now(), engine: e}, nil
}

// RequestTurn accepts and resolves a turn in one call.
func (e *Engine) RequestTurn(ctx context.Context, directive string) (Outcome, error) {
	t, err := e.Begin()
	if err != nil {
		return Outcome{}, err
	}
	return t.Resolve(ctx, directive)
}

// Resolve runs the accepted turn to completion. Oracle and per-intention
// failures are reported through the event log and the Outcome, not as errors.
func (t *Ticket) Resolve(ctx context.Context, directive string) (Outcome, error) {
	if !t.spent.CompareAndSwap(false, true) {
		return Outcome{}, ErrTicketSpent
	}
	e := t.engine
	defer e.resolving.Store(false)

	directive = strings.TrimSpace(directive)
	out := Outcome{TurnID: t.ID, Directive: directive}
	log := e.logger().With("turn_id", t.ID)
	log.Info("turn accepted", "directive", directive != "")

	announce := freeRunEvent
	if directive != "" {
		announce = fmt.Sprintf(directiveText, directive)
	}
	if _, err := e.Log.Append(ctx, eventlog.System(announce)); err != nil {
		log.Error("announce turn", "error", err)
	}

	if err := e.consultAndApply(ctx, log, directive, &out); err != nil {
		out.Failed = true
		out.Error = err.Error()
		log.Error("turn failed", "error", err)
		if _, appendErr := e.Log.Append(ctx, eventlog.System(failureEvent)); appendErr != nil {
			log.Error("append failure event", "error", appendErr)
		}
	}

	e.finish(ctx, t, out)
	log.Info("turn resolved", "applied", out.Applied, "dropped", out.Dropped, "substituted", out.Substituted, "failed", out.Failed)
	return out, nil
}

func (e *Engine) consultAndApply(ctx context.Context, log *slog.Logger, directive string, out *Outcome) error {
	students, err := e.Roster.List(ctx)
	if err != nil {
		return fmt.Errorf("list students: %w", err)
	}
	history, err := e.Log.Recent(ctx, e.Oracle.Window())
	if err != nil {
		return fmt.Errorf("recent events: %w", err)
	}

	// An accepted turn is never cancelled by its caller.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.oracleTimeout())
	defer cancel()
	intentions, rejected, err := e.Oracle.Consult(callCtx, e.Oracle.BuildRequest(students, history, directive))
	if err != nil {
		return err
	}

	for _, r := range rejected {
		e.drop(log, out, dropMalformed, "", r.Err)
	}

	seen := make(map[string]bool, len(intentions))
	for _, in := range intentions {
		e.apply(ctx, log, in, seen, out)
	}
	return nil
}

func (e *Engine) apply(ctx context.Context, log *slog.Logger, in oracle.Intention, seen map[string]bool, out *Outcome) {
	var (
		recorded    []classroom.Event
		substituted bool
	)
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := e.Roster.LookupByName(txCtx, in.StudentName)
		if err != nil {
			return err
		}
		if seen[s.ID] {
			return errDuplicateIntention
		}
		target, stays := e.Oracle.Resolve(in, s.Position)
		substituted = stays

		recorded, err = e.Log.Record(txCtx, oracle.Narrate(e.Classifier, in, s)...)
		if err != nil {
			return err
		}
		if _, err := e.Roster.ApplyTurnUpdate(txCtx, s.ID, in.Action, in.Thought, in.NewMemory, target); err != nil {
			return err
		}
		seen[s.ID] = true
		return nil
	})
	switch {
	case errors.Is(err, ports.ErrNotFound):
		e.drop(log, out, dropUnknown, in.StudentName, err)
		return
	case errors.Is(err, errDuplicateIntention):
		e.drop(log, out, dropDuplicate, in.StudentName, err)
		return
	case err != nil:
		e.drop(log, out, dropApplyFailure, in.StudentName, err)
		return
	}

	e.Log.Publish(ctx, recorded)
	out.Applied++
	if substituted {
		out.Substituted++
		log.Debug("target not walkable, student stays", "student", in.StudentName, "target_x", in.TargetX, "target_y", in.TargetY)
	}
	if e.Metrics != nil {
		e.Metrics.RecordIntention(true, "")
	}
}

func (e *Engine) drop(log *slog.Logger, out *Outcome, reason, student string, err error) {
	out.Dropped++
	log.Warn("intention dropped", "reason", reason, "student", student, "error", err)
	if e.Metrics != nil {
		e.Metrics.RecordIntention(false, reason)
	}
}

func (e *Engine) finish(ctx context.Context, t *Ticket, out Outcome) {
	outcome := ports.TurnCompleted
	if out.Failed {
		outcome = ports.TurnFailed
	}
	if e.Metrics != nil {
		e.Metrics.RecordTurn(outcome)
	}
	if e.Journal == nil {
		return
	}
	rec := ports.TurnRecord{
		TurnID:     t.ID,
		Directive:  out.Directive,
		Outcome:    string(outcome),
		Applied:    out.Applied,
		Dropped:    out.Dropped,
		StartedAt:  t.StartedAt,
		FinishedAt: e.now(),
	}
	if err := e.Journal.RecordTurn(context.WithoutCancel(ctx), rec); err != nil {
		e.logger().Warn("journal turn", "turn_id", t.ID, "error", err)
	}
}

func (e *Engine) oracleTimeout() time.Duration {
	if e.OracleTimeout > 0 {
		return e.OracleTimeout
	}
	return DefaultOracleTimeout
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
