package turn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"aulagen/internal/adapter/repo/memory"
	"aulagen/internal/app/eventlog"
	"aulagen/internal/app/oracle"
	"aulagen/internal/app/ports"
	"aulagen/internal/app/roster"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
)

type stubProvider struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
	// gate, when set, holds Propose until closed.
	gate    chan struct{}
	entered chan struct{}
}

func (p *stubProvider) Propose(ctx context.Context, _ ports.OracleRequest) ([]byte, error) {
	p.mu.Lock()
	p.calls++
	gate, entered := p.gate, p.entered
	p.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []byte(p.reply), p.err
}

func (p *stubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type stubMetrics struct {
	mu        sync.Mutex
	turns     []ports.TurnOutcome
	rejected  int
	applied   int
	dropped   map[string]int
}

func (m *stubMetrics) RecordTurn(outcome ports.TurnOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, outcome)
}

func (m *stubMetrics) RecordRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected++
}

func (m *stubMetrics) RecordIntention(applied bool, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if applied {
		m.applied++
		return
	}
	if m.dropped == nil {
		m.dropped = map[string]int{}
	}
	m.dropped[reason]++
}

type stubJournal struct {
	records []ports.TurnRecord
}

func (j *stubJournal) RecordTurn(_ context.Context, rec ports.TurnRecord) error {
	j.records = append(j.records, rec)
	return nil
}

type fixture struct {
	engine   *Engine
	provider *stubProvider
	metrics  *stubMetrics
	journal  *stubJournal
}

func newFixture(t *testing.T, students ...classroom.Student) fixture {
	t.Helper()
	store := memory.NewStore()
	if len(students) == 0 {
		students = classroom.SeedStudents()
	}
	store.SeedStudents(students...)

	grid := world.DefaultClassroom()
	provider := &stubProvider{}
	metrics := &stubMetrics{}
	journal := &stubJournal{}
	seq := 0
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	e := &Engine{
		Roster: roster.Registry{
			Students: memory.NewStudentRepo(store),
			Grid:     grid,
			NewID:    func() string { seq++; return fmt.Sprintf("new-%d", seq) },
		},
		Log: eventlog.Log{
			Events: memory.NewEventRepo(store),
			Now:    func() time.Time { clock = clock.Add(time.Second); return clock },
		},
		Oracle:    oracle.Gateway{Provider: provider, Grid: grid},
		TxManager: memory.NewTxManager(store),
		Metrics:   metrics,
		Journal:   journal,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return fixture{engine: e, provider: provider, metrics: metrics, journal: journal}
}

func updates(entries ...string) string {
	out := `{"updates":[`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	return out + "]}"
}

func intention(name, thought, action string, x, y int, memory string) string {
	return fmt.Sprintf(`{"studentName":%q,"thought":%q,"action":%q,"targetX":%d,"targetY":%d,"newMemory":%q}`,
		name, thought, action, x, y, memory)
}

func studentByName(t *testing.T, st State, name string) classroom.Student {
	t.Helper()
	for _, s := range st.Students {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("student %q not in state", name)
	return classroom.Student{}
}

func mustState(t *testing.T, e *Engine) State {
	t.Helper()
	st, err := e.CurrentState(context.Background())
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	return st
}
