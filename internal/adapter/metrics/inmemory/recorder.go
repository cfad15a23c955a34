package inmemory

import (
	"sync"

	"aulagen/internal/app/ports"
)

type Snapshot struct {
	TurnTotal         uint64            `json:"turn_total"`
	TurnCompleted     uint64            `json:"turn_completed"`
	TurnFailed        uint64            `json:"turn_failed"`
	TurnRejected      uint64            `json:"turn_rejected"`
	IntentionsApplied uint64            `json:"intentions_applied"`
	IntentionsDropped uint64            `json:"intentions_dropped"`
	DroppedByReason   map[string]uint64 `json:"dropped_by_reason"`
}

type Recorder struct {
	mu        sync.Mutex
	completed uint64
	failed    uint64
	rejected  uint64
	applied   uint64
	dropped   uint64
	byReason  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordTurn(outcome ports.TurnOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if outcome == ports.TurnFailed {
		r.failed++
		return
	}
	r.completed++
}

func (r *Recorder) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) RecordIntention(applied bool, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if applied {
		r.applied++
		return
	}
	r.dropped++
	if reason == "" {
		reason = "unknown"
	}
	r.byReason[reason]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TurnCompleted:     r.completed,
		TurnFailed:        r.failed,
		TurnRejected:      r.rejected,
		TurnTotal:         r.completed + r.failed,
		IntentionsApplied: r.applied,
		IntentionsDropped: r.dropped,
		DroppedByReason:   make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byReason {
		out.DroppedByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
