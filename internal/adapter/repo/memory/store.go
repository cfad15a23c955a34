package memory

import (
	"context"
	"sync"

	"aulagen/internal/domain/classroom"
)

type Store struct {
	mu       sync.RWMutex
	students map[string]classroom.Student
	order    []string
	events   []classroom.Event
}

func NewStore() *Store {
	return &Store{
		students: make(map[string]classroom.Student),
	}
}

// SeedStudents enrolls students directly, skipping ids already present.
func (s *Store) SeedStudents(students ...classroom.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range students {
		if _, ok := s.students[st.ID]; ok {
			continue
		}
		s.students[st.ID] = st.Clone()
		s.order = append(s.order, st.ID)
	}
}

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

func (s *Store) read(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type storeState struct {
	students map[string]classroom.Student
	order    []string
	events   int
}

// snapshot must be called with mu held. Events are append-only, so their
// length is enough to roll them back.
func (s *Store) snapshot() storeState {
	students := make(map[string]classroom.Student, len(s.students))
	for id, st := range s.students {
		students[id] = st.Clone()
	}
	return storeState{
		students: students,
		order:    append([]string(nil), s.order...),
		events:   len(s.events),
	}
}

func (s *Store) restore(st storeState) {
	s.students = st.students
	s.order = st.order
	s.events = s.events[:st.events]
}
