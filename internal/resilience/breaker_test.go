package resilience

import (
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

func TestBreaker_OpensAfterMaxFailures(t *testing.T) {
	b := NewBreaker(2, time.Minute)
	fail := func() error { return errBoom }

	for i := 0; i < 2; i++ {
		if err := b.Execute(fail); !errors.Is(err, errBoom) {
			t.Fatalf("call %d: got=%v want=boom", i, err)
		}
	}
	called := false
	err := b.Execute(func() error { called = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected open circuit, got=%v called=%v", err, called)
	}
	if !b.Open() {
		t.Fatal("Open() should report true")
	}
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	now := time.Unix(1000, 0)
	b := NewBreaker(1, 10*time.Second)
	b.now = func() time.Time { return now }

	_ = b.Execute(func() error { return errBoom })
	if err := b.Execute(func() error { return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open, got=%v", err)
	}

	now = now.Add(11 * time.Second)
	if err := b.Execute(func() error { return errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("probe should run, got=%v", err)
	}
	if err := b.Execute(func() error { return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("failed probe should reopen, got=%v", err)
	}

	now = now.Add(11 * time.Second)
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("probe should succeed, got=%v", err)
	}
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("closed circuit should pass, got=%v", err)
	}
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b := NewBreaker(2, time.Minute)
	_ = b.Execute(func() error { return errBoom })
	_ = b.Execute(func() error { return nil })
	_ = b.Execute(func() error { return errBoom })
	if b.Open() {
		t.Fatal("non-consecutive failures should not open the circuit")
	}
}
