// Package zstdlog keeps compressed JSONL audit trails of classroom events and
// resolved turns, rotated hourly.
package zstdlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"

	"github.com/klauspost/compress/zstd"
)

type Writer struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func NewWriter(baseDir, prefix string) *Writer {
	return &Writer{baseDir: baseDir, prefix: prefix, now: time.Now}
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

// Write appends v as one JSON line.
func (w *Writer) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := w.now().UTC().Format("2006-01-02-15")
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *Writer) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	path := w.pathForHour(hour)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 64*1024)
	w.curHour = hour
	return nil
}

func (w *Writer) closeLocked() error {
	var err error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return err
}

func (w *Writer) pathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}

// EventJournal is an event sink that archives every published event.
type EventJournal struct{ w *Writer }

func NewEventJournal(dir string) *EventJournal {
	return &EventJournal{w: NewWriter(filepath.Join(dir, "events"), "events")}
}

func (j *EventJournal) Publish(_ context.Context, events []classroom.Event) error {
	for _, e := range events {
		if err := j.w.Write(e); err != nil {
			return err
		}
	}
	return nil
}

func (j *EventJournal) Close() error { return j.w.Close() }

// TurnJournal archives one line per resolved turn.
type TurnJournal struct{ w *Writer }

func NewTurnJournal(dir string) *TurnJournal {
	return &TurnJournal{w: NewWriter(filepath.Join(dir, "turns"), "turns")}
}

func (j *TurnJournal) RecordTurn(_ context.Context, rec ports.TurnRecord) error {
	return j.w.Write(rec)
}

func (j *TurnJournal) Close() error { return j.w.Close() }
