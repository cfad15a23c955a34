package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"aulagen/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"WARN", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewWithWriter_ServiceAttrAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, config.Logging{Level: "warn", Service: "aula-test"})

	l.Info("hidden")
	l.Warn("shown", "turn_id", "t1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal(lines[0], &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["service"] != "aula-test" || rec["msg"] != "shown" || rec["turn_id"] != "t1" {
		t.Fatalf("unexpected record: %v", rec)
	}
}
