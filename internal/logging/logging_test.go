package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("test.event", map[string]interface{}{"answer": 42})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file, got error: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected valid JSON entry, got %q: %v", data, err)
	}
	if entry.Event != "test.event" {
		t.Fatalf("expected event name, got %q", entry.Event)
	}
	if entry.Payload["answer"] != float64(42) {
		t.Fatalf("expected payload to round-trip, got %v", entry.Payload)
	}
}

func TestTraceIsSilentWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)

	Trace("test.event", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat error: %v", err)
	}
}
