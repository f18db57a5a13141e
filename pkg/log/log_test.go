package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNopByDefault(t *testing.T) {
	Reset()
	// Must not panic or write anywhere.
	Error().Msg("dropped")
	Printf("dropped %d", 1)
}

func TestInitJSON(t *testing.T) {
	defer Reset()
	var buf bytes.Buffer
	if err := Init(&buf, "info", "json"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Debug().Msg("hidden")
	Info().Str("keyword_len", "3").Msg("enciphering")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "info" || entry["message"] != "enciphering" || entry["keyword_len"] != "3" {
		t.Fatalf("Unexpected entry %v", entry)
	}
}

func TestInitConsoleLevel(t *testing.T) {
	defer Reset()
	var buf bytes.Buffer
	if err := Init(&buf, "", "console"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Info().Msg("hidden")
	Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("Unexpected console output %q", buf.String())
	}
}

func TestInitRejectsBadInput(t *testing.T) {
	defer Reset()
	if err := Init(&bytes.Buffer{}, "loud", "json"); err == nil {
		t.Fatal("Expected an error for an unknown level")
	}
	if err := Init(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatal("Expected an error for an unknown format")
	}
}
