package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["service"] != "tradedesk" {
		t.Errorf("service = %v, want tradedesk", entry["service"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
}

func TestNewWithOutput_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line should pass at warn level")
	}
}

func TestParseLevel_Fallback(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "noisy", Format: "json"}, &buf)

	log.Debug().Msg("dropped")
	log.Info().Msg("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("unknown level should fall back to info")
	}
}
