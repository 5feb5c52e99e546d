package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func newJSONLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewWithWriter(&Config{Level: level, Format: FormatJSON}, "linqdemo", &buf), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew_JSONFields(t *testing.T) {
	l, buf := newJSONLogger(t, "debug")
	l.WithComponent("primes").Info("computed", Fields("count", 3, FieldExample, "primes"))

	m := decodeLine(t, buf)
	tests := map[string]any{
		"message":      "computed",
		"level":        "info",
		FieldService:   "linqdemo",
		FieldComponent: "primes",
		FieldExample:   "primes",
		FieldCount:     float64(3),
	}
	for k, want := range tests {
		if m[k] != want {
			t.Errorf("%s = %v, want %v", k, m[k], want)
		}
	}
}

func TestNew_LevelFilter(t *testing.T) {
	l, buf := newJSONLogger(t, "warn")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := newJSONLogger(t, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWithError(t *testing.T) {
	l, buf := newJSONLogger(t, "info")
	l.WithError(errors.New("boom")).Error("failed")
	if m := decodeLine(t, buf); m["error"] != "boom" {
		t.Errorf("error = %v, want boom", m["error"])
	}
}

func TestWithFields(t *testing.T) {
	l, buf := newJSONLogger(t, "info")
	l.WithFields(map[string]any{FieldEngine: "lazy"}).Info("ran")
	if m := decodeLine(t, buf); m[FieldEngine] != "lazy" {
		t.Errorf("engine = %v, want lazy", m[FieldEngine])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: FormatConsole, NoColor: true}, "linqdemo", &buf)
	l.Info("hello", Fields("count", 2))
	out := buf.String()
	for _, want := range []string{"[LIN][INF]", "hello", "count:2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		kvs  []any
		want int
	}{
		{"pairs", []any{"a", 1, "b", 2}, 2},
		{"odd trailing key", []any{"a", 1, "b"}, 1},
		{"non-string key", []any{1, "x", "b", 2}, 1},
		{"empty", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fields(tc.kvs...); len(got) != tc.want {
				t.Errorf("got %d fields, want %d", len(got), tc.want)
			}
		})
	}
}

func TestErrorAndDurationFields(t *testing.T) {
	ef := ErrorFields("First", errors.New("empty"))
	if ef[FieldOperation] != "First" || ef[FieldError] != "empty" {
		t.Errorf("unexpected %v", ef)
	}
	df := DurationFields("Sort", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v, want 1500", df[FieldDuration])
	}
}

func TestConfig_DefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != FormatConsole || cfg.Output != "stdout" || !cfg.Timestamp {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid level to fail")
	}
}
