package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStdlogWriterEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelInfo, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(false)

	if _, err := w.Write([]byte("first\nsecond\n")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	var e entry
	if err := json.Unmarshal([]byte(lines[1]), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Level != "info" || e.Msg != "second" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestTruncationWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelDebug, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(false)

	long := strings.Repeat("a", 6000)
	_, err := w.Write([]byte(long + "\n"))
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "truncated") {
		t.Fatalf("expected truncation indicator, got: %s", got)
	}
}

func TestNoTruncationWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelDebug, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(true)
	defer SetVerbose(false)

	long := strings.Repeat("b", 4000)
	_, err := w.Write([]byte(long + "\n"))
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "truncated") {
		t.Fatalf("did not expect truncation, got: %s", got)
	}
}

func TestFieldsAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	SetMinLevel(LevelWarn)

	Debugw("hidden", "page", 1)
	Warnw("scroll clamped", "requested", -50.0, "err", errors.New("boom"), "dangling")

	got := strings.TrimSpace(buf.String())
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug line should be filtered: %s", got)
	}
	var e entry
	if err := json.Unmarshal([]byte(got), &e); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, got)
	}
	if e.Fields["requested"] != -50.0 || e.Fields["err"] != "boom" {
		t.Fatalf("unexpected fields: %+v", e.Fields)
	}
	if _, ok := e.Fields["dangling"]; !ok {
		t.Fatalf("dangling key dropped: %+v", e.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
