package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelNone, ""},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q; want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	l.Info("built %s", "Coverage")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not a JSON line: %v (%q)", err, buf.String())
	}
	if entry["message"] != "built Coverage" {
		t.Errorf("message = %v; want %q", entry["message"], "built Coverage")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v; want info", entry["level"])
	}
	if entry["component"] != component {
		t.Errorf("component = %v; want %q", entry["component"], component)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("messages below the level should be dropped, got %q", buf.String())
	}

	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing from output: %q", buf.String())
	}
}

func TestLogger_SetLevelAndOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := New(&first, LevelNone)

	l.Error("dropped")
	if first.Len() != 0 {
		t.Fatalf("LevelNone should drop everything, got %q", first.String())
	}

	l.SetOutput(&second)
	l.SetLevel(LevelDebug)
	l.Debug("kept")

	if !strings.Contains(second.String(), "kept") {
		t.Errorf("expected message in new output, got %q", second.String())
	}
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v; want LevelDebug", l.Level())
	}
}

func TestDefault(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))

	Info("hello %d", 1)
	Disable()
	Info("silenced")

	if !strings.Contains(buf.String(), "hello 1") {
		t.Errorf("expected default logger output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "silenced") {
		t.Errorf("Disable should silence the default logger, got %q", buf.String())
	}
}

func TestSetDefault_Concurrent(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetDefault(New(io.Discard, LevelDebug))
		}()
		go func(i int) {
			defer wg.Done()
			Debug("message %d", i)
			_ = Default().Level()
		}(i)
	}
	wg.Wait()

	SetDefault(nil)
	if Default() == nil {
		t.Fatal("SetDefault(nil) should keep the current logger")
	}
}
