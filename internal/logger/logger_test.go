package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newConsole(buf *bytes.Buffer, level slog.Level) *consoleHandler {
	return newHandler(Config{Level: level.String(), Format: "console", Output: buf}).(*consoleHandler)
}

func record(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelError + 4, "ERROR"},
		{slog.LevelError, "ERROR"},
		{slog.LevelWarn, "WARN "},
		{slog.LevelInfo, "INFO "},
		{slog.LevelDebug, "DEBUG"},
	}

	for _, tt := range tests {
		if got := levelTag(tt.level); got != tt.want {
			t.Errorf("levelTag(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestFormatAttr(t *testing.T) {
	tests := []struct {
		name  string
		group string
		attr  slog.Attr
		want  string
	}{
		{"plain", "", slog.String("clip", "walk"), "  clip=walk"},
		{"grouped", "camera", slog.Float64("fov", 82.5), "  camera.fov=82.5"},
		{"int", "", slog.Int("tick", 60), "  tick=60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAttr(tt.group, tt.attr); got != tt.want {
				t.Errorf("formatAttr(%q, %v) = %q, want %q", tt.group, tt.attr, got, tt.want)
			}
		})
	}
}

func TestNewHandlerFormats(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		format string
		check  func(slog.Handler) bool
	}{
		{"json", func(h slog.Handler) bool { _, ok := h.(*slog.JSONHandler); return ok }},
		{"JSON", func(h slog.Handler) bool { _, ok := h.(*slog.JSONHandler); return ok }},
		{"text", func(h slog.Handler) bool { _, ok := h.(*slog.TextHandler); return ok }},
		{"console", func(h slog.Handler) bool { _, ok := h.(*consoleHandler); return ok }},
		{"", func(h slog.Handler) bool { _, ok := h.(*consoleHandler); return ok }},
	}

	for _, tt := range tests {
		h := newHandler(Config{Level: "info", Format: tt.format, Output: &buf})
		if !tt.check(h) {
			t.Errorf("newHandler(format=%q) returned %T", tt.format, h)
		}
	}
}

func TestConsoleHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	h := newConsole(&buf, slog.LevelInfo)
	ctx := context.Background()

	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled")
	}
	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug should be filtered")
	}
}

func TestConsoleHandlerHandle(t *testing.T) {
	var buf bytes.Buffer
	h := newConsole(&buf, slog.LevelDebug)

	if err := h.Handle(context.Background(), record("clip switched", slog.String("clip", "run"))); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := buf.String()
	want := "12:00:00 INFO  clip switched  clip=run\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConsoleHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := newConsole(&buf, slog.LevelDebug)
	h2 := h.WithAttrs([]slog.Attr{slog.String("controller", "c1")})

	if len(h.attrs) != 0 {
		t.Fatal("WithAttrs modified the parent handler")
	}
	if err := h2.Handle(context.Background(), record("tick")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "controller=c1") {
		t.Errorf("output missing pre-attached attr: %q", buf.String())
	}
}

func TestConsoleHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := newConsole(&buf, slog.LevelDebug)
	h2 := h.WithGroup("camera").WithGroup("bob")

	if h.WithGroup("") != slog.Handler(h) {
		t.Error("WithGroup(\"\") should return the receiver")
	}
	if err := h2.Handle(context.Background(), record("step", slog.Float64("phase", 1.5))); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "camera.bob.phase=1.5") {
		t.Errorf("output missing nested group prefix: %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	w, closeFn, err := OpenFile("")
	if err != nil {
		t.Fatalf("OpenFile(\"\"): %v", err)
	}
	if w != os.Stderr {
		t.Error("empty path should log to stderr")
	}
	if err := closeFn(); err != nil {
		t.Errorf("stderr close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "stride.log")
	w, closeFn, err = OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile(%q): %v", path, err)
	}
	h := newHandler(Config{Level: "info", Format: "text", Output: w})
	if err := h.Handle(context.Background(), record("hello")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file = %q, want it to contain msg=hello", data)
	}

	if _, _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("OpenFile into a missing directory should fail")
	}
}
