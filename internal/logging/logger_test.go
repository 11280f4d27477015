package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"info":    "INFO",
		"":        "INFO",
		"WARN":    "WARN",
		"error":   "ERROR",
		"nonsens": "INFO",
	}
	for in, want := range tests {
		if got := levelLabel(parseLevel(in)); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trailcut.log")
	logger, err := New(Options{Level: "debug", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("run started", "vibe", "action", "candidates", 42)
	logger.Debug("verbose detail", "note", "two words")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO run started vibe=action candidates=42") {
		t.Fatalf("unexpected console line: %s", out)
	}
	if !strings.Contains(out, `note="two words"`) {
		t.Fatalf("expected quoted multi-word value: %s", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "trailcut-2020.log")
	fresh := filepath.Join(dir, "trailcut.log")
	other := filepath.Join(dir, "keep.txt")
	for _, p := range []string{old, fresh, other} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	stale := time.Now().AddDate(0, 0, -90)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(other, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	CleanupOldLogs(nil, dir, "trailcut*.log", 60)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatal("expected stale log to be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatal("fresh log must survive")
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatal("non-matching file must survive")
	}
}
