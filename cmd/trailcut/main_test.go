package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommandForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVibesCommandListsProfiles(t *testing.T) {
	out, err := runCommandForTest(t, "vibes")
	if err != nil {
		t.Fatalf("vibes: %v", err)
	}
	for _, want := range []string{"action", "sci-fi", "crossfade", "4.0 / 2.5 / 1.2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("vibes output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommandForTest(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected output to mention %s:\n%s", target, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[assembly]") {
		t.Fatalf("sample missing assembly section:\n%s", data)
	}

	if _, err := runCommandForTest(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
}

func TestRunCommandRequiresFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := runCommandForTest(t, "run", "film.mkv"); err == nil {
		t.Fatal("expected missing required flags to fail")
	}
}
