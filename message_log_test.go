package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetMessageHistory(t *testing.T) {
	t.Helper()
	osdHistory.mu.Lock()
	osdHistory.entries = nil
	osdHistory.mu.Unlock()
}

func TestMessageLogRollsOver(t *testing.T) {
	l := messageLog{max: 3}
	for _, m := range []string{"one", "two", "three", "four", "five"} {
		l.Add(m)
	}
	got := l.Entries("")
	if len(got) != 3 {
		t.Fatalf("kept %d entries, want 3", len(got))
	}
	if !strings.HasSuffix(got[0], "three") || !strings.HasSuffix(got[2], "five") {
		t.Errorf("wrong entries survived: %v", got)
	}
}

func TestMessageLogIgnoresEmpty(t *testing.T) {
	l := messageLog{max: 3}
	l.Add("")
	if got := l.Entries(""); len(got) != 0 {
		t.Errorf("empty message recorded: %v", got)
	}
}

func TestDumpMessageHistory(t *testing.T) {
	withTempDataDir(t)
	resetMessageHistory(t)

	postMessage("dump me")
	dumpMessageHistory()

	matches, err := filepath.Glob(filepath.Join(dataDirPath, "logs", "messages-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("history dump files = %v, want exactly one", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "dump me") {
		t.Errorf("dump missing the posted message: %q", data)
	}
}

func TestDumpMessageHistorySkipsWhenEmpty(t *testing.T) {
	withTempDataDir(t)
	resetMessageHistory(t)

	dumpMessageHistory()
	if matches, _ := filepath.Glob(filepath.Join(dataDirPath, "logs", "messages-*.log")); len(matches) != 0 {
		t.Errorf("empty history produced a dump: %v", matches)
	}
}
