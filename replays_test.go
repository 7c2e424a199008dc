package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReplayHeaderRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "match"+replayExt)
	if err := writeReplayHeader(path, 5400, "RAGE#1"); err != nil {
		t.Fatal(err)
	}
	frames, opponent, err := readReplayHeader(path)
	if err != nil {
		t.Fatal(err)
	}
	if frames != 5400 {
		t.Errorf("frames = %d, want 5400", frames)
	}
	if opponent != "RAGE#1" {
		t.Errorf("opponent = %q, want RAGE#1", opponent)
	}

	// Solo recordings carry no opponent code.
	solo := filepath.Join(dir, "solo"+replayExt)
	if err := writeReplayHeader(solo, 60, ""); err != nil {
		t.Fatal(err)
	}
	if _, opponent, err = readReplayHeader(solo); err != nil || opponent != "" {
		t.Errorf("solo replay: opponent = %q, err = %v; want empty, nil", opponent, err)
	}
}

func TestReplayHeaderRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad"+replayExt)
	if err := os.WriteFile(bad, []byte("NOPE000000"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readReplayHeader(bad); err != errReplayMagic {
		t.Errorf("bad magic: err = %v, want errReplayMagic", err)
	}

	short := filepath.Join(dir, "short"+replayExt)
	if err := os.WriteFile(short, []byte("RPLY"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readReplayHeader(short); err == nil {
		t.Errorf("truncated header parsed without error")
	}

	// Valid fixed header but cut off before the opponent code.
	chopped := filepath.Join(dir, "chopped"+replayExt)
	hdr := []byte{'R', 'P', 'L', 'Y', 0, replayVersion, 0, 0, 0, 100}
	if err := os.WriteFile(chopped, hdr, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readReplayHeader(chopped); err == nil {
		t.Errorf("header without an opponent field parsed without error")
	}

	future := filepath.Join(dir, "future"+replayExt)
	hdr = []byte{'R', 'P', 'L', 'Y', 0, 99, 0, 0, 0, 1}
	if err := os.WriteFile(future, hdr, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readReplayHeader(future); err != errReplayVersion {
		t.Errorf("future version: err = %v, want errReplayVersion", err)
	}
}

func TestScanReplayFolder(t *testing.T) {
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "old"+replayExt)
	newPath := filepath.Join(dir, "new"+replayExt)
	if err := writeReplayHeader(oldPath, 100, ""); err != nil {
		t.Fatal(err)
	}
	if err := writeReplayHeader(newPath, 200, "SLIP#747"); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(oldPath, past, past); err != nil {
		t.Fatal(err)
	}

	// Non-replay and corrupt files are skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "corrupt"+replayExt), []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	infos, err := scanReplayFolder(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("scanned %d replays, want 2: %+v", len(infos), infos)
	}
	if infos[0].Path != newPath {
		t.Errorf("newest first: got %s", infos[0].Path)
	}
	if infos[0].Opponent != "SLIP#747" {
		t.Errorf("opponent = %q, want SLIP#747", infos[0].Opponent)
	}

	latest := pickLatestReplay(infos)
	if latest == nil || latest.Frames != 200 {
		t.Errorf("pickLatestReplay = %+v, want the 200-frame replay", latest)
	}
	if pickLatestReplay(nil) != nil {
		t.Errorf("pickLatestReplay(nil) != nil")
	}
}

func TestDescribeReplay(t *testing.T) {
	info := replayInfo{
		Path:   "/replays/finals" + replayExt,
		Size:   1200000,
		Frames: 16200, // 4m30s at 60fps
	}
	got := describeReplay(info)
	want := "finals" + replayExt + " (1.2 MB, 4m 30s)"
	if got != want {
		t.Errorf("describeReplay = %q, want %q", got, want)
	}
}

func TestLoadReplayWarnsAboutBlockedOpponent(t *testing.T) {
	withTempDataDir(t)
	resetBlocklist(t)
	resetMessageHistory(t)

	path := filepath.Join(dataDirPath, "grudge"+replayExt)
	if err := writeReplayHeader(path, 600, "RAGE#1"); err != nil {
		t.Fatal(err)
	}
	if err := addBlockedPlayer("RAGE#1", "Quitter"); err != nil {
		t.Fatal(err)
	}

	info, err := loadReplay(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Opponent != "RAGE#1" {
		t.Fatalf("opponent = %q, want RAGE#1", info.Opponent)
	}
	if !historyContains(t, "RAGE#1 is on your blocklist") {
		t.Errorf("no blocklist warning posted; history: %v", osdHistory.Entries(""))
	}

	// An unblocked opponent draws no warning.
	resetMessageHistory(t)
	if !removeBlockedPlayer("RAGE#1") {
		t.Fatal("remove failed")
	}
	if _, err := loadReplay(path); err != nil {
		t.Fatal(err)
	}
	if historyContains(t, "blocklist") {
		t.Errorf("warning posted for an unblocked opponent")
	}
}

func historyContains(t *testing.T, substr string) bool {
	t.Helper()
	for _, e := range osdHistory.Entries("") {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
