package main

import "testing"

func resetBlocklist(t *testing.T) {
	t.Helper()
	blocklistMu.Lock()
	blocklist = nil
	blocklistMu.Unlock()
}

func TestValidConnectCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"SLIP#747", true},
		{"a#1", true},
		{"FALCONS#123456789", true},
		{"#123", false},
		{"SLIP747", false},
		{"SLIP#", false},
		{"TOOLONGY#1", false},
		{"AB1#23", false},
		{"AB#12a", false},
		{"AB#1234567890", false},
	}
	for _, c := range cases {
		if got := validConnectCode(c.code); got != c.want {
			t.Errorf("validConnectCode(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestAddRemoveBlockedPlayer(t *testing.T) {
	resetBlocklist(t)

	if err := addBlockedPlayer("slip#747", "Bob"); err != nil {
		t.Fatalf("add: %v", err)
	}
	players := blockedPlayers()
	if len(players) != 1 || players[0].Code != "SLIP#747" {
		t.Fatalf("stored code = %+v, want SLIP#747", players)
	}

	// Duplicates are detected case-insensitively.
	if err := addBlockedPlayer("SLIP#747", ""); err != errDupCode {
		t.Errorf("duplicate add: err = %v, want errDupCode", err)
	}
	if err := addBlockedPlayer("bad code", ""); err != errBadCode {
		t.Errorf("invalid add: err = %v, want errBadCode", err)
	}

	if !isBlocked("Slip#747") {
		t.Errorf("isBlocked misses a folded match")
	}
	if !removeBlockedPlayer("sLiP#747") {
		t.Errorf("remove missed a folded match")
	}
	if isBlocked("SLIP#747") {
		t.Errorf("player still blocked after remove")
	}
	if removeBlockedPlayer("SLIP#747") {
		t.Errorf("second remove reported success")
	}
}

func TestEditBlocklistFlags(t *testing.T) {
	withTempDataDir(t)
	resetBlocklist(t)

	editBlocklist("rage#1", "")
	if !isBlocked("RAGE#1") {
		t.Fatalf("-block did not add the code")
	}

	resetBlocklist(t)
	editBlocklist("", "rage#1")
	loadBlocklist()
	if isBlocked("RAGE#1") {
		t.Errorf("-unblock left the code blocked")
	}
}

func TestBlocklistSaveLoad(t *testing.T) {
	withTempDataDir(t)
	resetBlocklist(t)

	if err := addBlockedPlayer("RAGE#1", "Quitter"); err != nil {
		t.Fatal(err)
	}
	saveBlocklist()

	resetBlocklist(t)
	loadBlocklist()
	if !isBlocked("RAGE#1") {
		t.Errorf("blocklist did not survive a save/load cycle")
	}
}
