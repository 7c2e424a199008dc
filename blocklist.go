package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clipboard "golang.design/x/clipboard"
	"golang.org/x/text/cases"
)

const blocklistFile = "blocklist.json"

// blockedPlayer is one row of the player block table: an online connect code
// like "SLIP#747" plus the display name it was seen under.
type blockedPlayer struct {
	Code  string    `json:"code"`
	Name  string    `json:"name,omitempty"`
	Added time.Time `json:"added"`
}

var (
	blocklist   []blockedPlayer
	blocklistMu sync.Mutex
	codeFolder  = cases.Fold()
	errBadCode  = errors.New("connect code must look like TAG#123")
	errDupCode  = errors.New("connect code already blocked")
)

// foldCode canonicalizes a connect code for comparison.
func foldCode(code string) string {
	return codeFolder.String(strings.TrimSpace(code))
}

// validConnectCode reports whether code is 1-7 letters, '#', then 1-9 digits.
func validConnectCode(code string) bool {
	hash := strings.IndexByte(code, '#')
	if hash < 1 || hash > 7 || hash == len(code)-1 || len(code)-hash-1 > 9 {
		return false
	}
	for _, r := range code[:hash] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	for _, r := range code[hash+1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func loadBlocklist() {
	path := filepath.Join(dataDirPath, blocklistFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var list []blockedPlayer
	if err := json.Unmarshal(data, &list); err != nil {
		logError("load blocklist: %v", err)
		return
	}
	blocklistMu.Lock()
	blocklist = list
	blocklistMu.Unlock()
}

func saveBlocklist() {
	blocklistMu.Lock()
	data, err := json.MarshalIndent(blocklist, "", "  ")
	blocklistMu.Unlock()
	if err != nil {
		logError("save blocklist: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, blocklistFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save blocklist: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save blocklist: %v", err)
	}
}

func addBlockedPlayer(code, name string) error {
	code = strings.TrimSpace(code)
	if !validConnectCode(code) {
		return errBadCode
	}
	folded := foldCode(code)

	blocklistMu.Lock()
	defer blocklistMu.Unlock()
	for _, p := range blocklist {
		if foldCode(p.Code) == folded {
			return errDupCode
		}
	}
	blocklist = append(blocklist, blockedPlayer{
		Code:  strings.ToUpper(code),
		Name:  strings.TrimSpace(name),
		Added: time.Now(),
	})
	return nil
}

func removeBlockedPlayer(code string) bool {
	folded := foldCode(code)
	blocklistMu.Lock()
	defer blocklistMu.Unlock()
	for i, p := range blocklist {
		if foldCode(p.Code) == folded {
			blocklist = append(blocklist[:i], blocklist[i+1:]...)
			return true
		}
	}
	return false
}

func isBlocked(code string) bool {
	folded := foldCode(code)
	blocklistMu.Lock()
	defer blocklistMu.Unlock()
	for _, p := range blocklist {
		if foldCode(p.Code) == folded {
			return true
		}
	}
	return false
}

func blockedPlayers() []blockedPlayer {
	blocklistMu.Lock()
	defer blocklistMu.Unlock()
	return append([]blockedPlayer(nil), blocklist...)
}

// copyCodeToClipboard puts a connect code on the system clipboard so it can
// be pasted into reports.
func copyCodeToClipboard(code string) {
	clipboard.Write(clipboard.FmtText, []byte(code))
	postMessage("Copied " + code)
}
