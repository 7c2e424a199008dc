package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"slipstream/osd"
)

const maxHistoryMessages = 250

type timedMessage struct {
	Text string
	Time time.Time
}

// messageLog keeps a rolling history of everything posted to the OSD so the
// debug dump can show messages that have long since faded.
type messageLog struct {
	mu      sync.Mutex
	entries []timedMessage
	max     int
}

func (l *messageLog) Add(msg string) {
	if msg == "" {
		return
	}
	entry := timedMessage{Text: msg, Time: time.Now()}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	l.mu.Unlock()
}

func (l *messageLog) Entries(format string) []string {
	l.mu.Lock()
	entries := make([]timedMessage, len(l.entries))
	copy(entries, l.entries)
	l.mu.Unlock()

	if format == "" {
		format = "3:04PM"
	}
	out := make([]string, len(entries))
	for i, msg := range entries {
		out[i] = "[" + msg.Time.Format(format) + "] " + msg.Text
	}
	return out
}

var osdHistory = messageLog{max: maxHistoryMessages}

// postMessage shows an untyped OSD notification and records it in the
// history. Safe from any goroutine.
func postMessage(msg string) {
	if msg == "" {
		return
	}
	osdHistory.Add(msg)
	if overlay != nil {
		overlay.AddMessage(msg, osd.DurationNormal, osd.ColorWhite)
	}
}

// dumpMessageHistory writes the rolling history to a timestamped file in the
// log directory, so a post-run report can quote messages that faded from the
// screen long ago. Called on exit.
func dumpMessageHistory() {
	entries := osdHistory.Entries("15:04:05")
	if len(entries) == 0 {
		return
	}
	logDir := filepath.Join(dataDirPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logDebug("dump message history: %v", err)
		return
	}
	name := "messages-" + time.Now().Format("20060102-150405") + ".log"
	data := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(logDir, name), []byte(data), 0644); err != nil {
		logDebug("dump message history: %v", err)
	}
}
