package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"slipstream/osd"
)

// fakeReplayFrames is about five minutes of playback, enough to exercise the
// seek bar and the end-of-replay path.
const fakeReplayFrames = 18000

// makeFakeReplay fabricates a replay file in the data directory so the player
// has something to load without a real recording.
func makeFakeReplay() (string, error) {
	dir := filepath.Join(dataDirPath, "fake")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "fake-session"+replayExt)
	if err := writeReplayHeader(path, fakeReplayFrames, "FAKE#404"); err != nil {
		return "", err
	}
	return path, nil
}

// runFakeMode injects the typed OSD traffic a netplay session would produce:
// ping and buffer readouts on a steady cadence, plus the occasional transient
// notice. It allows testing the overlay without a live session.
func runFakeMode(ctx context.Context) {
	go func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		step := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if overlay == nil {
				continue
			}
			switch step {
			case 0:
				ping := 8 + rng.Intn(40)
				overlay.AddTypedMessage(osd.NetPlayPing, fmt.Sprintf("Ping: %d ms", ping),
					osd.DurationShort, osd.ColorCyan)
			case 1:
				overlay.AddTypedMessage(osd.NetPlayBuffer, fmt.Sprintf("Buffer: %d", 2+rng.Intn(3)),
					osd.DurationShort, osd.ColorCyan)
			case 2:
				postMessage("Opponent set buffer to 4")
			case 3:
				overlay.AddMessage("Desync check passed", osd.DurationShort, osd.ColorGreen)
			}
			step = (step + 1) % 4
		}
	}()
}
