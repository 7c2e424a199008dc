package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop raises a desktop notification for playback events worth
// seeing from another window, like a replay running out. The OSD already
// covers the focused case, so a focused window suppresses the notification.
func notifyDesktop(title, body string) {
	if body == "" || windowFocused.Load() {
		return
	}
	// Headless Linux has no notification daemon to deliver to.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("desktop notify: %v", err)
	}
}
