package main

import (
	"os"
	"path/filepath"
	"runtime"
)

// dataDirPath holds the absolute path to the directory containing settings,
// logs and the default replay folder. On macOS the path resolves to the
// app's container directory so the player can operate inside the sandbox.
// On other platforms the path is resolved relative to the executable so data
// sits alongside the binary regardless of the current working directory.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			if filepath.Base(home) == "Data" && filepath.Base(filepath.Dir(home)) == "com.slipstream.player" {
				home = filepath.Dir(home)
			} else {
				home = filepath.Join(home, "Library", "Containers", "com.slipstream.player")
			}
			_ = os.MkdirAll(home, 0o755)
			return home
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	// Fallback to relative path.
	return "data"
}()
