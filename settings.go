package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/skratchdot/open-golang/open"
	"github.com/sqweek/dialog"
)

const SETTINGS_VERSION = 2

const settingsFile = "settings.json"

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool
var settingsDirty bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:  1280,
	WindowHeight: 720,

	ShowOSDMessages: true,
	Volume:          70,

	SaveReplays:          true,
	MonthlyReplayFolders: true,

	NetplayDelay: 2,
	NetplayPort:  2626,

	EnableJukebox: true,
	MusicVolume:   80,
}

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int
	Fullscreen   bool

	ShowOSDMessages bool
	Volume          int

	// Replay settings
	SaveReplays          bool
	MonthlyReplayFolders bool
	ReplayFolder         string

	// Online settings
	NetplayDelay     int
	ForceNetplayPort bool
	NetplayPort      int
	QuickChatMode    int

	// Jukebox settings
	EnableJukebox bool
	MusicVolume   int
}

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp

	if gs.Volume < 0 || gs.Volume > 100 {
		gs.Volume = gsdef.Volume
	}
	if gs.MusicVolume < 0 || gs.MusicVolume > 100 {
		gs.MusicVolume = gsdef.MusicVolume
	}
	if gs.NetplayDelay < 0 || gs.NetplayDelay > 30 {
		gs.NetplayDelay = gsdef.NetplayDelay
	}
	if gs.NetplayPort <= 0 || gs.NetplayPort > 65535 {
		gs.NetplayPort = gsdef.NetplayPort
	}
	if gs.WindowWidth < 640 || gs.WindowHeight < 480 {
		gs.WindowWidth = gsdef.WindowWidth
		gs.WindowHeight = gsdef.WindowHeight
	}
	if gs.ReplayFolder == "" {
		gs.ReplayFolder = defaultReplayFolder()
	}

	settingsLoaded = true
	return true
}

func applySettings() {
	ebiten.SetFullscreen(gs.Fullscreen)
	if overlay != nil {
		overlay.ShowMessages = gs.ShowOSDMessages
	}
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
}

// maybeSaveSettings persists settings when something marked them dirty.
// Reports whether a save happened.
func maybeSaveSettings() bool {
	if !settingsDirty {
		return false
	}
	saveSettings()
	return true
}

func defaultReplayFolder() string {
	return filepath.Join(dataDirPath, "replays")
}

// browseReplayFolder opens a native directory picker and stores the choice.
func browseReplayFolder() {
	dir, err := dialog.Directory().Title("Select Replay Folder").Browse()
	if err != nil {
		if err != dialog.Cancelled {
			logError("browse replay folder: %v", err)
		}
		return
	}
	gs.ReplayFolder = dir
	settingsDirty = true
	postMessage("Replay folder: " + dir)
}

// openReplayFolder opens the replay folder in the system file manager.
func openReplayFolder() {
	dir := gs.ReplayFolder
	if dir == "" {
		dir = defaultReplayFolder()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logError("open replay folder: %v", err)
		return
	}
	if err := open.Run(dir); err != nil {
		logError("open replay folder: %v", err)
	}
}
