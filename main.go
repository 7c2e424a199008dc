package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	clipboard "golang.design/x/clipboard"

	"slipstream/osd"
)

var (
	replayPath string
	replayDir  string
	fake       bool
	doDebug    bool
)

func main() {
	flag.StringVar(&replayPath, "replay", "", "play back a specific "+replayExt+" file")
	flag.StringVar(&replayDir, "replayDir", "", "replay folder to scan (defaults to the saved setting)")
	flag.BoolVar(&fake, "fake", false, "fabricate a replay and simulate netplay messages")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	startFullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	blockCode := flag.String("block", "", "add a connect code to the blocklist and exit")
	unblockCode := flag.String("unblock", "", "remove a connect code from the blocklist and exit")
	flag.Parse()

	if *blockCode != "" || *unblockCode != "" {
		editBlocklist(*blockCode, *unblockCode)
		return
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	}

	loadSettings()
	setupLogging(doDebug)
	if *startFullscreen {
		gs.Fullscreen = true
	}
	if replayDir != "" {
		gs.ReplayFolder = replayDir
	}
	if gs.ReplayFolder == "" {
		gs.ReplayFolder = defaultReplayFolder()
	}

	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v", r)
			panic(r)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	defer cancel()

	initDiscordRPC(ctx)
	loadBlocklist()
	defer saveBlocklist()

	backend = osd.NewEbitenBackend()
	overlay = osd.New(backend, nil)
	applySettings()

	path := replayPath
	if fake {
		p, err := makeFakeReplay()
		if err != nil {
			log.Fatalf("fake replay: %v", err)
		}
		path = p
	}
	if path == "" {
		infos, err := scanReplayFolder(gs.ReplayFolder)
		if err != nil {
			logError("scan %s: %v", gs.ReplayFolder, err)
		}
		if latest := pickLatestReplay(infos); latest != nil {
			path = latest.Path
		}
	}
	if path == "" {
		log.Fatalf("no replays found in %s; pass -replay or -fake", gs.ReplayFolder)
	}

	info, err := loadReplay(path)
	if err != nil {
		log.Fatalf("load replay %s: %v", path, err)
	}
	currentReplay = info
	setDiscordStatus("watching " + filepath.Base(info.Path))

	playStatus = newPlaybackStatus(osd.FirstFrame + info.Frames)
	thePlayer = newPlayer(playStatus)
	overlay.EnablePlayback(playStatus, gameHost{}, gs.Volume)
	go thePlayer.run(ctx)

	if fake {
		runFakeMode(ctx)
	}

	runGame(ctx)
	cancel()
	dumpMessageHistory()
}

// editBlocklist services the -block/-unblock flags and prints the resulting
// list.
func editBlocklist(add, remove string) {
	loadBlocklist()
	if add != "" {
		if err := addBlockedPlayer(add, ""); err != nil {
			log.Fatalf("block %s: %v", add, err)
		}
	}
	if remove != "" && !removeBlockedPlayer(remove) {
		log.Fatalf("unblock %s: not on the blocklist", remove)
	}
	saveBlocklist()
	for _, p := range blockedPlayers() {
		if p.Name != "" {
			fmt.Printf("%s\t%s\n", p.Code, p.Name)
		} else {
			fmt.Println(p.Code)
		}
	}
}
