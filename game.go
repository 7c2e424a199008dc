package main

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/time/rate"

	"slipstream/osd"
)

var (
	overlay *osd.Overlay
	backend *osd.EbitenBackend

	playStatus *playbackStatus
	thePlayer  *player

	currentReplay *replayInfo

	gameCtx context.Context
)

// seekKeyLimiter throttles held arrow keys so auto-repeat cannot flood the
// player with seek requests faster than it can land them.
var seekKeyLimiter = rate.NewLimiter(rate.Every(150*time.Millisecond), 2)

// gameHost wires the overlay's control bar back into the application: seeks
// go to the player goroutine, volume and fullscreen go to settings.
type gameHost struct{}

func (gameHost) PlaybackSeek() {
	if thePlayer != nil {
		thePlayer.requestSeek()
	}
}

func (gameHost) ToggleFullscreen() {
	fs := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fs)
	gs.Fullscreen = fs
	settingsDirty = true
}

func (gameHost) ApplyVolume(v int) {
	gs.Volume = v
	settingsDirty = true
	if overlay != nil {
		overlay.AddTypedMessage(osd.VolumeLevel, fmt.Sprintf("Volume: %d%%", v),
			osd.DurationShort, osd.ColorCyan)
	}
}

// windowFocused mirrors the window focus state for goroutines that cannot
// poll ebiten directly, like the player's end-of-replay notification.
var windowFocused atomic.Bool

var updateTick int

type Game struct{}

func (g *Game) Update() error {
	windowFocused.Store(ebiten.IsFocused())

	// Settings writes ride the game loop so resizes and volume tweaks
	// survive a crash, not just a clean exit.
	updateTick++
	if updateTick%(5*playbackFPS) == 0 {
		maybeSaveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		openReplayFolder()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		browseReplayFolder()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && currentReplay != nil && currentReplay.Opponent != "" {
		copyCodeToClipboard(currentReplay.Opponent)
	}

	if thePlayer == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		thePlayer.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		thePlayer.frameAdvance()
	}
	alt := ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && alt {
		gameHost{}.ToggleFullscreen()
	}

	step := int32(0)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		step = -seekStepFrames
		if shift {
			step = -seekJumpFrames
		}
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		step = seekStepFrames
		if shift {
			step = seekJumpFrames
		}
	}
	if step != 0 && seekKeyLimiter.Allow() {
		stepBy(step)
	}
	return nil
}

const (
	seekStepFrames = 5 * playbackFPS
	seekJumpFrames = 20 * playbackFPS
)

// stepBy seeks relative to the live position, matching the bar's step
// buttons. Ignored while a previous seek is still in flight.
func stepBy(delta int32) {
	if playStatus == nil || playStatus.TargetFrame() != osd.NoTargetFrame {
		return
	}
	frame := playStatus.CurrentFrame() + delta
	if frame < osd.FirstFrame {
		frame = osd.FirstFrame
	}
	if last := playStatus.LastFrame(); frame > last {
		frame = last
	}
	playStatus.SetTargetFrame(frame)
	thePlayer.requestSeek()
}

func (g *Game) Draw(screen *ebiten.Image) {
	backend.BeginFrame(screen)
	drawVideo(screen)
	overlay.Draw()
}

// drawVideo stands in for the decoded replay video: a shade keyed to the
// current frame so seeks are visible, plus the replay name.
func drawVideo(screen *ebiten.Image) {
	w, h := backend.Size()
	var frame int32
	if playStatus != nil {
		frame = playStatus.CurrentFrame() - osd.FirstFrame
	}
	shade := uint8(16 + (frame/playbackFPS)%48)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{shade, shade, shade + 16, 255}, false)
	if currentReplay != nil {
		backend.DrawText(filepath.Base(currentReplay.Path), 10, h/2, color.RGBA{255, 255, 255, 90})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 320 && outsideHeight > 240 && !ebiten.IsFullscreen() {
		if gs.WindowWidth != outsideWidth || gs.WindowHeight != outsideHeight {
			gs.WindowWidth = outsideWidth
			gs.WindowHeight = outsideHeight
			settingsDirty = true
		}
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context) {
	gameCtx = ctx

	ebiten.SetWindowTitle("Slipstream Player")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	if gs.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(&Game{}, op); err != nil {
		logError("ebiten: %v", err)
	}
	saveSettings()
}
