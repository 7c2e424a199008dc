package osd

import "image/color"

// Backend abstracts the drawing surface and pointer input the overlay runs
// against. The real implementation renders through ebiten; tests supply a
// scripted fake so the widget state machines can run headless.
type Backend interface {
	// Size returns the drawable area in pixels.
	Size() (w, h float32)

	// PointerPosition returns the current pointer position in screen pixels.
	PointerPosition() (x, y float32)
	// PointerPressed reports whether the primary pointer is currently down.
	PointerPressed() bool
	// PointerJustPressed reports whether the primary pointer went down this
	// frame.
	PointerJustPressed() bool

	FillRect(x, y, w, h float32, col color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float32, col color.RGBA)
	FillCircle(cx, cy, r float32, col color.RGBA)
	DrawText(s string, x, y float32, col color.RGBA)
	MeasureText(s string) (w, h float32)
}

// PlaybackStatus exposes the playback engine's frame counters. TargetFrame
// returns NoTargetFrame while playback is free-running.
type PlaybackStatus interface {
	CurrentFrame() int32
	LastFrame() int32
	TargetFrame() int32
	SetTargetFrame(frame int32)
}

// Host receives the overlay's side-effect requests. All calls are
// fire-and-forget; the host owns completion handling.
type Host interface {
	// PlaybackSeek asks the host to seek to the status target frame. Called
	// exactly once per completed scrub release and once per step/jump click.
	PlaybackSeek()
	ToggleFullscreen()
	// ApplyVolume pushes a committed volume level (0-100) to the audio
	// stream. Called on every distinct value change during a volume drag.
	ApplyVolume(volume int)
}

// NoTargetFrame is the TargetFrame sentinel for free-running playback.
const NoTargetFrame int32 = 1<<31 - 1

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerpInt maps t in [0,1] linearly onto [lo,hi]. Integer ranges use no
// easing curve.
func lerpInt(lo, hi int, t float32) int {
	return lo + int(t*float32(hi-lo))
}

// scaleAlpha multiplies a color's alpha without touching the channels.
func scaleAlpha(col color.RGBA, alpha float32) color.RGBA {
	col.A = uint8(float32(col.A) * clamp01(alpha))
	return col
}

func argbToRGBA(argb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}
