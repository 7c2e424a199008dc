package osd

import (
	"fmt"
	"image/color"
)

// FirstFrame is the frame index replays begin on. Replays carry a short
// pre-roll before the first interactive frame, so indices start negative.
const FirstFrame int32 = -123

// framesPerSecond is the fixed simulation rate replays are recorded at.
const framesPerSecond = 60

const (
	barPanelHeight = 70 // bottom strip holding the controls
	hoverReach     = 95 // hover region extends this far up from the bottom
	trackInset     = 4  // track line sits this far above the panel
	labelRise      = 30 // time label height above the track
	handleRadius   = 12
)

var (
	trackColor    = color.RGBA{255, 255, 255, 128}
	previewColor  = color.RGBA{255, 255, 255, 255}
	progressColor = color.RGBA{0, 255, 0, 255}
	panelColor    = color.RGBA{0, 0, 0, 191}
	dimColor      = color.RGBA{0, 0, 0, 153}
)

// TimeForFrame renders a frame index as MM:SS elapsed since the start of the
// replay.
func TimeForFrame(frame int32) string {
	secs := int(frame-FirstFrame) / framesPerSecond
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// seekBar is the scrubber across the bottom of the screen. While held it
// previews the hovered frame; only the release publishes a seek, because a
// seek is far more expensive than redrawing a preview.
type seekBar struct {
	held  bool
	value int
	min   int
	max   int
}

// hovered reports whether the pointer sits inside the bar's grab region. The
// region is much taller than the visible track so it is easy to catch.
func (s *seekBar) hovered(b Backend) bool {
	w, h := b.Size()
	mx, my := b.PointerPosition()
	barTop := h - barPanelHeight
	return mx >= 5 && mx <= w-5 && my >= h-hoverReach && my <= barTop
}

// update advances the drag state machine one frame and draws the bar.
// It returns true exactly once per completed drag, on the held-to-released
// transition; the committed frame is already stored in the status target.
func (s *seekBar) update(b Backend, status PlaybackStatus, alpha float32) bool {
	w, h := b.Size()
	barTop := h - barPanelHeight
	trackY := barTop - trackInset

	s.min = int(FirstFrame)
	s.max = int(status.LastFrame())
	down := b.PointerPressed()
	hovered := s.hovered(b)

	newValue := s.value
	if hovered || s.held {
		mx, _ := b.PointerPosition()
		t := float32(0)
		if w > 0 {
			t = clamp01(mx / w)
		}
		newValue = clampInt(lerpInt(s.min, s.max, t), s.min, s.max)
		if s.value != newValue && down {
			s.value = newValue
		}
	}

	committed := false
	if s.held {
		s.held = s.held && down
		if !s.held {
			// Single commit point: the drag has ended.
			committed = true
			status.SetTargetFrame(int32(s.value))
		}
	} else {
		s.held = hovered && down
	}

	// Darken the scene while scrubbing to pull focus to the bar.
	if s.held {
		b.FillRect(0, 0, w, h, dimColor)
	}
	b.FillRect(0, barTop, w, barPanelHeight, scaleAlpha(panelColor, alpha))

	b.StrokeLine(0, trackY, w, trackY, 8, scaleAlpha(trackColor, alpha))

	newPos := s.grabPos(newValue, w)
	if hovered && !s.held {
		b.StrokeLine(0, trackY, newPos, trackY, 8, scaleAlpha(previewColor, alpha))
	}
	if hovered || s.held {
		label := TimeForFrame(int32(newValue))
		lw, _ := b.MeasureText(label)
		b.DrawText(label, newPos-lw/2, barTop-labelRise, color.RGBA{255, 255, 255, 255})
	}

	if s.held {
		b.StrokeLine(0, trackY, newPos, trackY, 8, progressColor)
		b.FillCircle(newPos, trackY+2, handleRadius, progressColor)
	} else {
		// Free-running playback has no target; fall back to the live
		// position for the progress line.
		if status.TargetFrame() == NoTargetFrame {
			s.value = int(status.CurrentFrame())
		} else {
			s.value = int(status.TargetFrame())
		}
		s.value = clampInt(s.value, s.min, s.max)
		b.StrokeLine(0, trackY, s.grabPos(s.value, w), trackY, 8, scaleAlpha(progressColor, alpha))
	}
	return committed
}

func (s *seekBar) grabPos(value int, width float32) float32 {
	if s.max <= s.min {
		return 0
	}
	t := float32(value-s.min) / float32(s.max-s.min)
	return clamp01(t) * width
}
