package osd

const (
	volumeMin      = 0
	volumeMax      = 100
	muteRestore    = 30 // restore level when unmuting with no remembered value
	volumeBarX     = buttonWidth * 5
	volumeBarWidth = 80
	volumeBarTop   = 50 // offsets from the bottom edge
	volumeBarBot   = 32
)

// volumeBar is the small horizontal slider next to the mute button. Unlike
// the seek bar it publishes every distinct value while held: repeated volume
// writes are cheap, and hearing the level move is the point.
type volumeBar struct {
	held  bool
	value int
	prev  int // last nonzero level, restored on unmute
}

func (v *volumeBar) bounds(b Backend) (x0, y0, x1, y1 float32) {
	_, h := b.Size()
	return volumeBarX, h - volumeBarTop, volumeBarX + volumeBarWidth, h - volumeBarBot
}

func (v *volumeBar) hovered(b Backend) bool {
	x0, y0, x1, y1 := v.bounds(b)
	mx, my := b.PointerPosition()
	return mx >= x0 && mx <= x1 && my >= y0 && my <= y1
}

// update advances the drag state machine one frame and draws the slider. It
// returns true whenever the value changed this frame; the caller publishes
// each change immediately.
func (v *volumeBar) update(b Backend, alpha float32) bool {
	x0, _, x1, y1 := v.bounds(b)
	down := b.PointerPressed()
	hovered := v.hovered(b)

	changed := false
	if hovered || v.held {
		mx, _ := b.PointerPosition()
		t := float32(0)
		if x1 > x0 {
			t = clamp01((mx - x0) / (x1 - x0))
		}
		newValue := clampInt(lerpInt(volumeMin, volumeMax, t), volumeMin, volumeMax)
		if v.value != newValue && down {
			changed = true
			v.value = newValue
		}
	}
	if v.held {
		v.held = v.held && down
	} else {
		v.held = hovered && down
	}

	lineY := y1 - 5
	b.StrokeLine(x0, lineY, x1, lineY, 8, scaleAlpha(trackColor, alpha))
	pos := x0 + clamp01(float32(v.value-volumeMin)/float32(volumeMax-volumeMin))*(x1-x0)
	b.StrokeLine(x0, lineY, pos, lineY, 8, scaleAlpha(previewColor, alpha))
	if v.held {
		b.FillCircle(pos, lineY, handleRadius, scaleAlpha(previewColor, alpha))
	}
	return changed
}

// toggleMute flips between silence and the remembered level. Returns the new
// value; the caller publishes it.
func (v *volumeBar) toggleMute() int {
	if v.value == 0 {
		if v.prev == 0 {
			v.value = muteRestore
		} else {
			v.value = v.prev
		}
	} else {
		v.prev = v.value
		v.value = 0
	}
	return v.value
}
