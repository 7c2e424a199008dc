package osd

import "image/color"

const (
	buttonWidth = 54
	buttonRise  = 62 // button row top, offset from the bottom edge

	stepFrames = 300  // 5 seconds
	jumpFrames = 1200 // 20 seconds

	tooltipTop    = 150 // tooltip box top, offset from the bottom edge
	tooltipBottom = 96
	tooltipTextY  = 140

	// The bar never goes fully transparent so its hover region keeps
	// resurrecting it.
	minBarAlpha = 0.0001
	idleGraceMs = 1000
	idleFadeMs  = 1000
)

var (
	buttonColor      = color.RGBA{230, 230, 230, 153}
	buttonHoverColor = color.RGBA{230, 230, 230, 255}
	tooltipBgColor   = color.RGBA{0, 0, 0, 230}
	helpBgColor      = color.RGBA{0, 0, 0, 204}
	textColor        = color.RGBA{255, 255, 255, 255}
)

var helpLines = []string{
	"Play/Pause: Spacebar",
	"Step Back (5s): Left Arrow",
	"Step Forward (5s): Right Arrow",
	"Jump Back (20s): Shift + Left Arrow",
	"Jump Forward (20s): Shift + Right Arrow",
	"Frame Advance: Period",
	"Big jumps may take several seconds.",
}

// controls drives the playback bar: the scrubber, the button strip with
// tooltips, the volume slider, the help panel, and the idle fade.
type controls struct {
	seek seekBar
	vol  volumeBar

	showHelp bool
	idleTick int64
	prevX    float32
	prevY    float32
}

type barButton struct {
	label   string
	tooltip string
	x       float32
}

// layout returns the button strip for the current screen width. Offsets are
// fixed multiples of the button size; help and fullscreen hang off the right
// edge.
func (c *controls) layout(w float32) []barButton {
	return []barButton{
		{label: "<<", tooltip: "Jump Back (Shift + Left Arrow)", x: 0},
		{label: "<", tooltip: "Step Back (Left Arrow)", x: buttonWidth},
		{label: ">", tooltip: "Step Forward (Right Arrow)", x: buttonWidth * 2},
		{label: ">>", tooltip: "Jump Forward (Shift + Right Arrow)", x: buttonWidth * 3},
		{label: "mute", tooltip: "Toggle Mute", x: buttonWidth * 4},
		{label: "?", tooltip: "View Help", x: w - buttonWidth*2},
		{label: "[ ]", tooltip: "Toggle Fullscreen (Alt + Enter)", x: w - buttonWidth},
	}
}

func (c *controls) buttonHovered(b Backend, btn barButton) bool {
	_, h := b.Size()
	mx, my := b.PointerPosition()
	y := h - buttonRise
	return mx >= btn.x && mx <= btn.x+buttonWidth && my >= y && my <= y+buttonWidth
}

// anyHovered reports whether the pointer currently rests on any interactive
// region of the bar. Hover pins the bar fully opaque regardless of idle time.
func (c *controls) anyHovered(b Backend) bool {
	if c.seek.hovered(b) || c.vol.hovered(b) {
		return true
	}
	w, _ := b.Size()
	for _, btn := range c.layout(w) {
		if c.buttonHovered(b, btn) {
			return true
		}
	}
	return false
}

// barAlpha computes the whole-bar opacity for this frame and rolls the idle
// timer forward. Pointer movement resets the timer; past the grace period the
// bar fades out over one second.
func (c *controls) barAlpha(b Backend, now int64) float32 {
	mx, my := b.PointerPosition()
	if mx != c.prevX || my != c.prevY {
		c.idleTick = now
	}
	c.prevX, c.prevY = mx, my

	if c.showHelp || c.anyHovered(b) {
		return 1
	}
	idle := now - c.idleTick
	if idle < idleGraceMs {
		idle = 0
	} else {
		idle -= idleGraceMs
	}
	alpha := 1 - float32(idle)/idleFadeMs
	if alpha < minBarAlpha {
		alpha = minBarAlpha
	}
	return alpha
}

// update runs one frame of the playback bar.
func (c *controls) update(b Backend, now int64, status PlaybackStatus, host Host) {
	w, h := b.Size()
	alpha := c.barAlpha(b, now)

	if c.seek.update(b, status, alpha) {
		host.PlaybackSeek()
	}

	for _, btn := range c.layout(w) {
		label := btn.label
		if label == "mute" && c.vol.value == 0 {
			label = "muted"
		}
		clicked, hovered := c.button(b, label, btn.x, alpha)
		if hovered {
			c.tooltip(b, btn.tooltip, btn.x)
		}
		if !clicked {
			continue
		}
		switch btn.label {
		case "<<":
			c.requestStep(status, host, -jumpFrames)
		case "<":
			c.requestStep(status, host, -stepFrames)
		case ">":
			c.requestStep(status, host, stepFrames)
		case ">>":
			c.requestStep(status, host, jumpFrames)
		case "mute":
			host.ApplyVolume(c.vol.toggleMute())
		case "?":
			c.showHelp = !c.showHelp
		case "[ ]":
			host.ToggleFullscreen()
		}
	}

	if c.vol.update(b, alpha) {
		host.ApplyVolume(c.vol.value)
	}

	if c.showHelp {
		c.helpPanel(b, alpha)
	}

	cur := TimeForFrame(status.CurrentFrame())
	end := TimeForFrame(status.LastFrame())
	b.DrawText(cur+" / "+end, 380, h-50, scaleAlpha(textColor, alpha))
}

// requestStep seeks relative to the live position. Ignored while a previous
// seek is still in flight (target already set).
func (c *controls) requestStep(status PlaybackStatus, host Host, delta int32) {
	if status.TargetFrame() != NoTargetFrame {
		return
	}
	frame := status.CurrentFrame() + delta
	if frame < FirstFrame {
		frame = FirstFrame
	}
	if last := status.LastFrame(); frame > last {
		frame = last
	}
	status.SetTargetFrame(frame)
	host.PlaybackSeek()
}

func (c *controls) button(b Backend, label string, x, alpha float32) (clicked, hovered bool) {
	_, h := b.Size()
	y := h - buttonRise
	mx, my := b.PointerPosition()
	hovered = mx >= x && mx <= x+buttonWidth && my >= y && my <= y+buttonWidth
	clicked = hovered && b.PointerJustPressed()

	col := scaleAlpha(buttonColor, alpha)
	if hovered {
		col = scaleAlpha(buttonHoverColor, alpha)
	}
	tw, th := b.MeasureText(label)
	b.DrawText(label, x+(buttonWidth-tw)/2, y+(buttonWidth-th)/2, col)
	return clicked, hovered
}

func (c *controls) tooltip(b Backend, text string, x float32) {
	_, h := b.Size()
	tw, _ := b.MeasureText(text)
	b.FillRect(x+5, h-tooltipTop, tw+20, tooltipTop-tooltipBottom, tooltipBgColor)
	b.DrawText(text, x+15, h-tooltipTextY, textColor)
}

func (c *controls) helpPanel(b Backend, alpha float32) {
	w, h := b.Size()
	b.FillRect(w-600, h-416, 550, 416-tooltipBottom, scaleAlpha(helpBgColor, alpha))
	y := h - 386
	for _, line := range helpLines {
		b.DrawText(line, w-580, y, scaleAlpha(textColor, alpha))
		y += 40
	}
}

// reset clears transient interaction state. Called when the playback surface
// goes away so a recreated bar never starts out "held".
func (c *controls) reset() {
	c.seek.held = false
	c.vol.held = false
	c.showHelp = false
}
