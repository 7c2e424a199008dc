// Package osd renders transient on-screen notifications and, while a replay
// is playing, an interactive control bar (scrubber, volume, help) over the
// video output. Drawing and widget state run on the presentation goroutine
// once per frame; the message queue alone accepts producers from any
// goroutine.
package osd

import "time"

// Standard message colors, packed ARGB.
const (
	ColorCyan   uint32 = 0xFF00FFFF
	ColorGreen  uint32 = 0xFF00FF00
	ColorRed    uint32 = 0xFFFF0000
	ColorYellow uint32 = 0xFFFFFF00
	ColorWhite  uint32 = 0xFFFFFFFF
)

// Standard message durations in milliseconds.
const (
	DurationShort    int64 = 2000
	DurationNormal   int64 = 5000
	DurationVeryLong int64 = 10000
)

// Overlay owns all OSD state: the notification queue plus the playback
// control bar. One instance per presentation surface.
type Overlay struct {
	backend Backend
	clock   func() int64
	queue   *messageQueue
	bar     controls

	status PlaybackStatus
	host   Host

	// ShowMessages gates notification rendering (expired messages are
	// still pruned). Presentation goroutine only.
	ShowMessages bool
}

// New builds an overlay on the given backend. clock must return monotonic
// milliseconds; pass nil for a wall-uptime default.
func New(b Backend, clock func() int64) *Overlay {
	if clock == nil {
		start := time.Now()
		clock = func() int64 { return time.Since(start).Milliseconds() }
	}
	return &Overlay{
		backend:      b,
		clock:        clock,
		queue:        newMessageQueue(),
		ShowMessages: true,
	}
}

// EnablePlayback attaches the playback collaborators and turns on the
// control bar. volume seeds the slider from the saved setting.
func (o *Overlay) EnablePlayback(status PlaybackStatus, host Host, volume int) {
	o.status = status
	o.host = host
	o.bar.vol.value = clampInt(volume, volumeMin, volumeMax)
}

// DisablePlayback detaches the control bar and drops any in-flight drag so a
// later re-attach never resumes a stale hold.
func (o *Overlay) DisablePlayback() {
	o.status = nil
	o.host = nil
	o.bar.reset()
}

// Volume returns the bar's current level.
func (o *Overlay) Volume() int { return o.bar.vol.value }

// AddMessage queues an untyped notification for ms milliseconds. Safe from
// any goroutine.
func (o *Overlay) AddMessage(text string, ms int64, argb uint32) {
	o.queue.add(text, o.clock()+ms, argb)
}

// AddTypedMessage queues a notification that replaces any live message of
// the same type. Safe from any goroutine.
func (o *Overlay) AddTypedMessage(typ MessageType, text string, ms int64, argb uint32) {
	o.queue.addTyped(typ, text, o.clock()+ms, argb)
}

// ClearMessages drops every queued notification. Safe from any goroutine.
func (o *Overlay) ClearMessages() {
	o.queue.clear()
}

// Draw runs one overlay frame: prune and render notifications, then the
// playback bar when attached. Presentation goroutine only.
func (o *Overlay) Draw() {
	now := o.clock()
	o.queue.drawAndPrune(o.backend, now, o.ShowMessages)
	if o.status != nil && o.host != nil {
		o.bar.update(o.backend, now, o.status, o.host)
	}
}
