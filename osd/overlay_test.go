package osd

import "testing"

func TestOverlayDrawsMessagesAndBar(t *testing.T) {
	b := newFakeBackend(800, 600)
	var now int64
	o := New(b, func() int64 { return now })

	o.AddMessage("hello", 1000, ColorWhite)
	o.Draw()
	if !b.textDrawn("hello") {
		t.Fatalf("message not drawn")
	}
	// No playback attached: no control bar.
	if b.lines != 0 {
		t.Fatalf("control bar drawn without playback: %d lines", b.lines)
	}

	st := newFakeStatus(0, 1000)
	o.EnablePlayback(st, &fakeHost{}, 70)
	if o.Volume() != 70 {
		t.Fatalf("volume = %d, want 70", o.Volume())
	}
	b.resetDraws()
	o.Draw()
	if b.lines == 0 {
		t.Fatalf("control bar not drawn with playback attached")
	}

	// Message expires.
	now = 1000
	b.resetDraws()
	o.Draw()
	if b.textDrawn("hello") {
		t.Fatalf("expired message still drawn")
	}
}

func TestOverlayShowMessagesGate(t *testing.T) {
	b := newFakeBackend(800, 600)
	var now int64
	o := New(b, func() int64 { return now })
	o.ShowMessages = false

	o.AddMessage("quiet", 500, ColorWhite)
	o.Draw()
	if b.textDrawn("quiet") {
		t.Fatalf("message drawn while disabled")
	}
	// Disabled drawing still prunes: re-enable after expiry and nothing
	// comes back.
	now = 500
	o.Draw()
	o.ShowMessages = true
	b.resetDraws()
	o.Draw()
	if len(b.texts) != 0 {
		t.Fatalf("stale message survived disabled pruning")
	}
}

func TestDisablePlaybackDropsHeldState(t *testing.T) {
	b := newFakeBackend(800, 600)
	o := New(b, func() int64 { return 0 })
	st := newFakeStatus(0, 1000)
	o.EnablePlayback(st, &fakeHost{}, 50)

	// Start a drag on the seek bar.
	b.x, b.y, b.down = 400, 520, true
	o.Draw()
	o.Draw()
	if !o.bar.seek.held {
		t.Fatalf("seek bar not held after press")
	}

	o.DisablePlayback()
	if o.bar.seek.held {
		t.Fatalf("held state survived DisablePlayback")
	}

	// Re-attaching must not fire a phantom commit on the next release.
	host := &fakeHost{}
	o.EnablePlayback(st, host, 50)
	b.down = false
	o.Draw()
	if host.seeks != 0 {
		t.Fatalf("phantom seek after re-attach: %d", host.seeks)
	}
}
