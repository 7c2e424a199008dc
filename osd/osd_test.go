package osd

import "image/color"

// fakeBackend scripts pointer state and records draw calls so the widget
// state machines can be driven headless.
type fakeBackend struct {
	w, h        float32
	x, y        float32
	down        bool
	justPressed bool

	rects   int
	lines   int
	circles int
	texts   []fakeText
}

type fakeText struct {
	s   string
	x   float32
	y   float32
	col color.RGBA
}

func newFakeBackend(w, h float32) *fakeBackend {
	return &fakeBackend{w: w, h: h}
}

func (f *fakeBackend) Size() (float32, float32)            { return f.w, f.h }
func (f *fakeBackend) PointerPosition() (float32, float32) { return f.x, f.y }
func (f *fakeBackend) PointerPressed() bool                { return f.down }
func (f *fakeBackend) PointerJustPressed() bool            { return f.justPressed }

func (f *fakeBackend) FillRect(x, y, w, h float32, col color.RGBA)          { f.rects++ }
func (f *fakeBackend) StrokeLine(x0, y0, x1, y1, w float32, col color.RGBA) { f.lines++ }
func (f *fakeBackend) FillCircle(cx, cy, r float32, col color.RGBA)         { f.circles++ }

func (f *fakeBackend) DrawText(s string, x, y float32, col color.RGBA) {
	f.texts = append(f.texts, fakeText{s: s, x: x, y: y, col: col})
}

func (f *fakeBackend) MeasureText(s string) (float32, float32) {
	return float32(len(s)) * 7, 13
}

func (f *fakeBackend) resetDraws() {
	f.rects, f.lines, f.circles = 0, 0, 0
	f.texts = f.texts[:0]
}

func (f *fakeBackend) textDrawn(s string) bool {
	for _, t := range f.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

// fakeStatus is an in-memory playback status provider.
type fakeStatus struct {
	cur    int32
	last   int32
	target int32
}

func newFakeStatus(cur, last int32) *fakeStatus {
	return &fakeStatus{cur: cur, last: last, target: NoTargetFrame}
}

func (s *fakeStatus) CurrentFrame() int32        { return s.cur }
func (s *fakeStatus) LastFrame() int32           { return s.last }
func (s *fakeStatus) TargetFrame() int32         { return s.target }
func (s *fakeStatus) SetTargetFrame(frame int32) { s.target = frame }

// fakeHost records side-effect requests.
type fakeHost struct {
	seeks       int
	volumes     []int
	fullscreens int
}

func (h *fakeHost) PlaybackSeek()     { h.seeks++ }
func (h *fakeHost) ToggleFullscreen() { h.fullscreens++ }
func (h *fakeHost) ApplyVolume(v int) { h.volumes = append(h.volumes, v) }
