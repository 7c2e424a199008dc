package main

import (
	"context"
	"sync/atomic"
	"time"

	"slipstream/osd"
)

// playbackFPS is the fixed simulation rate replays were recorded at.
const playbackFPS = 60

// playbackStatus is the shared frame state between the player goroutine and
// the presentation thread. Atomic counters; no locks needed.
type playbackStatus struct {
	cur    atomic.Int32
	last   atomic.Int32
	target atomic.Int32
}

func newPlaybackStatus(lastFrame int32) *playbackStatus {
	ps := &playbackStatus{}
	ps.cur.Store(osd.FirstFrame)
	ps.last.Store(lastFrame)
	ps.target.Store(osd.NoTargetFrame)
	return ps
}

func (ps *playbackStatus) CurrentFrame() int32        { return ps.cur.Load() }
func (ps *playbackStatus) LastFrame() int32           { return ps.last.Load() }
func (ps *playbackStatus) TargetFrame() int32         { return ps.target.Load() }
func (ps *playbackStatus) SetTargetFrame(frame int32) { ps.target.Store(frame) }

// player advances playback frames on a fixed ticker and services seek
// requests. Seeks are fire-and-forget: the requester sets the status target
// and pokes seekReq; the player clears the target once it has landed.
type player struct {
	status   *playbackStatus
	playing  atomic.Bool
	finished atomic.Bool
	seekReq  chan struct{}
}

func newPlayer(status *playbackStatus) *player {
	p := &player{status: status, seekReq: make(chan struct{}, 1)}
	p.playing.Store(true)
	return p
}

// requestSeek queues a seek toward the current status target. Duplicate
// requests while one is pending collapse into it.
func (p *player) requestSeek() {
	select {
	case p.seekReq <- struct{}{}:
	default:
	}
}

func (p *player) togglePause() {
	was := p.playing.Load()
	p.playing.Store(!was)
	if was {
		postMessage("Paused")
	} else {
		postMessage("Playing")
	}
}

// frameAdvance steps one frame while paused.
func (p *player) frameAdvance() {
	if p.playing.Load() {
		return
	}
	cur := p.status.CurrentFrame()
	if cur < p.status.LastFrame() {
		p.status.cur.Store(cur + 1)
	}
}

func (p *player) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / playbackFPS)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.seekReq:
			p.applySeek()
		case <-ticker.C:
			if p.playing.Load() {
				p.step()
			}
		}
	}
}

func (p *player) step() {
	cur := p.status.CurrentFrame()
	last := p.status.LastFrame()
	if cur >= last {
		if !p.finished.Swap(true) {
			p.playing.Store(false)
			postMessage("Replay finished")
			notifyDesktop("slipstream", "Replay finished")
		}
		return
	}
	p.status.cur.Store(cur + 1)
}

// applySeek jumps to the pending target frame and clears it. Landing takes a
// short while on real replays (state reconstruction); the target stays set
// until then so the UI shows the destination and drops duplicate requests.
func (p *player) applySeek() {
	target := p.status.TargetFrame()
	if target == osd.NoTargetFrame {
		return
	}
	if target < osd.FirstFrame {
		target = osd.FirstFrame
	}
	if last := p.status.LastFrame(); target > last {
		target = last
	}
	p.status.cur.Store(target)
	p.status.target.Store(osd.NoTargetFrame)
	if target < p.status.LastFrame() {
		p.finished.Store(false)
	}
	logDebug("seek applied: frame %d", target)
}
