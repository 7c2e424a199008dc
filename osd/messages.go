package osd

import (
	"sync"
)

// MessageType keys a notification category. Posting a typed message replaces
// any live message of the same type; Typeless messages coexist freely.
type MessageType int

const (
	Typeless MessageType = iota
	NetPlayPing
	NetPlayBuffer
	VolumeLevel
	PlaybackPosition

	messageTypeCount
)

const (
	leftMargin    = 10.0 // pixels to the left of OSD messages
	topMargin     = 10.0 // pixels above the first OSD message
	messagePad    = 4.0  // pixels between subsequent OSD messages
	fadeWindowMs  = 1024 // messages fade over their final second
	messageBgARGB = 0xa0000000
)

type message struct {
	text   string
	expiry int64 // monotonic ms
	argb   uint32
}

// messageQueue holds the live notifications. Producers on arbitrary
// goroutines add and clear; the presentation goroutine draws and prunes. A
// single mutex covers every operation end to end so a draw never observes a
// half-applied replace.
type messageQueue struct {
	mu      sync.Mutex
	typed   map[MessageType]message
	untyped []message
}

func newMessageQueue() *messageQueue {
	return &messageQueue{typed: make(map[MessageType]message, messageTypeCount)}
}

func (q *messageQueue) addTyped(typ MessageType, text string, expiry int64, argb uint32) {
	q.mu.Lock()
	defer q.mu.Unlock()
	msg := message{text: text, expiry: expiry, argb: argb}
	if typ == Typeless {
		// Replacing "typeless" evicts the whole untyped set, matching the
		// replace-by-key semantics of the typed slots.
		q.untyped = q.untyped[:0]
		q.untyped = append(q.untyped, msg)
		return
	}
	q.typed[typ] = msg
}

func (q *messageQueue) add(text string, expiry int64, argb uint32) {
	q.mu.Lock()
	q.untyped = append(q.untyped, message{text: text, expiry: expiry, argb: argb})
	q.mu.Unlock()
}

func (q *messageQueue) clear() {
	q.mu.Lock()
	q.typed = make(map[MessageType]message, messageTypeCount)
	q.untyped = q.untyped[:0]
	q.mu.Unlock()
}

// drawAndPrune removes expired messages and, when enabled, renders the rest
// top to bottom at a fixed left margin. Runs on the presentation goroutine
// only, but holds the queue lock for the full pass so concurrent producers
// never interleave with a partially rendered frame.
func (q *messageQueue) drawAndPrune(b Backend, now int64, draw bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	y := float32(topMargin)
	for typ := MessageType(0); typ < messageTypeCount; typ++ {
		msg, ok := q.typed[typ]
		if !ok {
			continue
		}
		if msg.expiry <= now {
			delete(q.typed, typ)
			continue
		}
		if draw {
			y += drawMessage(b, msg, y, now) + messagePad
		}
	}

	kept := q.untyped[:0]
	for _, msg := range q.untyped {
		if msg.expiry <= now {
			continue
		}
		kept = append(kept, msg)
		if draw {
			y += drawMessage(b, msg, y, now) + messagePad
		}
	}
	q.untyped = kept
}

// messageAlpha returns the fade factor for a message with timeLeft ms of
// life remaining.
func messageAlpha(timeLeft int64) float32 {
	return clamp01(float32(timeLeft) / fadeWindowMs)
}

func drawMessage(b Backend, msg message, y float32, now int64) float32 {
	alpha := messageAlpha(msg.expiry - now)
	w, h := b.MeasureText(msg.text)
	b.FillRect(leftMargin-messagePad, y-messagePad, w+2*messagePad, h+2*messagePad,
		scaleAlpha(argbToRGBA(messageBgARGB), alpha))
	b.DrawText(msg.text, leftMargin, y, scaleAlpha(argbToRGBA(msg.argb), alpha))
	return h
}
