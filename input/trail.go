// Package input assembles raw touch events into drawable stroke paths.
package input

import "fbsketch/hal"

// Point is a pixel coordinate on the display.
type Point struct {
	X, Y int
}

// Trail accumulates the positions of the current touch into an ordered
// path. Feed it every event from a hal.Touch, then Take the buffered
// points between frames. Not safe for concurrent use.
type Trail struct {
	pts   []Point
	ended bool
}

func NewTrail() *Trail {
	return &Trail{}
}

// Feed folds one touch event into the trail.
func (t *Trail) Feed(ev hal.TouchEvent) {
	switch ev.Phase {
	case hal.TouchBegan:
		t.ended = false
	case hal.TouchEnded:
		t.ended = true
	case hal.TouchMove:
		t.pts = append(t.pts, Point{X: ev.X, Y: ev.Y})
	}
}

// Drain consumes every event currently buffered on the touch device.
// Returns false if the device is gone (its channel closed).
func (t *Trail) Drain(touch hal.Touch) bool {
	if touch == nil {
		return true
	}
	for {
		select {
		case ev, ok := <-touch.Events():
			if !ok {
				return false
			}
			t.Feed(ev)
		default:
			return true
		}
	}
}

// Take returns the buffered points in touch order and resets the path.
func (t *Trail) Take() []Point {
	pts := t.pts
	t.pts = nil
	return pts
}

// Ended reports whether the finger has lifted since the last Began.
func (t *Trail) Ended() bool {
	return t.ended
}
