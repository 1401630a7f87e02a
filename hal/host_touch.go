package hal

// hostTouch buffers synthesized touch events. The window runner fills it
// from the mouse once per frame; events are dropped rather than blocking
// when the app falls behind.
type hostTouch struct {
	ch   chan TouchEvent
	down bool
}

func newHostTouch() *hostTouch {
	return &hostTouch{ch: make(chan TouchEvent, 256)}
}

func (t *hostTouch) Events() <-chan TouchEvent { return t.ch }

func (t *hostTouch) emit(ev TouchEvent) {
	select {
	case t.ch <- ev:
	default:
	}
}
