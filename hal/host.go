package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *memoryFramebuffer
	touch  *hostTouch
}

// New returns a host HAL backed by an in-memory framebuffer. The window
// runner presents it and feeds mouse input back as touch events; the
// headless runner just steps the app against it.
func New(width, height int) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newMemoryFramebuffer(width, height),
		touch:  newHostTouch(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{touch: h.touch} }

type hostDisplay struct {
	fb *memoryFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touch() Touch { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
