package hal

import "sync"

// memoryFramebuffer backs the host runners with a plain byte slice laid
// out exactly like the device region: w*h*2 bytes, no row padding. The
// mutex only guards whole-buffer operations (clear, snapshot); pixel
// writes through Buffer must stay on the app goroutine.
type memoryFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
}

// NewMemoryFramebuffer returns an in-memory RGB565 framebuffer. Handy for
// tests and for the headless runner.
func NewMemoryFramebuffer(width, height int) Framebuffer {
	return newMemoryFramebuffer(width, height)
}

func newMemoryFramebuffer(width, height int) *memoryFramebuffer {
	return &memoryFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
}

func (f *memoryFramebuffer) Width() int          { return f.width }
func (f *memoryFramebuffer) Height() int         { return f.height }
func (f *memoryFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memoryFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *memoryFramebuffer) Buffer() []byte      { return f.buf }
func (f *memoryFramebuffer) Present() error      { return nil }

func (f *memoryFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memoryFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
