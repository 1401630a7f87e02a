package hal

import "testing"

func TestMemoryFramebufferGeometry(t *testing.T) {
	fb := NewMemoryFramebuffer(320, 240)
	if fb.Width() != 320 || fb.Height() != 240 {
		t.Fatalf("size = %dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Errorf("format = %d", fb.Format())
	}
	if fb.StrideBytes() != 640 {
		t.Errorf("stride = %d, want 640", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 320*240*2 {
		t.Errorf("buffer = %d bytes, want %d", len(fb.Buffer()), 320*240*2)
	}
}

func TestMemoryFramebufferClear(t *testing.T) {
	fb := NewMemoryFramebuffer(4, 2)
	fb.ClearRGB(255, 0, 0)
	buf := fb.Buffer()
	lo, hi := byte(0x00), byte(0xF8) // red packs to 0xF800, little-endian
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != lo || buf[i+1] != hi {
			t.Fatalf("pixel %d = %#02x %#02x, want %#02x %#02x", i/2, buf[i], buf[i+1], lo, hi)
		}
	}
}

func TestRGB565Helpers(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, c := range cases {
		if got := rgb565(c.r, c.g, c.b); got != c.want {
			t.Errorf("rgb565(%d, %d, %d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}

	r, g, b := rgb888From565(0xFFFF)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("rgb888From565(0xFFFF) = (%d, %d, %d), want full white", r, g, b)
	}
}

func TestHostTouchDropsWhenFull(t *testing.T) {
	touch := newHostTouch()
	for i := 0; i < 1000; i++ {
		touch.emit(TouchEvent{X: i, Phase: TouchMove})
	}
	// Channel capacity bounds the backlog; emit must never block.
	if n := len(touch.ch); n != cap(touch.ch) {
		t.Errorf("buffered %d events, want %d", n, cap(touch.ch))
	}
}
