package gfx

// The on-device pixel format is RGB565 stored little-endian: 5 bits red,
// 6 bits green, 5 bits blue packed into a uint16, low byte first in the
// buffer. Pack and Unpack are the only places this layout is known.

// Pack packs 8-bit RGB channels into an RGB565 value. Each channel keeps
// only its top bits (5/6/5); the rest are discarded.
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Unpack expands a packed value back to 8-bit channels. The low bits that
// Pack discarded come back as zero, so Unpack(Pack(r, g, b)) yields
// (r&0xF8, g&0xFC, b&0xF8), not the original channels. Callers reading
// pixels back for blending must not expect exact recovery.
func Unpack(p uint16) (r, g, b uint8) {
	r = uint8(p>>11) << 3
	g = uint8(p>>5&0x3F) << 2
	b = uint8(p&0x1F) << 3
	return r, g, b
}

// Blend composites a translucent source color over an opaque destination,
// per channel: out = (a*src + (255-a)*dst) / 256. Dividing by 256 instead
// of 255 is a deliberate shift-friendly approximation; it undershoots by
// at most one step (a=255 does not return src exactly). BlendPixel's
// fast paths make the exact cases hold where they matter.
func Blend(r, g, b, a, dr, dg, db uint8) (uint8, uint8, uint8) {
	av := uint16(a)
	inv := 255 - av
	nr := uint8((av*uint16(r) + inv*uint16(dr)) / 256)
	ng := uint8((av*uint16(g) + inv*uint16(dg)) / 256)
	nb := uint8((av*uint16(b) + inv*uint16(db)) / 256)
	return nr, ng, nb
}
