package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Packed asset container: pre-composited RGB565 pixels ready for a
// direct blit. Layout is a 8-byte header (magic, width, height as
// little-endian u16s) followed by width*height*2 payload bytes.
var packedMagic = [4]byte{'F', 'B', '6', '5'}

var ErrPackedFormat = errors.New("not a packed image file")

// PackedImage is a blit-ready image: Pix matches the device layout.
type PackedImage struct {
	Width  int
	Height int
	Pix    []byte
}

// WritePacked serializes a packed pixel buffer produced by
// gfx.RenderImage.
func WritePacked(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 || len(pix) != width*height*2 {
		return fmt.Errorf("payload of %d bytes for %dx%d image: %w", len(pix), width, height, ErrPackedFormat)
	}
	var hdr [8]byte
	copy(hdr[:4], packedMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], uint16(width))
	binary.LittleEndian.PutUint16(hdr[6:8], uint16(height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(pix)
	return err
}

// ReadPacked parses a packed asset file.
func ReadPacked(r io.Reader) (*PackedImage, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(hdr[:4]) != packedMagic {
		return nil, ErrPackedFormat
	}
	width := int(binary.LittleEndian.Uint16(hdr[4:6]))
	height := int(binary.LittleEndian.Uint16(hdr[6:8]))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%dx%d image: %w", width, height, ErrPackedFormat)
	}
	pix := make([]byte, width*height*2)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, fmt.Errorf("read %dx%d payload: %w", width, height, err)
	}
	return &PackedImage{Width: width, Height: height, Pix: pix}, nil
}
