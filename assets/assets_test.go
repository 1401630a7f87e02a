package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 1, color.RGBA{0, 0, 255, 255})

	pix, w, h, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if w != 2 || h != 2 {
		t.Fatalf("size = %dx%d, want 2x2", w, h)
	}
	if len(pix) != 2*2*4 {
		t.Fatalf("buffer = %d bytes, want 16", len(pix))
	}
	if pix[0] != 255 || pix[1] != 0 || pix[2] != 0 || pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", pix[0:4])
	}
	if pix[12] != 0 || pix[14] != 255 || pix[15] != 255 {
		t.Errorf("pixel (1,1) = %v, want opaque blue", pix[12:16])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("garbage decoded")
	}
}

func TestDecodeScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 100, G: 200, B: 50, A: 255})
		}
	}
	pix, err := DecodeScaled(encodePNG(t, src), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != 4*4*4 {
		t.Fatalf("buffer = %d bytes, want 64", len(pix))
	}
	// Uniform source stays uniform under resampling.
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 100 || pix[i+1] != 200 || pix[i+2] != 50 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v", i/4, pix[i:i+4])
		}
	}
}

func TestPackedRoundTrip(t *testing.T) {
	pix := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	var buf bytes.Buffer
	if err := WritePacked(&buf, 2, 2, pix); err != nil {
		t.Fatal(err)
	}
	img, err := ReadPacked(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pix, pix) {
		t.Errorf("payload = %v, want %v", img.Pix, pix)
	}
}

func TestWritePackedValidatesPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePacked(&buf, 2, 2, make([]byte, 7)); !errors.Is(err, ErrPackedFormat) {
		t.Errorf("err = %v, want ErrPackedFormat", err)
	}
}

func TestReadPackedRejectsBadInput(t *testing.T) {
	if _, err := ReadPacked(bytes.NewReader([]byte("XXXX\x02\x00\x02\x00"))); !errors.Is(err, ErrPackedFormat) {
		t.Errorf("bad magic: err = %v, want ErrPackedFormat", err)
	}
	if _, err := ReadPacked(bytes.NewReader([]byte("FB65\x02\x00\x02\x00shrt"))); err == nil {
		t.Error("truncated payload accepted")
	}
}
