package text

import (
	"image/color"
	"testing"
)

func TestRenderProducesTightRGBABuffer(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	pix, w := Render(DefaultFont, "Hello, World!", red)
	if w <= 0 {
		t.Fatalf("width = %d, want > 0", w)
	}
	if len(pix)%4 != 0 || (len(pix)/4)%w != 0 {
		t.Fatalf("buffer of %d bytes is not whole %d-pixel RGBA rows", len(pix), w)
	}

	drawn := 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		drawn++
		if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 {
			t.Fatalf("glyph pixel %d has color (%d, %d, %d), want red", i/4, pix[i], pix[i+1], pix[i+2])
		}
	}
	if drawn == 0 {
		t.Error("no glyph pixels were drawn")
	}
}

func TestRenderEmptyString(t *testing.T) {
	pix, w := Render(DefaultFont, "", color.RGBA{A: 255})
	if w != 0 || len(pix) != 0 {
		t.Errorf("empty string rendered %d bytes at width %d", len(pix), w)
	}
}

func TestRenderWiderStringIsWider(t *testing.T) {
	_, narrow := Render(DefaultFont, "i", color.RGBA{A: 255})
	_, wide := Render(DefaultFont, "iiii", color.RGBA{A: 255})
	if wide <= narrow {
		t.Errorf("width(iiii) = %d, width(i) = %d", wide, narrow)
	}
}

func TestCanvasClipsOutOfRange(t *testing.T) {
	cv := &canvas{w: 2, h: 2, pix: make([]byte, 2*2*4)}
	cv.SetPixel(-1, 0, color.RGBA{A: 255})
	cv.SetPixel(0, -1, color.RGBA{A: 255})
	cv.SetPixel(2, 0, color.RGBA{A: 255})
	cv.SetPixel(0, 2, color.RGBA{A: 255})
	for i, b := range cv.pix {
		if b != 0 {
			t.Fatalf("byte %d = %d after out-of-range writes", i, b)
		}
	}
}
