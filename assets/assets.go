// Package assets turns externally supplied images into the pixel buffers
// the rendering engine consumes: raw RGBA bytes for blending, or packed
// RGB565 files produced ahead of time by cmd/mkimg.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Decode decodes an encoded image (PNG, or anything registered with
// image.RegisterFormat) into a tight row-major RGBA byte buffer.
func Decode(data []byte) (pix []byte, w, h int, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}
	return flatten(img)
}

// Scale resamples a decoded image to dw x dh, returning RGBA bytes.
// Useful for fitting assets to small displays before pre-compositing.
func Scale(img image.Image, dw, dh int) (pix []byte, err error) {
	if dw <= 0 || dh <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", dw, dh)
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst.Pix, nil
}

// DecodeScaled decodes and, when the target size differs from the
// source, resamples in one step.
func DecodeScaled(data []byte, dw, dh int) (pix []byte, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == dw && b.Dy() == dh {
		pix, _, _, err = flatten(img)
		return pix, err
	}
	return Scale(img, dw, dh)
}

func flatten(img image.Image) (pix []byte, w, h int, err error) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == w*4 {
		return rgba.Pix, w, h, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst.Pix, w, h, nil
}
