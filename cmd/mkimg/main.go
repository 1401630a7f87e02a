// Command mkimg pre-composites a PNG against a solid background and
// writes a packed RGB565 asset that the app can blit without any
// per-frame blending.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fbsketch/assets"
	"fbsketch/gfx"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.png).")
		outPath = flag.String("out", "", "Output asset (.565).")
		bg      = flag.String("bg", "000000", "Background color to composite against (RRGGBB hex).")
		width   = flag.Int("width", 0, "Scale to this width (0 = keep).")
		height  = flag.Int("height", 0, "Scale to this height (0 = keep).")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mkimg -in image.png -out image.565 [-bg RRGGBB] [-width N -height N]")
	}

	background, err := parseHexColor(*bg)
	if err != nil {
		fatalf("bad -bg: %v", err)
	}

	if err := convert(*inPath, *outPath, background, *width, *height); err != nil {
		fatalf("convert: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func convert(inPath, outPath string, background gfx.Solid, width, height int) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var pix []byte
	var w, h int
	if width > 0 && height > 0 {
		pix, err = assets.DecodeScaled(data, width, height)
		w, h = width, height
	} else {
		pix, w, h, err = assets.Decode(data)
	}
	if err != nil {
		return err
	}

	packed, err := gfx.RenderImage(pix, background)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := assets.WritePacked(out, w, h, packed); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func parseHexColor(s string) (gfx.Solid, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return gfx.Black, fmt.Errorf("want RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return gfx.Black, err
	}
	return gfx.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
