// Package app wires the rendering engine to a HAL and runs the sketch
// demo: a splash screen, then rainbow trails wherever the screen is
// touched. Tapping the top-left corner exits.
package app

import (
	"fmt"
	"image/color"
	"os"

	"fbsketch/assets"
	"fbsketch/gfx"
	"fbsketch/hal"
	"fbsketch/input"
	"fbsketch/text"
)

// The top-left exit hotspot, in pixels.
const exitCorner = 50

type Config struct {
	// ImagePath optionally names a packed .565 asset (see cmd/mkimg)
	// blitted as the splash background.
	ImagePath string
	// Banner is drawn in a rounded pill in the top-right corner.
	Banner string
}

// New builds the app with defaults and returns its per-tick step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Banner: "Hello, World!"})
}

// NewWithConfig builds the app and returns its per-tick step function.
// The first step initializes the surface and paints the splash screen;
// every later step drains touch input and draws.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := &sketch{h: h, cfg: cfg, trail: input.NewTrail(), pen: gfx.Rainbow()}
	return a.step
}

type sketch struct {
	h   hal.HAL
	cfg Config

	surface *gfx.Surface
	fb      hal.Framebuffer
	touch   hal.Touch
	trail   *input.Trail
	pen     gfx.Color

	last    input.Point
	hasLast bool
	started bool
	failed  error
}

func (a *sketch) step() error {
	if a.failed != nil {
		return a.failed
	}
	if !a.started {
		if err := a.start(); err != nil {
			a.failed = err
			return err
		}
		a.started = true
	}

	if !a.trail.Drain(a.touch) {
		// Input device gone; keep presenting whatever is on screen.
		a.touch = nil
	}

	for _, p := range a.trail.Take() {
		if a.hasLast {
			a.surface.DrawLine(a.last.X, a.last.Y, p.X, p.Y, a.pen)
		}
		a.last = p
		a.hasLast = true

		if p.X < exitCorner && p.Y < exitCorner {
			return hal.ErrShutdown
		}
	}
	if a.trail.Ended() {
		a.hasLast = false
	}

	return a.fb.Present()
}

func (a *sketch) start() error {
	fb := a.h.Display().Framebuffer()
	if fb == nil {
		return fmt.Errorf("no framebuffer: %w", hal.ErrNotImplemented)
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("unsupported pixel format %d: %w", fb.Format(), hal.ErrDisplaySize)
	}
	if fb.StrideBytes() != fb.Width()*2 {
		return fmt.Errorf("padded rows (stride %d for width %d): %w", fb.StrideBytes(), fb.Width(), hal.ErrDisplaySize)
	}

	s, err := gfx.NewSurface(fb.Width(), fb.Height(), fb.Buffer())
	if err != nil {
		return err
	}
	a.fb = fb
	a.surface = s
	if in := a.h.Input(); in != nil {
		a.touch = in.Touch()
	}

	a.splash()
	a.h.Logger().WriteLineString(fmt.Sprintf("app: %dx%d surface ready", s.Width(), s.Height()))
	return fb.Present()
}

// splash paints the initial screen: optional background image, a banner
// pill in the top-right, and a ladder of rounded rectangles showing
// every bundled corner radius with stepped translucency.
func (a *sketch) splash() {
	s := a.surface
	s.Fill(gfx.Black)

	if a.cfg.ImagePath != "" {
		if err := a.blitAsset(a.cfg.ImagePath); err != nil {
			a.h.Logger().WriteLineString("app: splash image: " + err.Error())
		}
	}

	if a.cfg.Banner != "" {
		a.banner(a.cfg.Banner)
	}

	for i := 0; i <= 8; i++ {
		alpha := uint8(255 / (i + 1))
		s.DrawRect(75+i*50, 10, 30, 30, i, gfx.RGBA(255, 255, 255, alpha), gfx.White)
	}
}

func (a *sketch) blitAsset(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, err := assets.ReadPacked(f)
	if err != nil {
		return err
	}
	return a.surface.BlitImage(0, 0, img.Width, img.Pix)
}

func (a *sketch) banner(msg string) {
	s := a.surface
	pix, w := text.Render(text.DefaultFont, msg, color.RGBA{A: 255})
	if w == 0 {
		return
	}
	h := len(pix) / 4 / w

	packed, err := gfx.RenderImage(pix, gfx.Yellow)
	if err != nil {
		a.h.Logger().WriteLineString("app: banner: " + err.Error())
		return
	}

	x := s.Width() - w - 32
	y := 20
	s.DrawRect(x-2, y-2, w+4, h+4, 4, gfx.Yellow, gfx.Yellow)
	if err := s.BlitImage(x, y, w, packed); err != nil {
		a.h.Logger().WriteLineString("app: banner: " + err.Error())
	}
}
