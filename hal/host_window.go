//go:build cgo

package hal

import (
	"errors"
	"image"

	"fbsketch/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that presents the framebuffer and
// feeds mouse input back as touch events. It blocks until the window
// closes or the app step returns ErrShutdown.
func RunWindow(newApp func(HAL) func() error, width, height int) error {
	h := New(width, height).(*hostHAL)
	step := newApp(h)

	scale := 1
	if width <= 400 {
		scale = 2
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("fbsketch (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollMouse()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrShutdown) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

// pollMouse turns the left mouse button into a touch: press and release
// map to contact edges, a held button streams move samples.
func (g *hostGame) pollMouse() {
	t := g.h.touch
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !t.down:
		t.down = true
		t.emit(TouchEvent{Phase: TouchBegan})
		t.emit(TouchEvent{X: x, Y: y, Phase: TouchMove})
	case pressed:
		t.emit(TouchEvent{X: x, Y: y, Phase: TouchMove})
	case t.down:
		t.down = false
		t.emit(TouchEvent{Phase: TouchEnded})
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
