//go:build linux

package hal

import (
	"context"
	"os"
)

type deviceHAL struct {
	logger *hostLogger
	fb     *fbdevFramebuffer
	touch  *touchscreen
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return deviceDisplay{fb: h.fb} }
func (h *deviceHAL) Input() Input     { return deviceInput{touch: h.touch} }

type deviceDisplay struct {
	fb *fbdevFramebuffer
}

func (d deviceDisplay) Framebuffer() Framebuffer { return d.fb }

type deviceInput struct {
	touch *touchscreen
}

func (in deviceInput) Touch() Touch {
	if in.touch == nil {
		return nil
	}
	return in.touch
}

// RunDevice drives the app against real hardware: the framebuffer device
// is mapped for the duration of the run and released on return.
func RunDevice(ctx context.Context, newApp func(HAL) func() error, cfg DeviceConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	fb, err := openFbdev(cfg.FBPath, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer fb.Close()

	var touch *touchscreen
	if cfg.TouchPath != "" {
		touch, err = openTouchscreen(cfg.TouchPath)
		if err != nil {
			return err
		}
		defer touch.Close()
	}

	h := &deviceHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     fb,
		touch:  touch,
	}
	step := newApp(h)
	return runLoop(ctx, step, cfg.Hz, cfg.Ticks)
}
