package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fbsketch/app"
	"fbsketch/hal"
)

func main() {
	var (
		device    = flag.Bool("device", false, "Draw to a real framebuffer instead of a window.")
		fbPath    = flag.String("fb", "/dev/fb0", "Framebuffer device (device mode).")
		touchPath = flag.String("touch", "/dev/input/event3", "Touchscreen device (device mode, empty = none).")
		width     = flag.Int("width", 800, "Display width in pixels.")
		height    = flag.Int("height", 480, "Display height in pixels.")
		headless  = flag.Bool("headless", false, "Run without a window.")
		hz        = flag.Int("hz", 60, "Tick rate in device/headless mode.")
		ticks     = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		imgPath   = flag.String("img", "", "Packed .565 splash image (see cmd/mkimg).")
		banner    = flag.String("banner", "Hello, World!", "Banner text.")
	)
	flag.Parse()

	cfg := app.Config{ImagePath: *imgPath, Banner: *banner}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	switch {
	case *device:
		// The console cursor blink redraws part of the screen; turn it
		// off before taking over the framebuffer.
		fmt.Print("\x1b[?25l")
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunDevice(ctx, newApp, hal.DeviceConfig{
			FBPath:    *fbPath,
			TouchPath: *touchPath,
			Width:     *width,
			Height:    *height,
			Hz:        *hz,
			Ticks:     *ticks,
		}); err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case *headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  *width,
			Height: *height,
			Hz:     *hz,
			Ticks:  *ticks,
		}); err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	default:
		if err := hal.RunWindow(newApp, *width, *height); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
