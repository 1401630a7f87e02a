package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64
}

// RunHeadless steps the app on a ticker without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)
	return runLoop(ctx, step, cfg.Hz, cfg.Ticks)
}

// runLoop drives a step function at a fixed rate until the context is
// cancelled, the tick limit is reached, or the step asks to shut down.
func runLoop(ctx context.Context, step func() error, hz int, ticks uint64) error {
	if hz <= 0 {
		hz = 60
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("invalid tick rate: %d", hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				if errors.Is(err, ErrShutdown) {
					return nil
				}
				return err
			}
			n++
			if ticks > 0 && n >= ticks {
				return nil
			}
		}
	}
}
