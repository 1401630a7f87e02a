//go:build !linux

package hal

import (
	"context"
	"fmt"
)

func RunDevice(_ context.Context, _ func(HAL) func() error, _ DeviceConfig) error {
	return fmt.Errorf("device mode needs a Linux framebuffer: %w", ErrNotImplemented)
}
