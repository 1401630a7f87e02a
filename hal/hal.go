package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrDisplaySize reports a display device whose geometry or pixel
	// format does not match what the engine was configured for.
	ErrDisplaySize = errors.New("display size mismatch")

	// ErrShutdown is returned by an app step function to request a clean
	// exit of whichever runner is driving it.
	ErrShutdown = errors.New("shutdown requested")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook. Buffer returns the
// backing bytes directly; the rendering engine mutates them in place.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// TouchPhase classifies a touch event.
type TouchPhase uint8

const (
	// TouchMove carries a screen coordinate of the finger.
	TouchMove TouchPhase = iota
	// TouchBegan marks finger contact. No coordinate.
	TouchBegan
	// TouchEnded marks the finger lifting. No coordinate.
	TouchEnded
)

// TouchEvent is one decoded touchscreen sample.
type TouchEvent struct {
	X, Y  int
	Phase TouchPhase
}

// Touch provides touchscreen events (best-effort on each platform).
type Touch interface {
	Events() <-chan TouchEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Touch() Touch
}

// HAL aggregates the platform services the app needs.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// DeviceConfig names the display and touchscreen character devices for
// RunDevice. An empty TouchPath runs without input.
type DeviceConfig struct {
	FBPath    string
	TouchPath string
	Width     int
	Height    int
	Hz        int
	Ticks     uint64
}
