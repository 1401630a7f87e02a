//go:build linux

package hal

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Each evdev record is a native timeval followed by a u16 type, u16 code
// and i32 value: 16 bytes on 32-bit targets, 24 on 64-bit ones.
const (
	timevalSize    = int(unsafe.Sizeof(unix.Timeval{}))
	eventSize      = timevalSize + 8
	eventBufferLen = 16
)

// Event type/code pairs a single-touch (or first-slot multitouch)
// touchscreen reports.
const (
	evSyn = 0x00
	evAbs = 0x03

	absX            = 0x00
	absY            = 0x01
	absMTTrackingID = 0x39
)

// touchscreen decodes an evdev character device into touch events.
// Decoding runs on its own goroutine so the single rendering thread only
// ever drains a channel.
type touchscreen struct {
	f  *os.File
	ch chan TouchEvent
}

func openTouchscreen(path string) (*touchscreen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touchscreen: %w", err)
	}
	t := &touchscreen{f: f, ch: make(chan TouchEvent, 256)}
	go t.readLoop()
	return t, nil
}

func (t *touchscreen) Events() <-chan TouchEvent { return t.ch }

func (t *touchscreen) Close() error { return t.f.Close() }

func (t *touchscreen) readLoop() {
	defer close(t.ch)
	buf := make([]byte, eventSize*eventBufferLen)
	// Coordinates arrive one axis per record; hold each half until its
	// partner shows up, then flush the pair on the SYN marker.
	nextX, nextY := -1, -1
	for {
		n, err := t.f.Read(buf)
		if err != nil {
			return
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			typ := binary.LittleEndian.Uint16(buf[off+timevalSize:])
			code := binary.LittleEndian.Uint16(buf[off+timevalSize+2:])
			value := int32(binary.LittleEndian.Uint32(buf[off+timevalSize+4:]))
			switch {
			case typ == evSyn:
				if nextX >= 0 && nextY >= 0 {
					t.emit(TouchEvent{X: nextX, Y: nextY, Phase: TouchMove})
					nextX, nextY = -1, -1
				}
			case typ == evAbs && code == absX:
				nextX = int(value)
			case typ == evAbs && code == absY:
				nextY = int(value)
			case typ == evAbs && code == absMTTrackingID:
				if value < 0 {
					t.emit(TouchEvent{Phase: TouchEnded})
				} else {
					t.emit(TouchEvent{Phase: TouchBegan})
				}
			}
		}
	}
}

func (t *touchscreen) emit(ev TouchEvent) {
	select {
	case t.ch <- ev:
	default:
	}
}
