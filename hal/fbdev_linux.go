//go:build linux

package hal

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const fbioGetVScreenInfo = 0x4600

// fbVarScreenInfo mirrors the leading fields of the kernel's
// fb_var_screeninfo structure.
type fbVarScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	_            [24]uint32
}

// fbdevFramebuffer writes straight into the kernel's mapped display
// region. There is no separate present step; every pixel write is
// immediately visible.
type fbdevFramebuffer struct {
	f    *os.File
	mem  []byte
	w, h int
}

// openFbdev maps a framebuffer character device for the process
// lifetime. The device must already be configured for 16bpp at the
// requested geometry; anything else is a fatal startup condition.
func openFbdev(path string, width, height int) (*fbdevFramebuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer: %w", err)
	}

	var vinfo fbVarScreenInfo
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&vinfo))); errno != 0 {
		f.Close()
		return nil, fmt.Errorf("read screen info: %w", errno)
	}
	if int(vinfo.XRes) != width || int(vinfo.YRes) != height || vinfo.BitsPerPixel != 16 {
		f.Close()
		return nil, fmt.Errorf("device is %dx%d at %dbpp, want %dx%d at 16bpp: %w",
			vinfo.XRes, vinfo.YRes, vinfo.BitsPerPixel, width, height, ErrDisplaySize)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, width*height*2, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map framebuffer: %w", err)
	}

	return &fbdevFramebuffer{f: f, mem: mem, w: width, h: height}, nil
}

func (d *fbdevFramebuffer) Width() int          { return d.w }
func (d *fbdevFramebuffer) Height() int         { return d.h }
func (d *fbdevFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (d *fbdevFramebuffer) StrideBytes() int    { return d.w * 2 }
func (d *fbdevFramebuffer) Buffer() []byte      { return d.mem }
func (d *fbdevFramebuffer) Present() error      { return nil }

func (d *fbdevFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(d.mem); i += 2 {
		d.mem[i] = lo
		d.mem[i+1] = hi
	}
}

func (d *fbdevFramebuffer) Close() error {
	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}
