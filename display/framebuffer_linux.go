//go:build linux

package display

import (
	"fmt"
	"log"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	fbioGetVScreeninfo = 0x4600
	fbioGetFScreeninfo = 0x4602
)

// fbBitfield describes the position of one color channel within a pixel,
// see struct fb_bitfield in linux/fb.h.
type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// fbVarScreeninfo mirrors struct fb_var_screeninfo in linux/fb.h.
type fbVarScreeninfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fbFixScreeninfo mirrors struct fb_fix_screeninfo in linux/fb.h.
type fbFixScreeninfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	Xpanstep     uint16
	Ypanstep     uint16
	Ywrapstep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// FrameBuffer is a Screen backed by a Linux framebuffer device, e.g. /dev/fb1
// for the small SPI display. Pixels are collected in an off-screen frame and
// pushed to the device on Flush.
type FrameBuffer struct {
	device        *os.File
	red           fbBitfield
	green         fbBitfield
	blue          fbBitfield
	frame         []byte
	lineLength    int
	bytesPerPixel int
	width         int
	height        int
}

// OpenFrameBuffer opens the framebuffer device at the given path.
func OpenFrameBuffer(devicePath string) (*FrameBuffer, error) {
	device, err := os.OpenFile(devicePath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open framebuffer device: %w", err)
	}

	var varInfo fbVarScreeninfo
	if err := ioctl(device, fbioGetVScreeninfo, unsafe.Pointer(&varInfo)); err != nil {
		device.Close()
		return nil, fmt.Errorf("cannot read variable screen info: %w", err)
	}
	var fixInfo fbFixScreeninfo
	if err := ioctl(device, fbioGetFScreeninfo, unsafe.Pointer(&fixInfo)); err != nil {
		device.Close()
		return nil, fmt.Errorf("cannot read fixed screen info: %w", err)
	}

	result := &FrameBuffer{
		device:        device,
		red:           varInfo.Red,
		green:         varInfo.Green,
		blue:          varInfo.Blue,
		frame:         make([]byte, int(fixInfo.LineLength)*int(varInfo.Yres)),
		lineLength:    int(fixInfo.LineLength),
		bytesPerPixel: int(varInfo.BitsPerPixel) / 8,
		width:         int(varInfo.Xres),
		height:        int(varInfo.Yres),
	}
	log.Printf("started screen device %s: w=%d h=%d line_length=%d bytespp=%d",
		devicePath, result.width, result.height, result.lineLength, result.bytesPerPixel)

	return result, nil
}

func ioctl(device *os.File, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, device.Fd(), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (f *FrameBuffer) Dimensions() (int, int) {
	return f.width, f.height
}

func (f *FrameBuffer) WritePixel(x, y int, color Color) error {
	// only fully opaque pixels reach the device, blending happens upstream
	if color.Opacity != 1.0 {
		return nil
	}

	pixelIndex := y*f.lineLength + x*f.bytesPerPixel
	if x < 0 || y < 0 || x >= f.width || y >= f.height || pixelIndex >= len(f.frame) {
		return &OutOfRangeError{X: x, Y: y, Width: f.width, Height: f.height}
	}

	pixel := packPixel(color, f.red, f.green, f.blue)
	for i := 0; i < f.bytesPerPixel; i++ {
		f.frame[pixelIndex+i] = byte(pixel)
		pixel >>= 8
	}
	return nil
}

// packPixel scales the 8 bit intensities down to the channel bit lengths of
// the device and places them at their channel offsets.
func packPixel(color Color, red, green, blue fbBitfield) uint64 {
	return uint64(color.R>>(8-red.Length))<<red.Offset |
		uint64(color.G>>(8-green.Length))<<green.Offset |
		uint64(color.B>>(8-blue.Length))<<blue.Offset
}

func (f *FrameBuffer) Flush() error {
	_, err := f.device.WriteAt(f.frame, 0)
	return err
}

func (f *FrameBuffer) Close() error {
	return f.device.Close()
}
