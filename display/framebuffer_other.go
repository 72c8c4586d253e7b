//go:build !linux

package display

import "errors"

// FrameBuffer is only available on Linux.
type FrameBuffer struct{}

func OpenFrameBuffer(devicePath string) (*FrameBuffer, error) {
	return nil, errors.New("framebuffer devices are not supported on this platform")
}

func (f *FrameBuffer) Dimensions() (int, int) {
	return 0, 0
}

func (f *FrameBuffer) WritePixel(x, y int, color Color) error {
	return nil
}

func (f *FrameBuffer) Flush() error {
	return nil
}

func (f *FrameBuffer) Close() error {
	return nil
}
