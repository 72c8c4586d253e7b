// Package display provides access to a small pixel display for showing
// incoming messages and modem status. The primary implementation writes to a
// Linux framebuffer device, the simulator serves as stand-in on development
// machines.
package display

import "fmt"

// Color is an RGB color with an opacity between 0.0 and 1.0.
type Color struct {
	R       uint8
	G       uint8
	B       uint8
	Opacity float64
}

// Opaque creates a fully opaque color from the given intensities.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Opacity: 1.0}
}

var (
	Black = Opaque(0, 0, 0)
	White = Opaque(255, 255, 255)
)

// Screen is a pixel display. Implementations buffer written pixels until
// Flush is called.
type Screen interface {
	// Dimensions returns the width and height of the screen in pixels.
	Dimensions() (int, int)
	// WritePixel sets the pixel at the given coordinates. Coordinates
	// outside the screen dimensions are reported as *OutOfRangeError.
	WritePixel(x, y int, color Color) error
	// Flush makes all written pixels visible.
	Flush() error
}

// OutOfRangeError indicates that a pixel outside the screen dimensions was written.
type OutOfRangeError struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) is outside the bounds of the display (%dx%d)",
		e.X, e.Y, e.Width, e.Height)
}
