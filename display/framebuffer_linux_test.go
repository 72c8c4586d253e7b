//go:build linux

package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rgb565 is the pixel layout of the small SPI displays this was built for.
var rgb565 = struct {
	red   fbBitfield
	green fbBitfield
	blue  fbBitfield
}{
	red:   fbBitfield{Offset: 11, Length: 5},
	green: fbBitfield{Offset: 5, Length: 6},
	blue:  fbBitfield{Offset: 0, Length: 5},
}

func newTestFrameBuffer(width, height, bytesPerPixel int) *FrameBuffer {
	return &FrameBuffer{
		red:           rgb565.red,
		green:         rgb565.green,
		blue:          rgb565.blue,
		frame:         make([]byte, width*bytesPerPixel*height),
		lineLength:    width * bytesPerPixel,
		bytesPerPixel: bytesPerPixel,
		width:         width,
		height:        height,
	}
}

func TestPackPixel(t *testing.T) {
	tt := []struct {
		desc     string
		color    Color
		expected uint64
	}{
		{"black", Black, 0x0000},
		{"white", White, 0xFFFF},
		{"red", Opaque(255, 0, 0), 0xF800},
		{"green", Opaque(0, 255, 0), 0x07E0},
		{"blue", Opaque(0, 0, 255), 0x001F},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual := packPixel(tc.color, rgb565.red, rgb565.green, rgb565.blue)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFrameBuffer_WritePixel(t *testing.T) {
	fb := newTestFrameBuffer(4, 4, 2)

	err := fb.WritePixel(1, 2, Opaque(255, 0, 0))
	require.NoError(t, err)

	pixelIndex := 2*fb.lineLength + 1*fb.bytesPerPixel
	assert.Equal(t, byte(0x00), fb.frame[pixelIndex])
	assert.Equal(t, byte(0xF8), fb.frame[pixelIndex+1])
}

func TestFrameBuffer_WritePixelSkipsTranslucent(t *testing.T) {
	fb := newTestFrameBuffer(4, 4, 2)

	err := fb.WritePixel(0, 0, Color{R: 255, Opacity: 0.5})
	require.NoError(t, err)

	assert.Equal(t, make([]byte, len(fb.frame)), fb.frame)
}

func TestFrameBuffer_WritePixelOutOfRange(t *testing.T) {
	fb := newTestFrameBuffer(4, 4, 2)

	err := fb.WritePixel(4, 0, White)

	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 4, outOfRange.X)
	assert.Equal(t, 4, outOfRange.Width)
}
