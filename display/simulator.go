package display

// Simulator dimensions match the 1.8" TFT display of the target device.
const (
	simulatorWidth  = 128
	simulatorHeight = 160
)

// NewSimulator creates an in-memory Screen with the fixed dimensions of the
// target display, magnified by the given integer scale. It records all
// written pixels for inspection, to be used in tests and on machines without
// a framebuffer.
func NewSimulator(scale int) *Simulator {
	if scale < 1 {
		scale = 1
	}
	return &Simulator{
		scale:  scale,
		pixels: make([]Color, simulatorWidth*simulatorHeight*scale*scale),
	}
}

type Simulator struct {
	scale   int
	pixels  []Color
	flushed int
}

func (s *Simulator) Dimensions() (int, int) {
	return simulatorWidth, simulatorHeight
}

// WritePixel draws the pixel as a scale x scale square, ignoring its opacity.
func (s *Simulator) WritePixel(x, y int, color Color) error {
	if x < 0 || y < 0 || x >= simulatorWidth || y >= simulatorHeight {
		return &OutOfRangeError{X: x, Y: y, Width: simulatorWidth, Height: simulatorHeight}
	}

	scaledWidth := simulatorWidth * s.scale
	for dy := 0; dy < s.scale; dy++ {
		for dx := 0; dx < s.scale; dx++ {
			s.pixels[(y*s.scale+dy)*scaledWidth+(x*s.scale+dx)] = color
		}
	}
	return nil
}

func (s *Simulator) Flush() error {
	s.flushed++
	return nil
}

// At returns the recorded color at the given device coordinates, including
// the applied scale.
func (s *Simulator) At(x, y int) Color {
	return s.pixels[y*simulatorWidth*s.scale+x]
}

// Flushed returns how often Flush was called.
func (s *Simulator) Flushed() int {
	return s.flushed
}
