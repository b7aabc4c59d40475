package analyzer

import "image"

// DefaultMinArea is the smallest region, in pixels, accepted as a banana.
const DefaultMinArea = 5000

// Feature is the mean color of the dominant banana region, reported in RGB order.
type Feature struct {
	R, G, B float64
	Area    int // pixels in the winning region
}

// Vector returns the feature as the [R, G, B] row the regression model expects.
func (f Feature) Vector() []float64 {
	return []float64{f.R, f.G, f.B}
}

// ColorRange is an inclusive per-channel interval in BGR order.
type ColorRange struct {
	Lower [3]uint8
	Upper [3]uint8
}

// DefaultColorRange returns the banana peel bounds: B 0-120, G 80-255, R 80-255.
func DefaultColorRange() ColorRange {
	return ColorRange{
		Lower: [3]uint8{0, 80, 80},
		Upper: [3]uint8{120, 255, 255},
	}
}

// Contains reports whether a BGR pixel lies inside the range on every channel.
func (c ColorRange) Contains(b, g, r uint8) bool {
	return b >= c.Lower[0] && b <= c.Upper[0] &&
		g >= c.Lower[1] && g <= c.Upper[1] &&
		r >= c.Lower[2] && r <= c.Upper[2]
}

// Params configures a Segmenter.
type Params struct {
	Range   ColorRange
	MinArea int
}

// DefaultParams returns the reference thresholds.
func DefaultParams() Params {
	return Params{
		Range:   DefaultColorRange(),
		MinArea: DefaultMinArea,
	}
}

// WithRange returns a copy of params with custom BGR bounds.
func (p Params) WithRange(lower, upper [3]uint8) Params {
	p.Range = ColorRange{Lower: lower, Upper: upper}
	return p
}

// WithMinArea returns a copy of params with a different minimum region size.
func (p Params) WithMinArea(area int) Params {
	p.MinArea = area
	return p
}

// Segmenter locates the banana region in a decoded image.
// The boolean result is false when no sufficiently large region exists.
type Segmenter interface {
	Segment(img image.Image) (Feature, bool)
}
