package analyzer

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	background = color.RGBA{R: 10, G: 10, B: 200, A: 255} // blue cloth, out of range
	peel       = color.RGBA{R: 200, G: 180, B: 50, A: 255}
	darkPeel   = color.RGBA{R: 120, G: 100, B: 20, A: 255}
)

func newImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), c)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func assertFeature(t *testing.T, got Feature, c color.RGBA) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.R-float64(c.R)) > eps || math.Abs(got.G-float64(c.G)) > eps || math.Abs(got.B-float64(c.B)) > eps {
		t.Errorf("Expected (%d,%d,%d), got (%.3f,%.3f,%.3f)", c.R, c.G, c.B, got.R, got.G, got.B)
	}
}

func TestSegmentNoCandidates(t *testing.T) {
	seg := NewColorSegmenter(DefaultParams())

	if _, ok := seg.Segment(newImage(120, 120, background)); ok {
		t.Error("Expected not found for an image without banana-colored pixels")
	}
}

func TestSegmentEmptyImage(t *testing.T) {
	seg := NewColorSegmenter(DefaultParams())

	if _, ok := seg.Segment(image.NewRGBA(image.Rect(0, 0, 0, 0))); ok {
		t.Error("Expected not found for an empty image")
	}
	if _, ok := seg.Segment(nil); ok {
		t.Error("Expected not found for a nil image")
	}
}

func TestSegmentUniformImage(t *testing.T) {
	seg := NewColorSegmenter(DefaultParams())

	feature, ok := seg.Segment(newImage(100, 100, peel))
	if !ok {
		t.Fatal("Expected the whole image to be found")
	}
	assertFeature(t, feature, peel)
	if feature.Area != 10000 {
		t.Errorf("Expected area 10000, got %d", feature.Area)
	}
}

func TestSegmentPicksLargestRegion(t *testing.T) {
	img := newImage(220, 100, background)
	fillRect(img, image.Rect(0, 0, 50, 60), darkPeel) // 3000 px
	fillRect(img, image.Rect(100, 0, 200, 80), peel)  // 8000 px

	seg := NewColorSegmenter(DefaultParams())
	feature, ok := seg.Segment(img)
	if !ok {
		t.Fatal("Expected the 8000 pixel region to be found")
	}
	assertFeature(t, feature, peel)
	if feature.Area != 8000 {
		t.Errorf("Expected area 8000, got %d", feature.Area)
	}
}

func TestSegmentMinimumArea(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		minArea int
		found   bool
	}{
		{"below threshold", image.Rect(0, 0, 50, 99), 5000, false}, // 4950 px
		{"at threshold", image.Rect(0, 0, 50, 100), 5000, true},    // 5000 px
		{"custom threshold", image.Rect(0, 0, 10, 10), 100, true},
		{"disabled threshold", image.Rect(0, 0, 1, 1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newImage(150, 150, background)
			fillRect(img, tt.rect, peel)

			seg := NewColorSegmenter(DefaultParams().WithMinArea(tt.minArea))
			_, ok := seg.Segment(img)
			if ok != tt.found {
				t.Errorf("Expected found=%v, got %v", tt.found, ok)
			}
		})
	}
}

func TestSegmentTieBreaksInRasterOrder(t *testing.T) {
	img := newImage(200, 120, background)
	fillRect(img, image.Rect(0, 10, 60, 110), darkPeel) // 6000 px, starts on row 10
	fillRect(img, image.Rect(100, 0, 160, 100), peel)   // 6000 px, starts on row 0

	seg := NewColorSegmenter(DefaultParams())
	feature, ok := seg.Segment(img)
	if !ok {
		t.Fatal("Expected a region")
	}
	assertFeature(t, feature, peel)
}

func TestSegmentIgnoresNestedRegions(t *testing.T) {
	img := newImage(140, 140, background)
	fillRect(img, image.Rect(10, 10, 130, 130), darkPeel)
	fillRect(img, image.Rect(12, 12, 128, 128), background) // ring of 944 px
	fillRect(img, image.Rect(20, 20, 120, 120), peel)       // island of 10000 px inside the hole

	seg := NewColorSegmenter(DefaultParams())
	if _, ok := seg.Segment(img); ok {
		t.Error("Expected nested island to be ignored and the ring to be too small")
	}

	seg.MinArea = 900
	feature, ok := seg.Segment(img)
	if !ok {
		t.Fatal("Expected the ring to be found with a lower threshold")
	}
	assertFeature(t, feature, darkPeel)
	if feature.Area != 944 {
		t.Errorf("Expected ring area 944, got %d", feature.Area)
	}

	regions := seg.Regions(img)
	if len(regions) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(regions))
	}
	if !regions[0].Outer || regions[1].Outer {
		t.Errorf("Expected ring outer and island nested, got %+v", regions)
	}
}

func TestSegmentDiagonalConnectivity(t *testing.T) {
	img := newImage(200, 200, background)
	// Two squares touching only at a corner form one 8-connected region
	fillRect(img, image.Rect(0, 0, 60, 60), peel)
	fillRect(img, image.Rect(60, 60, 120, 120), peel)

	seg := NewColorSegmenter(DefaultParams())
	feature, ok := seg.Segment(img)
	if !ok {
		t.Fatal("Expected a region")
	}
	if feature.Area != 7200 {
		t.Errorf("Expected corner-joined area 7200, got %d", feature.Area)
	}
}

func TestSegmentMaskExactMean(t *testing.T) {
	img := newImage(120, 120, background)
	fillRect(img, image.Rect(0, 0, 100, 50), peel)
	fillRect(img, image.Rect(0, 50, 100, 100), darkPeel)

	seg := NewColorSegmenter(DefaultParams())
	feature, ok := seg.Segment(img)
	if !ok {
		t.Fatal("Expected a region")
	}

	want := color.RGBA{
		R: uint8((int(peel.R) + int(darkPeel.R)) / 2),
		G: uint8((int(peel.G) + int(darkPeel.G)) / 2),
		B: uint8((int(peel.B) + int(darkPeel.B)) / 2),
	}
	assertFeature(t, feature, want)
}

func TestSegmentChannelOrder(t *testing.T) {
	seg := NewColorSegmenter(DefaultParams())

	// High blue fails the B <= 120 bound once converted to BGR
	swapped := color.RGBA{R: peel.B, G: peel.G, B: peel.R, A: 255}
	if _, ok := seg.Segment(newImage(100, 100, swapped)); ok {
		t.Error("Expected blue-heavy pixels to be rejected")
	}
	if _, ok := seg.Segment(newImage(100, 100, peel)); !ok {
		t.Error("Expected peel pixels to be accepted")
	}
}

func TestSegmentGenericImageTypes(t *testing.T) {
	seg := NewColorSegmenter(DefaultParams())

	nrgba := image.NewNRGBA(image.Rect(0, 0, 80, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			nrgba.SetNRGBA(x, y, color.NRGBA{R: peel.R, G: peel.G, B: peel.B, A: 255})
		}
	}
	feature, ok := seg.Segment(nrgba)
	if !ok {
		t.Fatal("Expected NRGBA image to be segmented")
	}
	assertFeature(t, feature, peel)

	// Sub-images keep a non-zero origin
	full := newImage(200, 200, background)
	fillRect(full, image.Rect(100, 100, 200, 200), peel)
	sub := full.SubImage(image.Rect(90, 90, 200, 200))
	feature, ok = seg.Segment(sub)
	if !ok {
		t.Fatal("Expected sub-image to be segmented")
	}
	assertFeature(t, feature, peel)
	if feature.Area != 10000 {
		t.Errorf("Expected area 10000, got %d", feature.Area)
	}
}

func TestSegmentIsDeterministic(t *testing.T) {
	img := newImage(220, 100, background)
	fillRect(img, image.Rect(0, 0, 50, 60), darkPeel)
	fillRect(img, image.Rect(100, 0, 200, 80), peel)

	seg := NewColorSegmenter(DefaultParams())
	first, ok1 := seg.Segment(img)
	second, ok2 := seg.Segment(img)
	if first != second || ok1 != ok2 {
		t.Errorf("Expected identical results, got %+v/%v and %+v/%v", first, ok1, second, ok2)
	}
}

func TestColorRange(t *testing.T) {
	rng := DefaultColorRange()

	tests := []struct {
		b, g, r uint8
		want    bool
	}{
		{0, 80, 80, true},
		{120, 255, 255, true},
		{121, 200, 200, false},
		{50, 79, 200, false},
		{50, 200, 79, false},
	}
	for _, tt := range tests {
		if got := rng.Contains(tt.b, tt.g, tt.r); got != tt.want {
			t.Errorf("Contains(%d,%d,%d) = %v, want %v", tt.b, tt.g, tt.r, got, tt.want)
		}
	}
}

func TestSegmenterRegistry(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"color", false},
		{"", false}, // default
		{"contour", !opencvEnabled},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			seg, err := NewSegmenter(tt.variant, DefaultParams())

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if seg == nil {
					t.Error("Expected segmenter, got nil")
				}
			}
		})
	}
}
