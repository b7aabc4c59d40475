//go:build opencv

package analyzer

import (
	"image"
	"math"
	"testing"
)

func TestContourSegmenterUniformImage(t *testing.T) {
	seg := NewContourSegmenter(DefaultParams())

	feature, ok := seg.Segment(newImage(100, 100, peel))
	if !ok {
		t.Fatal("Expected the whole image to be found")
	}
	if math.Abs(feature.R-float64(peel.R)) > 0.5 || math.Abs(feature.G-float64(peel.G)) > 0.5 || math.Abs(feature.B-float64(peel.B)) > 0.5 {
		t.Errorf("Expected peel color, got %+v", feature)
	}
}

func TestContourSegmenterAgreesOnSolidRegions(t *testing.T) {
	img := newImage(220, 100, background)
	fillRect(img, image.Rect(0, 0, 50, 60), darkPeel)
	fillRect(img, image.Rect(100, 0, 200, 80), peel)

	native, ok1 := NewColorSegmenter(DefaultParams()).Segment(img)
	contour, ok2 := NewContourSegmenter(DefaultParams()).Segment(img)
	if !ok1 || !ok2 {
		t.Fatalf("Expected both variants to find a region: %v %v", ok1, ok2)
	}
	if math.Abs(native.R-contour.R) > 0.5 || math.Abs(native.G-contour.G) > 0.5 || math.Abs(native.B-contour.B) > 0.5 {
		t.Errorf("Variants disagree: native %+v, contour %+v", native, contour)
	}
	t.Logf("native area=%d contour area=%d", native.Area, contour.Area)
}

func TestContourSegmenterNoCandidates(t *testing.T) {
	seg := NewContourSegmenter(DefaultParams())
	if _, ok := seg.Segment(newImage(120, 120, background)); ok {
		t.Error("Expected not found")
	}
}
