//go:build opencv

package analyzer

import (
	"image"
	"image/color"

	"github.com/mathdevth/bananabrix/internal/system"

	"gocv.io/x/gocv"
)

// ContourSegmenter reproduces the OpenCV pipeline: inRange, external
// contours, largest contour by polygon area, filled-contour mask mean.
// Holes inside the winning contour are filled and therefore averaged in.
type ContourSegmenter struct {
	Range   ColorRange
	MinArea int
}

// NewContourSegmenter creates an OpenCV-backed segmenter from params.
func NewContourSegmenter(p Params) *ContourSegmenter {
	return &ContourSegmenter{
		Range:   p.Range,
		MinArea: p.MinArea,
	}
}

const opencvEnabled = true

func newContourSegmenter(p Params) (Segmenter, error) {
	return NewContourSegmenter(p), nil
}

// Segment returns the mean color inside the largest external contour.
func (s *ContourSegmenter) Segment(img image.Image) (Feature, bool) {
	if img == nil || img.Bounds().Empty() {
		return Feature{}, false
	}

	mat, buf, err := imageToMat(img)
	if err != nil {
		return Feature{}, false
	}
	defer system.PutBuffer(buf)
	defer mat.Close()

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(mat,
		gocv.NewScalar(float64(s.Range.Lower[0]), float64(s.Range.Lower[1]), float64(s.Range.Lower[2]), 0),
		gocv.NewScalar(float64(s.Range.Upper[0]), float64(s.Range.Upper[1]), float64(s.Range.Upper[2]), 0),
		&mask)

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	largest := -1
	maxArea := 0.0
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area > maxArea {
			maxArea = area
			largest = i
		}
	}
	if largest < 0 || maxArea < float64(s.MinArea) {
		return Feature{}, false
	}

	final := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)
	defer final.Close()
	gocv.DrawContours(&final, contours, largest, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)

	mean := mat.MeanWithMask(final)
	return Feature{
		R:    mean.Val3,
		G:    mean.Val2,
		B:    mean.Val1,
		Area: gocv.CountNonZero(final),
	}, true
}

// imageToMat converts a Go image into a BGR Mat backed by a pooled buffer.
// The caller returns the buffer to the pool after closing the Mat.
func imageToMat(img image.Image) (gocv.Mat, []uint8, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf := toBGR(img, system.GetBuffer(w*h*3))
	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, buf)
	if err != nil {
		system.PutBuffer(buf)
		return gocv.Mat{}, nil, err
	}
	return mat, buf, nil
}
