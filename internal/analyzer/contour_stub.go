//go:build !opencv

package analyzer

import "fmt"

const opencvEnabled = false

func newContourSegmenter(Params) (Segmenter, error) {
	return nil, fmt.Errorf("contour segmenter requires a build with -tags opencv")
}
