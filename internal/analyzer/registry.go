package analyzer

import "fmt"

// NewSegmenter creates a segmenter based on the specified variant
func NewSegmenter(variant string, p Params) (Segmenter, error) {
	switch variant {
	case "color", "":
		return NewColorSegmenter(p), nil
	case "contour":
		return newContourSegmenter(p)
	default:
		return nil, fmt.Errorf("unknown segmenter variant: %s", variant)
	}
}
