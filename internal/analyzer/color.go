package analyzer

import (
	"image"

	"github.com/mathdevth/bananabrix/internal/system"
)

// Pixel states used while labelling. Background pixels only ever hold
// stateUnseen or stateOutside; foreground pixels only stateUnseen or stateVisited.
const (
	stateUnseen uint8 = iota
	stateOutside
	stateVisited
)

const maskOn = 255

// ColorSegmenter finds the largest 8-connected region of in-range pixels
// and averages the image over exactly that region.
type ColorSegmenter struct {
	Range   ColorRange
	MinArea int
}

// NewColorSegmenter creates a segmenter from params.
func NewColorSegmenter(p Params) *ColorSegmenter {
	return &ColorSegmenter{
		Range:   p.Range,
		MinArea: p.MinArea,
	}
}

// Region is one outer connected component of the candidate mask.
type Region struct {
	Start image.Point // first pixel met in raster order, relative to the image origin
	Area  int
	Outer bool // false when the region sits inside a hole of another region
	sum   [3]uint64
}

// Mean returns the region's average color in RGB order.
func (r Region) Mean() Feature {
	if r.Area == 0 {
		return Feature{}
	}
	n := float64(r.Area)
	return Feature{
		R:    float64(r.sum[2]) / n,
		G:    float64(r.sum[1]) / n,
		B:    float64(r.sum[0]) / n,
		Area: r.Area,
	}
}

// Segment returns the mean color of the dominant banana-colored region.
func (s *ColorSegmenter) Segment(img image.Image) (Feature, bool) {
	regions := s.Regions(img)

	best := largestRegion(regions)
	if best == nil || best.Area < s.MinArea {
		return Feature{}, false
	}
	return best.Mean(), true
}

// Regions labels every connected component of the candidate mask in raster order.
func (s *ColorSegmenter) Regions(img image.Image) []Region {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	// Step 1: decoder RGB order to the BGR order the thresholds are written in
	bgr := toBGR(img, system.GetBuffer(w*h*3))
	defer system.PutBuffer(bgr)

	// Step 2: per-pixel range test
	mask := buildMask(bgr, w, h, s.Range, system.GetBuffer(w*h))
	defer system.PutBuffer(mask.Pix)

	// Step 3: connected components
	state := system.GetBuffer(w * h)
	defer system.PutBuffer(state)

	return findRegions(mask, bgr, state)
}

// toBGR copies img into dst as packed B,G,R triples. Alpha is ignored.
func toBGR(img image.Image, dst []uint8) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			row := rgba.Pix[(y+bounds.Min.Y-rgba.Rect.Min.Y)*rgba.Stride+(bounds.Min.X-rgba.Rect.Min.X)*4:]
			for x := 0; x < w; x++ {
				i := (y*w + x) * 3
				dst[i+0] = row[x*4+2]
				dst[i+1] = row[x*4+1]
				dst[i+2] = row[x*4+0]
			}
		}
		return dst
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			dst[i+0] = uint8(b >> 8)
			dst[i+1] = uint8(g >> 8)
			dst[i+2] = uint8(r >> 8)
		}
	}
	return dst
}

// buildMask marks pixels whose BGR values fall inside rng.
func buildMask(bgr []uint8, w, h int, rng ColorRange, pix []uint8) *image.Gray {
	mask := &image.Gray{Pix: pix, Stride: w, Rect: image.Rect(0, 0, w, h)}
	for i := 0; i < w*h; i++ {
		if rng.Contains(bgr[i*3], bgr[i*3+1], bgr[i*3+2]) {
			mask.Pix[i] = maskOn
		} else {
			mask.Pix[i] = 0
		}
	}
	return mask
}

// findRegions labels 8-connected foreground components. Background is
// traversed with 4-connectivity from the border so that a component can be
// told apart from one nested in another component's hole.
func findRegions(mask *image.Gray, bgr, state []uint8) []Region {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	stack := make([]int, 0, 1024)

	// Outside background: everything reachable from the border
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y != 0 && y != h-1 && x != 0 && x != w-1 {
				continue
			}
			i := y*w + x
			if mask.Pix[i] == 0 && state[i] == stateUnseen {
				state[i] = stateOutside
				stack = append(stack, i)
			}
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for _, n := range [4][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
			if n[0] < 0 || n[0] >= w || n[1] < 0 || n[1] >= h {
				continue
			}
			j := n[1]*w + n[0]
			if mask.Pix[j] == 0 && state[j] == stateUnseen {
				state[j] = stateOutside
				stack = append(stack, j)
			}
		}
	}

	var regions []Region
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if mask.Pix[i] == maskOn && state[i] == stateUnseen {
				region, s := floodFill(mask, bgr, state, x, y, stack[:0])
				stack = s
				regions = append(regions, region)
			}
		}
	}
	return regions
}

// floodFill collects one 8-connected component starting at (startX, startY).
func floodFill(mask *image.Gray, bgr, state []uint8, startX, startY int, stack []int) (Region, []int) {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	region := Region{Start: image.Point{X: startX, Y: startY}}

	start := startY*w + startX
	state[start] = stateVisited
	stack = append(stack, start)

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w

		region.Area++
		region.sum[0] += uint64(bgr[i*3])
		region.sum[1] += uint64(bgr[i*3+1])
		region.sum[2] += uint64(bgr[i*3+2])

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					// touching the border makes a component outer
					if dx == 0 || dy == 0 {
						region.Outer = true
					}
					continue
				}
				j := ny*w + nx
				if mask.Pix[j] == maskOn {
					if state[j] == stateUnseen {
						state[j] = stateVisited
						stack = append(stack, j)
					}
				} else if (dx == 0 || dy == 0) && state[j] == stateOutside {
					region.Outer = true
				}
			}
		}
	}

	return region, stack
}

// largestRegion picks the outer region with the most pixels; the earliest in
// raster order wins a tie.
func largestRegion(regions []Region) *Region {
	var best *Region
	for i := range regions {
		r := &regions[i]
		if !r.Outer {
			continue
		}
		if best == nil || r.Area > best.Area {
			best = r
		}
	}
	return best
}
