package detect

import (
	"github.com/screenlens/ui-detect/internal/config"
)

// adaptiveGenerator binarizes the grayscale plane against a locally-adaptive
// neighborhood-mean threshold and proposes the resulting connected
// components.
//
// A pixel is foreground when it is brighter than the mean of its
// AdaptiveWindow×AdaptiveWindow neighborhood minus AdaptiveOffset. This
// catches low-contrast UI boundaries that global thresholds miss.
type adaptiveGenerator struct{}

func (adaptiveGenerator) Name() string { return "adaptive-threshold" }

func (adaptiveGenerator) Propose(src *Source, cfg config.Config) []Region {
	mask := adaptiveThreshold(src.Plane, cfg.AdaptiveWindow, cfg.AdaptiveOffset)

	var regions []Region
	for _, comp := range findComponents(mask, cfg.MinComponentSize) {
		if len(comp.pixels) <= cfg.AdaptiveMinArea {
			continue
		}
		r := comp.bounds()
		if r.Width <= cfg.AdaptiveMinDimension || r.Height <= cfg.AdaptiveMinDimension {
			continue
		}
		regions = append(regions, r)
	}
	return regions
}

// adaptiveThreshold binarizes a luminance plane against the local
// neighborhood mean, computed in O(1) per pixel via an integral image.
// The window is clamped at the image borders.
func adaptiveThreshold(plane [][]float64, window, offset int) [][]bool {
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])

	// Integral image over 8-bit intensities.
	integral := make([][]float64, height+1)
	integral[0] = make([]float64, width+1)
	for y := 0; y < height; y++ {
		integral[y+1] = make([]float64, width+1)
		rowSum := 0.0
		for x := 0; x < width; x++ {
			rowSum += plane[y][x] * 255.0
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := window / 2
	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		y1 := maxInt(y-half, 0)
		y2 := minInt(y+half, height-1)
		for x := 0; x < width; x++ {
			x1 := maxInt(x-half, 0)
			x2 := minInt(x+half, width-1)

			count := float64((y2 - y1 + 1) * (x2 - x1 + 1))
			sum := integral[y2+1][x2+1] - integral[y1][x2+1] - integral[y2+1][x1] + integral[y1][x1]
			mean := sum / count

			mask[y][x] = plane[y][x]*255.0 > mean-float64(offset)
		}
	}
	return mask
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
