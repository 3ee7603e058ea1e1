package detect

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	bildsegment "github.com/anthonynsimon/bild/segment"

	"github.com/screenlens/ui-detect/internal/config"
)

// morphGenerator proposes regions from connected components that survive a
// morphological closing followed by an opening at several kernel sizes.
//
// Closing merges fragmented shapes, opening suppresses noise. A component is
// accepted when it is large enough and fills at least MorphMinFill of its
// bounding box, a proxy for "is rectangular".
type morphGenerator struct{}

func (morphGenerator) Name() string { return "morphological-rectangularity" }

func (morphGenerator) Propose(src *Source, cfg config.Config) []Region {
	var regions []Region
	for _, size := range cfg.MorphKernelSizes {
		radius := float64(size / 2)

		closed := effect.Erode(effect.Dilate(src.Gray, radius), radius)
		opened := effect.Dilate(effect.Erode(closed, radius), radius)

		mask := maskFromGray(bildsegment.Threshold(opened, 1))
		for _, comp := range findComponents(mask, cfg.MinComponentSize) {
			area := len(comp.pixels)
			if area <= cfg.MorphMinArea {
				continue
			}
			r := comp.bounds()
			if float64(area)/float64(r.Area()) <= cfg.MorphMinFill {
				continue
			}
			regions = append(regions, r)
		}
	}
	return regions
}

// maskFromGray converts a binarized grayscale image into a boolean
// foreground mask.
func maskFromGray(img *image.Gray) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y > 0
		}
	}
	return mask
}
