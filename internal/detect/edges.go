package detect

import (
	"github.com/anthonynsimon/bild/blur"

	"github.com/screenlens/ui-detect/internal/config"
	"github.com/screenlens/ui-detect/internal/imaging"
)

// edgeGenerator proposes regions from contours found by Canny edge detection
// at several sensitivity threshold pairs.
//
// Running multiple pairs over the same blurred grayscale intentionally
// produces redundant candidates; the deduplicator resolves the overlap, not
// this generator. A contour is accepted when its convex-hull polygon has
// enough vertices and area and its bounding box passes the size and aspect
// limits.
type edgeGenerator struct{}

func (edgeGenerator) Name() string { return "multi-threshold-edges" }

func (edgeGenerator) Propose(src *Source, cfg config.Config) []Region {
	blurred := imaging.Plane(blur.Gaussian(src.Gray, cfg.EdgeBlurRadius))

	var regions []Region
	for _, pair := range cfg.CannyPairs {
		edges := imaging.Canny(blurred, pair.Low, pair.High)
		for _, comp := range findComponents(edges, cfg.MinComponentSize) {
			hull := convexHull(comp.pixels)
			if len(hull) < cfg.EdgeMinVertices {
				continue
			}
			if polygonArea(hull) <= cfg.EdgeMinArea {
				continue
			}

			r := comp.bounds()
			if r.Width <= cfg.EdgeMinDimension || r.Height <= cfg.EdgeMinDimension {
				continue
			}
			w := float64(r.Width)
			h := float64(r.Height)
			if w/h >= cfg.EdgeMaxAspect || h/w >= cfg.EdgeMaxAspect {
				continue
			}
			regions = append(regions, r)
		}
	}
	return regions
}
