package detect

import (
	"math"
	"sort"

	"github.com/screenlens/ui-detect/internal/config"
	"github.com/screenlens/ui-detect/internal/imaging"
)

// segment is a detected line segment with integer pixel endpoints.
type segment struct {
	x1, y1, x2, y2 int
}

// lineGenerator infers rectangles from pairs of perpendicular line segments.
//
// Edge pixels vote in a Hough rho-theta accumulator; peaks are traced back to
// collinear edge runs and split into segments at gaps. Segments are
// classified as horizontal or vertical, and every horizontal/vertical pair
// whose coordinates come within CornerTolerance of forming a corner is
// synthesized into a rectangle. This is the only strategy reasoning about
// boundaries rather than filled regions.
type lineGenerator struct{}

func (lineGenerator) Name() string { return "line-intersections" }

func (lineGenerator) Propose(src *Source, cfg config.Config) []Region {
	edges := imaging.Canny(src.Plane, cfg.LineCannyLow, cfg.LineCannyHigh)
	segments := houghSegments(edges, src.Width, src.Height, cfg)

	// Classify by orientation. Horizontal keeps (xmin, xmax, y),
	// vertical keeps (ymin, ymax, x).
	type hLine struct{ x1, x2, y int }
	type vLine struct{ y1, y2, x int }
	var horizontals []hLine
	var verticals []vLine

	for _, s := range segments {
		if absInt(s.y2-s.y1) < cfg.LineAngleTolerance {
			horizontals = append(horizontals, hLine{minInt(s.x1, s.x2), maxInt(s.x1, s.x2), s.y1})
		} else if absInt(s.x2-s.x1) < cfg.LineAngleTolerance {
			verticals = append(verticals, vLine{minInt(s.y1, s.y2), maxInt(s.y1, s.y2), s.x1})
		}
	}

	var regions []Region
	for _, h := range horizontals {
		for _, v := range verticals {
			if absInt(h.y-v.y1) >= cfg.CornerTolerance && absInt(h.y-v.y2) >= cfg.CornerTolerance {
				continue
			}
			width := h.x2 - h.x1
			height := v.y2 - v.y1
			if width <= cfg.LineMinDimension || height <= cfg.LineMinDimension {
				continue
			}
			regions = append(regions, Region{X: v.x, Y: h.y, Width: width, Height: height})
		}
	}
	return regions
}

// houghSegments finds line segments in a binary edge mask.
//
// A standard Hough transform votes for (rho, theta) lines; peaks above the
// configured vote threshold are traced back to their supporting edge pixels,
// which are ordered along the line and split into segments wherever the gap
// between consecutive pixels exceeds LineMaxGap. Segments shorter than
// LineMinLength are dropped.
func houghSegments(edges [][]bool, width, height int, cfg config.Config) []segment {
	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	if maxDist == 0 {
		return nil
	}
	const numAngles = 180

	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	// Vote in Hough space.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				angle := float64(theta) * math.Pi / 180.0
				rho := float64(x)*math.Cos(angle) + float64(y)*math.Sin(angle)
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	// Find peaks in the accumulator.
	type peak struct {
		rho   int
		theta int
		votes int
	}
	var peaks []peak

	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			if accumulator[rhoIdx][theta] < cfg.HoughThreshold {
				continue
			}
			// Check if local maximum.
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 {
						if accumulator[nr][nt] > accumulator[rhoIdx][theta] {
							isMax = false
						}
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{rho: rhoIdx - maxDist, theta: theta, votes: accumulator[rhoIdx][theta]})
			}
		}
	}

	// Cap tracing work at the strongest peaks.
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].votes > peaks[j].votes
	})
	if len(peaks) > cfg.HoughMaxPeaks {
		peaks = peaks[:cfg.HoughMaxPeaks]
	}

	var segments []segment
	for _, pk := range peaks {
		angle := float64(pk.theta) * math.Pi / 180.0
		cosA := math.Cos(angle)
		sinA := math.Sin(angle)
		rho := float64(pk.rho)

		// Collect edge pixels lying on this line, with their projection
		// along the line direction (-sin, cos).
		type linePoint struct {
			x, y int
			t    float64
		}
		var points []linePoint
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] {
					continue
				}
				dist := math.Abs(float64(x)*cosA + float64(y)*sinA - rho)
				if dist < 2.0 {
					points = append(points, linePoint{x: x, y: y, t: -float64(x)*sinA + float64(y)*cosA})
				}
			}
		}
		if len(points) == 0 {
			continue
		}

		sort.SliceStable(points, func(i, j int) bool {
			return points[i].t < points[j].t
		})

		// Split collinear runs into segments at gaps.
		start := 0
		for i := 1; i <= len(points); i++ {
			if i < len(points) && points[i].t-points[i-1].t <= float64(cfg.LineMaxGap) {
				continue
			}
			first := points[start]
			last := points[i-1]
			dx := float64(last.x - first.x)
			dy := float64(last.y - first.y)
			if math.Sqrt(dx*dx+dy*dy) >= float64(cfg.LineMinLength) {
				segments = append(segments, segment{x1: first.x, y1: first.y, x2: last.x, y2: last.y})
			}
			start = i
		}
	}
	return segments
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
