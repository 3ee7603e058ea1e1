package detect

import (
	"image"
	"sort"
)

// component is a connected group of foreground pixels in a binary mask,
// together with its bounding box extents.
type component struct {
	pixels                 []image.Point
	minX, minY, maxX, maxY int
}

// bounds returns the component's bounding box as a Region. Width and height
// are inclusive extents, matching the pixel count along each axis.
func (c component) bounds() Region {
	return Region{
		X:      c.minX,
		Y:      c.minY,
		Width:  c.maxX - c.minX + 1,
		Height: c.maxY - c.minY + 1,
	}
}

// findComponents groups foreground pixels of a binary mask into 8-connected
// components.
//
// The mask is scanned row-major and each component is grown by iterative
// flood fill, so the result order is deterministic for a given mask.
// Components with fewer than minSize pixels are discarded as noise
// (cfg.MinComponentSize in the pipeline).
func findComponents(mask [][]bool, minSize int) []component {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	var components []component
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			comp := floodFill(mask, visited, x, y, width, height)
			if len(comp.pixels) >= minSize {
				components = append(components, comp)
			}
		}
	}
	return components
}

// floodFill grows a component from a starting pixel using a stack-based
// (non-recursive) fill over 8-connected neighbors.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) component {
	comp := component{minX: startX, minY: startY, maxX: startX, maxY: startY}
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		comp.pixels = append(comp.pixels, p)
		if p.X < comp.minX {
			comp.minX = p.X
		}
		if p.X > comp.maxX {
			comp.maxX = p.X
		}
		if p.Y < comp.minY {
			comp.minY = p.Y
		}
		if p.Y > comp.maxY {
			comp.maxY = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return comp
}

// convexHull computes the convex hull of a point set using Andrew's monotone
// chain algorithm. The returned vertices are in counter-clockwise order.
// The hull serves as the polygon approximation of a contour.
func convexHull(points []image.Point) []image.Point {
	if len(points) < 3 {
		return append([]image.Point(nil), points...)
	}

	sorted := append([]image.Point(nil), points...)
	// Lexicographic sort by (X, Y).
	sortPoints(sorted)

	var lower []image.Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []image.Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// polygonArea computes the area of a simple polygon via the shoelace formula.
func polygonArea(vertices []image.Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	sum := 0
	for i := range vertices {
		j := (i + 1) % len(vertices)
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}

func cross(o, a, b image.Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func sortPoints(points []image.Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}
