package detect

// Region is an axis-aligned bounding box in pixel coordinates with a top-left
// origin. Width and Height are positive for any region that survives the
// pipeline; generators may propose boxes that extend past the image and are
// clamped before pooling.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width × Height in square pixels.
func (r Region) Area() int {
	return r.Width * r.Height
}

// IoU computes the intersection-over-union of two regions: the area of their
// intersection divided by the area of their union. Returns 0 when the regions
// do not overlap and 1 when they are identical.
func (r Region) IoU(other Region) float64 {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.X+r.Width, other.X+other.Width)
	bottom := min(r.Y+r.Height, other.Y+other.Height)

	if left >= right || top >= bottom {
		return 0
	}

	intersection := (right - left) * (bottom - top)
	union := r.Area() + other.Area() - intersection
	return float64(intersection) / float64(union)
}

// clamp constrains the region to an image of the given dimensions.
// The returned region may be empty (zero width or height); callers drop
// those before pooling.
func (r Region) clamp(width, height int) Region {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > width {
		r.Width = width - r.X
	}
	if r.Y+r.Height > height {
		r.Height = height - r.Y
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
