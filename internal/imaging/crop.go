package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropRect extracts a rectangular region from an image.
//
// The rectangle is clamped to the image bounds before cropping, so callers
// may pass boxes that extend past the edges. The returned image has its own
// pixel data; the source is never modified.
func CropRect(img image.Image, rect image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect.Intersect(img.Bounds()))
}
