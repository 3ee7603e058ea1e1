package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// Load opens and decodes a raster image from disk.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Grayscale converts an image to its grayscale equivalent.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// Plane extracts a normalized luminance plane from an image.
//
// The result is indexed [y][x] with values in [0, 1], computed with the
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B). For an image that is
// already grayscale this reduces to the channel value itself.
func Plane(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r>>8) / 255.0
			gf := float64(g>>8) / 255.0
			bf := float64(b>>8) / 255.0
			plane[y][x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	return plane
}

// AnnotatedPath derives the output path for the annotated copy of an image.
//
// A ".png" suffix is replaced with "_annotated.png". Paths with other
// extensions get "_annotated" inserted before the extension so the original
// file is never overwritten.
func AnnotatedPath(path string) string {
	if strings.HasSuffix(path, ".png") {
		return strings.TrimSuffix(path, ".png") + "_annotated.png"
	}
	if idx := strings.LastIndex(path, "."); idx > 0 {
		return path[:idx] + "_annotated" + path[idx:]
	}
	return path + "_annotated.png"
}
