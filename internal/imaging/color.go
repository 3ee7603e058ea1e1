package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ChannelMeans holds the mean intensity of each color channel over a region,
// in blue-green-red order to match the pipeline's wire format.
type ChannelMeans struct {
	B float64
	G float64
	R float64
}

// BGR returns the means as a blue-green-red slice, each component rounded to
// two decimal places.
func (m ChannelMeans) BGR() [3]float64 {
	return [3]float64{round2(m.B), round2(m.G), round2(m.R)}
}

// MeanColor computes the per-channel mean intensity over an image.
//
// Each channel mean is the arithmetic average of the 8-bit channel values of
// every pixel. An empty image yields all-zero means.
func MeanColor(img image.Image) ChannelMeans {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return ChannelMeans{}
	}

	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}

	n := float64(total)
	return ChannelMeans{B: sumB / n, G: sumG / n, R: sumR / n}
}

// HSV converts 8-bit RGB components to HSV.
//
// Returns hue in degrees [0, 360) and saturation/value in [0, 1].
func HSV(r, g, b uint8) (h, s, v float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return c.Hsv()
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
