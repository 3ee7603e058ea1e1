package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Palette is the fixed outline color cycle for annotated regions:
// green, blue, red, cyan, magenta.
var Palette = []color.RGBA{
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 0, 0, 255},
	{0, 255, 255, 255},
	{255, 0, 255, 255},
}

// Box is a rectangle with a label, ready to be drawn onto an annotated image.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
	Label  string
}

const outlineThickness = 2

// Annotate draws labeled rectangle outlines over a copy of an image.
//
// Each box gets a 2px outline with the color cycling through Palette by box
// index, and its label rendered just above the top-left corner. The source
// image is not modified.
func Annotate(img image.Image, boxes []Box) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	for i, box := range boxes {
		col := Palette[i%len(Palette)]
		drawOutline(out, box, col)
		drawLabel(out, box.Label, box.X, box.Y-4, col)
	}
	return out
}

// SaveAnnotated writes an annotated image as PNG.
func SaveAnnotated(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create annotated image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode annotated image: %w", err)
	}
	return nil
}

func drawOutline(dst *image.RGBA, box Box, col color.RGBA) {
	for t := 0; t < outlineThickness; t++ {
		x1 := box.X + t
		y1 := box.Y + t
		x2 := box.X + box.Width - 1 - t
		y2 := box.Y + box.Height - 1 - t
		if x1 > x2 || y1 > y2 {
			return
		}
		for x := x1; x <= x2; x++ {
			setIfInside(dst, x, y1, col)
			setIfInside(dst, x, y2, col)
		}
		for y := y1; y <= y2; y++ {
			setIfInside(dst, x1, y, col)
			setIfInside(dst, x2, y, col)
		}
	}
}

func drawLabel(dst *image.RGBA, label string, x, y int, col color.RGBA) {
	if label == "" {
		return
	}
	// Keep the label inside the image when the box touches the top edge.
	if y < basicfont.Face7x13.Ascent {
		y = basicfont.Face7x13.Ascent
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

func setIfInside(dst *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, col)
	}
}
