package detect

import (
	"github.com/screenlens/ui-detect/internal/config"
	"github.com/screenlens/ui-detect/internal/imaging"
)

// colorRangeGenerator segments the image into predefined HSV color bands and
// proposes each band's connected components as candidate regions.
//
// This catches colored UI chrome (buttons, highlighted panels) that is
// geometrically unremarkable but chromatically distinct.
type colorRangeGenerator struct{}

func (colorRangeGenerator) Name() string { return "color-range" }

func (colorRangeGenerator) Propose(src *Source, cfg config.Config) []Region {
	bounds := src.Img.Bounds()

	// Convert once; every band reads the same HSV planes.
	hue := make([][]float64, src.Height)
	sat := make([][]float64, src.Height)
	val := make([][]float64, src.Height)
	for y := 0; y < src.Height; y++ {
		hue[y] = make([]float64, src.Width)
		sat[y] = make([]float64, src.Width)
		val[y] = make([]float64, src.Width)
		for x := 0; x < src.Width; x++ {
			r, g, b, _ := src.Img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			h, s, v := imaging.HSV(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			hue[y][x] = h
			sat[y][x] = s
			val[y][x] = v
		}
	}

	var regions []Region
	mask := make([][]bool, src.Height)
	for y := range mask {
		mask[y] = make([]bool, src.Width)
	}

	for _, band := range cfg.ColorBands {
		for y := 0; y < src.Height; y++ {
			for x := 0; x < src.Width; x++ {
				mask[y][x] = hue[y][x] >= band.HueMin && hue[y][x] <= band.HueMax &&
					sat[y][x] >= band.SatMin && sat[y][x] <= band.SatMax &&
					val[y][x] >= band.ValMin && val[y][x] <= band.ValMax
			}
		}

		for _, comp := range findComponents(mask, cfg.MinComponentSize) {
			if len(comp.pixels) <= cfg.ColorMinArea {
				continue
			}
			regions = append(regions, comp.bounds())
		}
	}
	return regions
}
