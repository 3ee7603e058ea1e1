package detect

import (
	"image"

	"github.com/screenlens/ui-detect/internal/config"
	"github.com/screenlens/ui-detect/internal/imaging"
)

// Source bundles the views of the input raster the generators work from.
// It is built once per run and read-only afterwards, so all generators can
// share it concurrently.
type Source struct {
	// Img is the original decoded raster.
	Img image.Image

	// Gray is the grayscale view of Img.
	Gray *image.NRGBA

	// Plane is the normalized [0,1] luminance plane of Gray, indexed [y][x].
	Plane [][]float64

	// Width and Height are the raster dimensions in pixels.
	Width  int
	Height int
}

// NewSource prepares the shared views of an image for the generators.
func NewSource(img image.Image) *Source {
	gray := imaging.Grayscale(img)
	bounds := img.Bounds()
	return &Source{
		Img:    img,
		Gray:   gray,
		Plane:  imaging.Plane(gray),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// Generator proposes candidate regions from a raster given a configuration.
//
// Implementations are pure with respect to the Source: they read it without
// mutation and share no state with other generators. Proposed regions may
// extend past the image bounds; the pipeline clamps them before pooling.
type Generator interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Propose returns candidate regions. An empty result is a normal
	// outcome, not an error.
	Propose(src *Source, cfg config.Config) []Region
}

// Generators returns the five detection strategies in their fixed pipeline
// order. The order determines pool concatenation order and therefore the
// tie-breaking of equal-area candidates during deduplication.
func Generators() []Generator {
	return []Generator{
		edgeGenerator{},
		morphGenerator{},
		adaptiveGenerator{},
		colorRangeGenerator{},
		lineGenerator{},
	}
}
