// Package enrich attaches labels, color fingerprints and recognized text to
// detected regions, producing the pipeline's primary output.
package enrich

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/screenlens/ui-detect/internal/detect"
	"github.com/screenlens/ui-detect/internal/imaging"
)

// TextExtractor recognizes text in a region crop.
//
// Implementations are best-effort: the enricher maps any error to an empty
// text field for that region only and never propagates it. A nil extractor
// is valid and yields empty text everywhere.
type TextExtractor interface {
	Text(img image.Image) (string, error)
}

// ColorFingerprint is the mean per-channel intensity over a region crop,
// used as a lightweight visual signature. Channels are ordered
// blue-green-red on the wire.
type ColorFingerprint struct {
	AvgColorBGR [3]float64 `json:"avg_color_bgr"`
}

// LabeledRegion is a detected region with its enrichment attached. The label
// is a stable ordinal identifier unique within one run; it carries no
// meaning across runs.
type LabeledRegion struct {
	X                int              `json:"x"`
	Y                int              `json:"y"`
	Width            int              `json:"width"`
	Height           int              `json:"height"`
	Label            string           `json:"label"`
	ColorFingerprint ColorFingerprint `json:"color_fingerprint"`
	Text             string           `json:"text"`
}

// Enricher annotates detected regions with labels, fingerprints and text.
type Enricher struct {
	extractor TextExtractor
}

// New returns an Enricher using the given text extractor.
func New(extractor TextExtractor) *Enricher {
	return &Enricher{extractor: extractor}
}

// EnrichAll enriches every region, assigning labels UI1..UIk in input order.
//
// Regions are independent, so enrichment runs concurrently; text extraction
// dominates the latency and a failed extraction for one region never affects
// the others. Results are returned in input order.
func (e *Enricher) EnrichAll(img image.Image, regions []detect.Region) []LabeledRegion {
	labeled := make([]LabeledRegion, len(regions))

	var g errgroup.Group
	for i, r := range regions {
		i, r := i, r
		g.Go(func() error {
			labeled[i] = e.enrich(img, r, i+1)
			return nil
		})
	}
	// Per-region failures are swallowed inside enrich; Wait only synchronizes.
	_ = g.Wait()

	return labeled
}

func (e *Enricher) enrich(img image.Image, r detect.Region, ordinal int) LabeledRegion {
	crop := imaging.CropRect(img, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height))

	labeled := LabeledRegion{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Label:  fmt.Sprintf("UI%d", ordinal),
		ColorFingerprint: ColorFingerprint{
			AvgColorBGR: imaging.MeanColor(crop).BGR(),
		},
	}

	if e.extractor != nil {
		if text, err := e.extractor.Text(crop); err == nil {
			labeled.Text = text
		}
	}
	return labeled
}
