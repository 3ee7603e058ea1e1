package detect

import (
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/screenlens/ui-detect/internal/config"
)

// Detect runs the full detection pipeline over one image: all five
// generators (concurrently, read-only over the shared Source), candidate
// pooling, greedy IoU deduplication, and plausibility filtering.
//
// All generators run unconditionally; an empty candidate set from any of
// them is a normal, silent outcome. The returned regions are entirely inside
// the image, pairwise IoU-bounded by cfg.OverlapThreshold, and ordered by
// descending area.
func Detect(img image.Image, cfg config.Config) []Region {
	src := NewSource(img)
	pool := Pool(src, cfg)
	deduped := Deduplicate(pool, cfg.OverlapThreshold)
	return FilterPlausible(deduped, src.Width, src.Height, cfg)
}

// Pool runs every generator and concatenates their candidates in fixed
// generator order, clamping each region to the image bounds and dropping
// anything empty after clamping.
//
// Generators run in parallel but write to indexed slots, so the pool order
// (and with it the deduplicator's tie-breaking) is deterministic.
func Pool(src *Source, cfg config.Config) []Region {
	generators := Generators()
	proposals := make([][]Region, len(generators))

	var g errgroup.Group
	for i, gen := range generators {
		i, gen := i, gen
		g.Go(func() error {
			proposals[i] = gen.Propose(src, cfg)
			return nil
		})
	}
	// Generators report no errors; Wait only synchronizes.
	_ = g.Wait()

	var pool []Region
	for _, candidates := range proposals {
		for _, r := range candidates {
			r = r.clamp(src.Width, src.Height)
			if r.Width > 0 && r.Height > 0 {
				pool = append(pool, r)
			}
		}
	}
	return pool
}
