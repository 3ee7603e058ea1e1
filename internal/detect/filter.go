package detect

import "github.com/screenlens/ui-detect/internal/config"

// FilterPlausible drops regions that are implausible as UI elements: slivers
// below the minimum size, near-full-image boxes (false positives from outer
// page or window borders), and extreme aspect ratios the generators' looser
// per-method thresholds let through.
//
// The order of surviving regions is preserved.
func FilterPlausible(regions []Region, imgWidth, imgHeight int, cfg config.Config) []Region {
	kept := make([]Region, 0, len(regions))
	for _, r := range regions {
		if !plausible(r, imgWidth, imgHeight, cfg) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func plausible(r Region, imgWidth, imgHeight int, cfg config.Config) bool {
	if r.Width < cfg.FilterMinWidth || r.Height < cfg.FilterMinHeight {
		return false
	}
	if float64(r.Width) > cfg.FilterMaxScale*float64(imgWidth) {
		return false
	}
	if float64(r.Height) > cfg.FilterMaxScale*float64(imgHeight) {
		return false
	}
	w := float64(r.Width)
	h := float64(r.Height)
	return w/h <= cfg.FilterMaxAspect && h/w <= cfg.FilterMaxAspect
}
