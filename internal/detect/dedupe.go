package detect

import "sort"

// Deduplicate resolves geometric overlap across a candidate pool using
// greedy largest-first non-maximum suppression.
//
// Candidates are stably sorted by descending area and accepted in that order
// if and only if their IoU with every already-accepted region stays at or
// below the overlap threshold; anything above it is discarded as a duplicate
// of a larger, already-kept region. Equal-area ties keep their pool order.
//
// The input slice is not modified. The output is ordered by descending area
// and every pair of output regions has IoU ≤ threshold.
func Deduplicate(pool []Region, threshold float64) []Region {
	if len(pool) == 0 {
		return nil
	}

	sorted := append([]Region(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area() > sorted[j].Area()
	})

	kept := make([]Region, 0, len(sorted))
	for _, candidate := range sorted {
		duplicate := false
		for _, existing := range kept {
			if candidate.IoU(existing) > threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}
