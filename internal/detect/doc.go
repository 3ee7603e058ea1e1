// Package detect finds candidate user-interface element regions in a
// screenshot image.
//
// Five independent generators each propose axis-aligned rectangles from the
// same raster, with no knowledge of each other:
//
//   - Multi-threshold edge detection: Canny at several sensitivity pairs,
//     contour analysis, convex-hull polygon approximation
//   - Morphological rectangularity: closing/opening at several kernel sizes,
//     connected components filtered by bounding-box fill ratio
//   - Adaptive thresholding: neighborhood-mean binarization for low-contrast
//     boundaries that global thresholds miss
//   - Color-range segmentation: HSV band masks for chromatically distinct
//     UI chrome
//   - Line intersections: Hough line segments paired into rectangles, the
//     only strategy reasoning about boundaries rather than filled regions
//
// The pooled candidates are deduplicated by greedy largest-first
// non-maximum suppression (pairwise IoU capped at the configured overlap
// threshold) and then filtered by UI-plausibility heuristics (minimum size,
// maximum size relative to the image, bounded aspect ratio).
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. Regions are
// (x, y, width, height) boxes entirely inside the image after pooling.
//
// # Determinism
//
// For a fixed raster and configuration the pipeline is fully deterministic:
// generators scan row-major, the pool is concatenated in fixed generator
// order, and deduplication uses a stable sort. Repeated runs produce
// identical region lists.
//
// # Performance
//
// The generators iterate over every pixel and the Hough transform searches a
// rho-theta parameter space, so large screenshots take proportionally longer.
// The generators are independent and run concurrently; their outputs are
// merged by concatenation.
package detect
