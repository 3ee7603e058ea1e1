// Package imaging provides the raster glue around the detection pipeline.
//
// This package handles the routine image work the detectors consume and
// produce for: decoding images from disk, extracting grayscale luminance
// planes, Canny edge detection, per-region color statistics, cropping, and
// rendering the annotated output image.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Luminance planes and edge masks are indexed [y][x] and always start at
// (0, 0) regardless of the source image's bounds offset.
//
// # Thread Safety
//
// All operations are stateless and read-only over their inputs; they can be
// called concurrently on the same image.
package imaging
