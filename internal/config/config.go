// Package config holds the detection pipeline's tunable parameters.
//
// All thresholds live in a single Config value that is passed explicitly to
// every generator and filter. Nothing in the pipeline reads package-level
// state, so tests can vary thresholds freely without process-wide effects.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CannyPair is a low/high hysteresis threshold pair for edge detection.
type CannyPair struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// HSVBand is a closed interval in HSV space. Hue is in degrees [0, 360),
// saturation and value are normalized to [0, 1].
type HSVBand struct {
	Name   string  `yaml:"name"`
	HueMin float64 `yaml:"hue_min"`
	HueMax float64 `yaml:"hue_max"`
	SatMin float64 `yaml:"sat_min"`
	SatMax float64 `yaml:"sat_max"`
	ValMin float64 `yaml:"val_min"`
	ValMax float64 `yaml:"val_max"`
}

// Config carries every empirically fixed constant used by the five candidate
// generators, the deduplicator and the plausibility filter.
type Config struct {
	// Multi-threshold edge generator.
	CannyPairs       []CannyPair `yaml:"canny_pairs"`
	EdgeBlurRadius   float64     `yaml:"edge_blur_radius"`
	EdgeMinArea      float64     `yaml:"edge_min_area"`
	EdgeMinVertices  int         `yaml:"edge_min_vertices"`
	EdgeMinDimension int         `yaml:"edge_min_dimension"`
	EdgeMaxAspect    float64     `yaml:"edge_max_aspect"`

	// Morphological rectangularity generator.
	MorphKernelSizes []int   `yaml:"morph_kernel_sizes"`
	MorphMinArea     int     `yaml:"morph_min_area"`
	MorphMinFill     float64 `yaml:"morph_min_fill"`

	// Adaptive threshold generator.
	AdaptiveWindow       int `yaml:"adaptive_window"`
	AdaptiveOffset       int `yaml:"adaptive_offset"`
	AdaptiveMinArea      int `yaml:"adaptive_min_area"`
	AdaptiveMinDimension int `yaml:"adaptive_min_dimension"`

	// Color-range segmentation generator.
	ColorBands   []HSVBand `yaml:"color_bands"`
	ColorMinArea int       `yaml:"color_min_area"`

	// Line-intersection generator.
	LineCannyLow       int `yaml:"line_canny_low"`
	LineCannyHigh      int `yaml:"line_canny_high"`
	HoughThreshold     int `yaml:"hough_threshold"`
	HoughMaxPeaks      int `yaml:"hough_max_peaks"`
	LineMinLength      int `yaml:"line_min_length"`
	LineMaxGap         int `yaml:"line_max_gap"`
	LineAngleTolerance int `yaml:"line_angle_tolerance"`
	CornerTolerance    int `yaml:"corner_tolerance"`
	LineMinDimension   int `yaml:"line_min_dimension"`

	// Connected-component analysis shared by the mask-based generators.
	MinComponentSize int `yaml:"min_component_size"`

	// Deduplication and plausibility filtering.
	OverlapThreshold float64 `yaml:"overlap_threshold"`
	FilterMinWidth   int     `yaml:"filter_min_width"`
	FilterMinHeight  int     `yaml:"filter_min_height"`
	FilterMaxScale   float64 `yaml:"filter_max_scale"`
	FilterMaxAspect  float64 `yaml:"filter_max_aspect"`

	// OCR language passed to Tesseract.
	OCRLanguage string `yaml:"ocr_language"`
}

// Default returns the standard configuration. The values reproduce the
// reference pipeline exactly; change them only if output parity with previous
// runs does not matter.
func Default() Config {
	return Config{
		CannyPairs:       []CannyPair{{30, 100}, {50, 150}, {70, 200}},
		EdgeBlurRadius:   2.0,
		EdgeMinArea:      500,
		EdgeMinVertices:  4,
		EdgeMinDimension: 30,
		EdgeMaxAspect:    10,

		MorphKernelSizes: []int{3, 5, 7},
		MorphMinArea:     1000,
		MorphMinFill:     0.7,

		AdaptiveWindow:       11,
		AdaptiveOffset:       2,
		AdaptiveMinArea:      500,
		AdaptiveMinDimension: 20,

		ColorBands: []HSVBand{
			{Name: "blue", HueMin: 200, HueMax: 260, SatMin: 50.0 / 255, SatMax: 1, ValMin: 50.0 / 255, ValMax: 1},
			{Name: "green", HueMin: 80, HueMax: 160, SatMin: 50.0 / 255, SatMax: 1, ValMin: 50.0 / 255, ValMax: 1},
			{Name: "red", HueMin: 0, HueMax: 40, SatMin: 50.0 / 255, SatMax: 1, ValMin: 50.0 / 255, ValMax: 1},
			{Name: "gray-white", HueMin: 0, HueMax: 360, SatMin: 0, SatMax: 30.0 / 255, ValMin: 200.0 / 255, ValMax: 1},
		},
		ColorMinArea: 1000,

		LineCannyLow:       50,
		LineCannyHigh:      150,
		HoughThreshold:     100,
		HoughMaxPeaks:      50,
		LineMinLength:      30,
		LineMaxGap:         10,
		LineAngleTolerance: 10,
		CornerTolerance:    20,
		LineMinDimension:   30,

		MinComponentSize: 10,

		OverlapThreshold: 0.5,
		FilterMinWidth:   50,
		FilterMinHeight:  30,
		FilterMaxScale:   0.9,
		FilterMaxAspect:  15,

		OCRLanguage: "eng",
	}
}

// Load reads a YAML config file and applies it on top of the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
