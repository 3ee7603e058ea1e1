package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestMeanColor_Uniform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 20, B: 10, A: 255})
		}
	}

	got := MeanColor(img).BGR()
	want := [3]float64{10, 20, 30}
	if got != want {
		t.Errorf("BGR means: got %v, want %v", got, want)
	}
}

func TestMeanColor_Mixed(t *testing.T) {
	// Half black, half white: every channel averages to 127.5.
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)

	got := MeanColor(img).BGR()
	for i, v := range got {
		if math.Abs(v-127.5) > 0.01 {
			t.Errorf("channel %d: got %f, want 127.5", i, v)
		}
	}
}

func TestMeanColor_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if got := MeanColor(img).BGR(); got != [3]float64{} {
		t.Errorf("empty image means: got %v, want zeros", got)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{"pure red", 255, 0, 0, 0, 1, 1},
		{"pure green", 0, 255, 0, 120, 1, 1},
		{"pure blue", 0, 0, 255, 240, 1, 1},
		{"white", 255, 255, 255, 0, 0, 1},
		{"mid gray", 128, 128, 128, 0, 0, 128.0 / 255.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := HSV(tt.r, tt.g, tt.b)
			if math.Abs(h-tt.h) > 0.5 || math.Abs(s-tt.s) > 0.01 || math.Abs(v-tt.v) > 0.01 {
				t.Errorf("got h=%f s=%f v=%f, want h=%f s=%f v=%f", h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := round2(127.456); got != 127.46 {
		t.Errorf("round2(127.456): got %f", got)
	}
	if got := round2(10.004); got != 10.0 {
		t.Errorf("round2(10.004): got %f", got)
	}
}
