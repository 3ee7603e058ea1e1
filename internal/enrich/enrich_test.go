package enrich

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/screenlens/ui-detect/internal/detect"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Text(img image.Image) (string, error) {
	return s.text, s.err
}

func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEnrichAll_LabelsInOrder(t *testing.T) {
	img := solidImage(300, 200, color.White)
	regions := []detect.Region{
		{X: 10, Y: 10, Width: 50, Height: 40},
		{X: 100, Y: 10, Width: 60, Height: 40},
		{X: 200, Y: 10, Width: 50, Height: 50},
	}

	got := New(stubExtractor{text: "ok"}).EnrichAll(img, regions)
	if len(got) != 3 {
		t.Fatalf("expected 3 labeled regions, got %d", len(got))
	}

	want := []string{"UI1", "UI2", "UI3"}
	for i, lr := range got {
		if lr.Label != want[i] {
			t.Errorf("position %d: label %q, want %q", i, lr.Label, want[i])
		}
		if lr.X != regions[i].X || lr.Width != regions[i].Width {
			t.Errorf("position %d: geometry %+v does not match input %+v", i, lr, regions[i])
		}
		if lr.Text != "ok" {
			t.Errorf("position %d: text %q, want %q", i, lr.Text, "ok")
		}
	}
}

func TestEnrichAll_ColorFingerprint(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{R: 30, G: 20, B: 10, A: 255})
	regions := []detect.Region{{X: 10, Y: 10, Width: 40, Height: 40}}

	got := New(nil).EnrichAll(img, regions)
	if len(got) != 1 {
		t.Fatalf("expected 1 labeled region, got %d", len(got))
	}

	want := [3]float64{10, 20, 30} // blue-green-red
	if got[0].ColorFingerprint.AvgColorBGR != want {
		t.Errorf("fingerprint: got %v, want %v", got[0].ColorFingerprint.AvgColorBGR, want)
	}
}

func TestEnrichAll_ExtractorFailureYieldsEmptyText(t *testing.T) {
	img := solidImage(100, 100, color.White)
	regions := []detect.Region{{X: 0, Y: 0, Width: 60, Height: 40}}

	got := New(stubExtractor{err: errors.New("engine unavailable")}).EnrichAll(img, regions)
	if len(got) != 1 {
		t.Fatalf("expected 1 labeled region, got %d", len(got))
	}
	if got[0].Text != "" {
		t.Errorf("failed extraction should yield empty text, got %q", got[0].Text)
	}
	if got[0].Label != "UI1" {
		t.Errorf("label should survive extraction failure, got %q", got[0].Label)
	}
}

func TestEnrichAll_NilExtractor(t *testing.T) {
	img := solidImage(100, 100, color.White)
	regions := []detect.Region{{X: 0, Y: 0, Width: 60, Height: 40}}

	got := New(nil).EnrichAll(img, regions)
	if len(got) != 1 || got[0].Text != "" {
		t.Errorf("nil extractor should yield empty text, got %+v", got)
	}
}

func TestEnrichAll_NoRegions(t *testing.T) {
	img := solidImage(50, 50, color.White)

	got := New(nil).EnrichAll(img, nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}
