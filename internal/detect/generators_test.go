package detect

import (
	"image/color"
	"testing"

	"github.com/screenlens/ui-detect/internal/config"
)

func TestColorRangeGenerator_BluePanel(t *testing.T) {
	img := createTestImage(200, 200, color.Black)
	fillRect(img, 20, 20, 60, 40, color.RGBA{0, 0, 255, 255})

	src := NewSource(img)
	regions := colorRangeGenerator{}.Propose(src, config.Default())

	if len(regions) != 1 {
		t.Fatalf("expected exactly 1 region for the blue panel, got %d: %+v", len(regions), regions)
	}
	want := Region{X: 20, Y: 20, Width: 60, Height: 40}
	if regions[0] != want {
		t.Errorf("got %+v, want %+v", regions[0], want)
	}
}

func TestColorRangeGenerator_IgnoresSmallPatches(t *testing.T) {
	img := createTestImage(200, 200, color.Black)
	fillRect(img, 20, 20, 30, 30, color.RGBA{0, 0, 255, 255}) // 900 px < minimum area

	src := NewSource(img)
	regions := colorRangeGenerator{}.Propose(src, config.Default())

	if len(regions) != 0 {
		t.Errorf("patch below the area threshold should be ignored, got %+v", regions)
	}
}

func TestColorRangeGenerator_GrayWhiteBand(t *testing.T) {
	img := createTestImage(200, 200, color.Black)
	fillRect(img, 50, 50, 80, 60, color.White)

	src := NewSource(img)
	regions := colorRangeGenerator{}.Propose(src, config.Default())

	if len(regions) != 1 {
		t.Fatalf("expected the white panel in the gray/white band, got %+v", regions)
	}
	want := Region{X: 50, Y: 50, Width: 80, Height: 60}
	if regions[0] != want {
		t.Errorf("got %+v, want %+v", regions[0], want)
	}
}

func TestMorphGenerator_FilledRectangle(t *testing.T) {
	img := createTestImage(200, 200, color.Black)
	fillRect(img, 20, 20, 60, 40, color.White)

	src := NewSource(img)
	regions := morphGenerator{}.Propose(src, config.Default())

	if len(regions) == 0 {
		t.Fatal("expected the filled rectangle to be proposed")
	}
	// Morphology runs at three kernel sizes; each should roughly recover
	// the same rectangle.
	want := Region{X: 20, Y: 20, Width: 60, Height: 40}
	for _, r := range regions {
		if r.IoU(want) < 0.8 {
			t.Errorf("region %+v far from expected %+v", r, want)
		}
	}
}

func TestMorphGenerator_BlackImage(t *testing.T) {
	img := createTestImage(100, 100, color.Black)

	src := NewSource(img)
	regions := morphGenerator{}.Propose(src, config.Default())
	if len(regions) != 0 {
		t.Errorf("black image should propose nothing, got %+v", regions)
	}
}

func TestAdaptiveThreshold_DarkPixelInBrightField(t *testing.T) {
	plane := make([][]float64, 30)
	for y := range plane {
		plane[y] = make([]float64, 30)
		for x := range plane[y] {
			plane[y][x] = 1.0
		}
	}
	plane[15][15] = 0.0

	mask := adaptiveThreshold(plane, 11, 2)

	if mask[15][15] {
		t.Error("dark pixel in a bright neighborhood should be background")
	}
	if !mask[0][0] || !mask[29][29] {
		t.Error("bright pixels should be foreground")
	}
}

func TestAdaptiveThreshold_UniformPlane(t *testing.T) {
	plane := make([][]float64, 20)
	for y := range plane {
		plane[y] = make([]float64, 20)
		for x := range plane[y] {
			plane[y][x] = 0.5
		}
	}

	mask := adaptiveThreshold(plane, 11, 2)

	// Every pixel equals its neighborhood mean, so the offset keeps all of
	// them foreground.
	for y := range mask {
		for x := range mask[y] {
			if !mask[y][x] {
				t.Fatalf("uniform plane pixel (%d,%d) should be foreground", x, y)
			}
		}
	}
}

func TestEdgeGenerator_OutlinedBox(t *testing.T) {
	img := createTestImage(200, 200, color.White)
	drawRectOutline(img, 40, 40, 100, 80, 3, color.Black)

	src := NewSource(img)
	regions := edgeGenerator{}.Propose(src, config.Default())

	if len(regions) == 0 {
		t.Fatal("expected the outlined box to be proposed")
	}

	want := Region{X: 40, Y: 40, Width: 100, Height: 80}
	found := false
	for _, r := range regions {
		if r.IoU(want) > 0.7 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no proposal close to %+v, got %+v", want, regions)
	}
}

func TestEdgeGenerator_UniformImage(t *testing.T) {
	img := createTestImage(100, 100, color.White)

	src := NewSource(img)
	regions := edgeGenerator{}.Propose(src, config.Default())
	if len(regions) != 0 {
		t.Errorf("uniform image should propose nothing, got %+v", regions)
	}
}
