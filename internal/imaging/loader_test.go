package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, color.RGBA{100, 150, 200, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	writeTestPNG(t, path)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected decode error for non-image data")
	}
}

func TestPlane(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(2, 1, color.Black)

	plane := Plane(img)
	if len(plane) != 3 || len(plane[0]) != 4 {
		t.Fatalf("plane shape: got %dx%d, want 4x3", len(plane[0]), len(plane))
	}
	if plane[1][2] != 0 {
		t.Errorf("black pixel: got %f, want 0", plane[1][2])
	}
	if plane[0][0] < 0.99 {
		t.Errorf("white pixel: got %f, want ~1.0", plane[0][0])
	}
}

func TestAnnotatedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"screenshot.png", "screenshot_annotated.png"},
		{"/tmp/shots/app.png", "/tmp/shots/app_annotated.png"},
		{"capture.jpg", "capture_annotated.jpg"},
		{"capture", "capture_annotated.png"},
	}
	for _, tt := range tests {
		if got := AnnotatedPath(tt.in); got != tt.want {
			t.Errorf("AnnotatedPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
