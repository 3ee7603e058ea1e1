package imaging

import "testing"

func makePlane(width, height int, val float64) [][]float64 {
	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		for x := range plane[y] {
			plane[y][x] = val
		}
	}
	return plane
}

func TestCanny_VerticalStepEdge(t *testing.T) {
	plane := makePlane(50, 50, 0)
	for y := 0; y < 50; y++ {
		for x := 25; x < 50; x++ {
			plane[y][x] = 1.0
		}
	}

	edges := Canny(plane, 50, 150)

	// The step between columns 24 and 25 should produce edge pixels there.
	found := false
	for x := 23; x <= 26; x++ {
		if edges[25][x] {
			found = true
		}
	}
	if !found {
		t.Error("no edge pixel at the step boundary")
	}

	for x := 0; x < 20; x++ {
		if edges[25][x] {
			t.Errorf("spurious edge pixel at column %d", x)
		}
	}
}

func TestCanny_UniformPlane(t *testing.T) {
	edges := Canny(makePlane(40, 40, 0.5), 50, 150)
	for y := range edges {
		for x := range edges[y] {
			if edges[y][x] {
				t.Fatalf("uniform plane produced edge at (%d,%d)", x, y)
			}
		}
	}
}

func TestCanny_ThresholdsSuppressWeakGradient(t *testing.T) {
	// A shallow ramp whose gradient stays under the high threshold and has no
	// strong edge to attach to.
	plane := makePlane(50, 50, 0)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			plane[y][x] = float64(x) / 500.0
		}
	}

	edges := Canny(plane, 50, 150)
	for y := range edges {
		for x := range edges[y] {
			if edges[y][x] {
				t.Fatalf("weak gradient produced edge at (%d,%d)", x, y)
			}
		}
	}
}

func TestCanny_EmptyPlane(t *testing.T) {
	if edges := Canny(nil, 50, 150); edges != nil {
		t.Error("expected nil mask for empty plane")
	}
}
