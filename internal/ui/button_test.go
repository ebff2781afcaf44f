package ui

import (
	"image"
	"testing"

	"gosnake/internal/core"
)

func TestRestartButtonLayout(t *testing.T) {
	r := RestartButton(core.Size{W: 1300, H: 750})
	want := image.Rect(500, 400, 800, 500)
	if r != want {
		t.Fatalf("button = %v, expected %v", r, want)
	}

	cases := []struct {
		x, y int
		hit  bool
	}{
		{650, 450, true},
		{500, 400, true},
		{799, 499, true},
		{800, 450, false},
		{650, 399, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		if got := pointInRect(tc.x, tc.y, r); got != tc.hit {
			t.Fatalf("pointInRect(%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.hit)
		}
	}
}

func TestBoldFaceCentering(t *testing.T) {
	face := boldFace(40)
	if face == nil {
		t.Fatal("boldFace returned nil")
	}
	if again := boldFace(40); again == nil {
		t.Fatal("second boldFace call returned nil")
	}
	x := centeredX(face, "Score: 10", 1300)
	if x <= 0 || x >= 650 {
		t.Fatalf("centeredX = %d, expected inside the left half", x)
	}
	if wide := centeredX(face, "Score: 1000000", 1300); wide >= x {
		t.Fatalf("longer text should start further left: %d >= %d", wide, x)
	}
}
