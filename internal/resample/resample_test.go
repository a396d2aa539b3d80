package resample

import (
	"image"
	"testing"

	"github.com/Mavwarf/icongen/internal/alpha"
	"github.com/Mavwarf/icongen/internal/density"
)

func TestSquareExactEdges(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for _, d := range density.All {
		out := Square(src, d.Edge)
		if b := out.Bounds(); b.Dx() != d.Edge || b.Dy() != d.Edge {
			t.Errorf("%s: bounds = %v, want %dx%d", d.Name, b, d.Edge, d.Edge)
		}
	}
}

func TestSquareNoColorBleedFromTransparent(t *testing.T) {
	// Transparent canvas carrying loud color bytes around an opaque white
	// block. After scaling, opaque pixels must stay white: premultiplied
	// interpolation must ignore the hidden red.
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255 // red, alpha 0
	}
	for y := 3; y < 7; y++ {
		for x := 3; x < 7; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = 255
			src.Pix[i+1] = 255
			src.Pix[i+2] = 255
			src.Pix[i+3] = 255
		}
	}

	out := Square(src, 48)
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			i := out.PixOffset(x, y)
			r, g, b, a := out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]
			if a == 255 && (g < 250 || b < 250 || r < 250) {
				t.Fatalf("(%d,%d): opaque pixel tinted (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}
}

// End-to-end: a centered 4×4 opaque block in a 10×10 canvas, snapped and
// scaled to mdpi. The opaque region must scale proportionally and no opaque
// pixel may appear outside the block's dilated boundary (the Catmull-Rom
// kernel reaches 2 source pixels, 4.8 destination pixels at 24/10 scale).
func TestSnapThenSquareKeepsBlockShape(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 3; y < 7; y++ {
		for x := 3; x < 7; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = 255
			src.Pix[i+1] = 255
			src.Pix[i+2] = 255
			src.Pix[i+3] = 255
		}
	}

	snapped := alpha.Snap(src)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			a := snapped.Pix[snapped.PixOffset(x, y)+3]
			inBlock := x >= 3 && x < 7 && y >= 3 && y < 7
			if inBlock && a != 255 {
				t.Fatalf("(%d,%d): block pixel alpha = %d, want 255", x, y, a)
			}
			if !inBlock && a != 0 {
				t.Fatalf("(%d,%d): outside pixel alpha = %d, want 0", x, y, a)
			}
		}
	}

	out := Square(snapped, 24)
	if b := out.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("bounds = %v, want 24x24", b)
	}

	// Block spans source 3..7, i.e. destination 7.2..16.8; allow the kernel
	// support of 5 pixels on each side.
	const lo, hi = 2, 22
	foundOpaque := false
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			a := out.Pix[out.PixOffset(x, y)+3]
			if a >= 250 {
				foundOpaque = true
			}
			outside := x < lo || x >= hi || y < lo || y >= hi
			if outside && a > 0 {
				t.Fatalf("(%d,%d): alpha %d beyond dilated block boundary", x, y, a)
			}
		}
	}
	if !foundOpaque {
		t.Error("no fully opaque pixels survived scaling")
	}

	// The block center must stay solid.
	if a := out.Pix[out.PixOffset(12, 12)+3]; a < 250 {
		t.Errorf("center alpha = %d, want ~255", a)
	}
}
