package alpha

import (
	"image"
	"image/color"
	"testing"
)

// gradient returns a 16×16 image whose alpha sweeps 0..255 and whose color
// bytes vary per pixel, so transforms that touch the wrong bytes show up.
func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(x * 16)
			img.Pix[i+1] = uint8(y * 16)
			img.Pix[i+2] = uint8((x + y) * 8)
			img.Pix[i+3] = uint8(y*16 + x)
		}
	}
	return img
}

func TestSnapBoundary(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Pix[3] = 38
	img.Pix[7] = 39

	out := Snap(img)
	if got := out.Pix[3]; got != 0 {
		t.Errorf("alpha 38 snapped to %d, want 0", got)
	}
	if got := out.Pix[7]; got != 255 {
		t.Errorf("alpha 39 snapped to %d, want 255", got)
	}
}

func TestSnapBinarizes(t *testing.T) {
	out := Snap(gradient())
	for i := 3; i < len(out.Pix); i += 4 {
		if a := out.Pix[i]; a != 0 && a != 255 {
			t.Fatalf("pixel %d: alpha = %d, want 0 or 255", i/4, a)
		}
	}
}

func TestSnapKeepsColor(t *testing.T) {
	src := gradient()
	out := Snap(src)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			if out.Pix[i+c] != src.Pix[i+c] {
				t.Fatalf("pixel %d channel %d changed: %d -> %d",
					i/4, c, src.Pix[i+c], out.Pix[i+c])
			}
		}
	}
}

func TestSilhouettePreservesAlphaPlane(t *testing.T) {
	src := gradient()
	out := Silhouette(src, color.NRGBA{255, 255, 255, 255})
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d: alpha changed %d -> %d", i/4, src.Pix[i], out.Pix[i])
		}
	}
}

func TestSilhouetteUniformFill(t *testing.T) {
	src := gradient()
	out := Silhouette(src, color.NRGBA{0, 0, 0, 255})
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b, a := out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]
		if a > 0 && (r != 0 || g != 0 || b != 0) {
			t.Fatalf("pixel %d: fill = (%d,%d,%d), want black", i/4, r, g, b)
		}
		if a == 0 && (r != 0 || g != 0 || b != 0) {
			t.Fatalf("pixel %d: transparent pixel carries color (%d,%d,%d)", i/4, r, g, b)
		}
	}
}

func TestBoostLeavesBodyAlone(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Pix[3] = 240
	img.Pix[7] = 250
	img.Pix[11] = 255

	out := Boost(img, 2.0)
	for i, want := range []uint8{240, 250, 255} {
		if got := out.Pix[i*4+3]; got != want {
			t.Errorf("body pixel %d: alpha = %d, want %d unchanged", i, got, want)
		}
	}
}

func TestBoostMultipliesSmoke(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.Pix[3] = 100  // 100 × 1.5 = 150
	img.Pix[7] = 101  // 101 × 1.5 = 151.5, truncated to 151
	img.Pix[11] = 200 // 200 × 1.5 = 300, clamped to 255
	img.Pix[15] = 0   // stays 0

	out := Boost(img, 1.5)
	for i, want := range []uint8{150, 151, 255, 0} {
		if got := out.Pix[i*4+3]; got != want {
			t.Errorf("smoke pixel %d: alpha = %d, want %d", i, got, want)
		}
	}
}

func TestBoostNegativeFactorClampsToZero(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Pix[3] = 100 // smoke: clamped to 0
	img.Pix[7] = 250 // body: untouched

	out := Boost(img, -1.5)
	if got := out.Pix[3]; got != 0 {
		t.Errorf("smoke pixel: alpha = %d, want 0", got)
	}
	if got := out.Pix[7]; got != 250 {
		t.Errorf("body pixel: alpha = %d, want 250 unchanged", got)
	}
}

func TestBoostNeverTouchesColor(t *testing.T) {
	src := gradient()
	out := Boost(src, 2.5)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			if out.Pix[i+c] != src.Pix[i+c] {
				t.Fatalf("pixel %d channel %d changed: %d -> %d",
					i/4, c, src.Pix[i+c], out.Pix[i+c])
			}
		}
	}
}

func TestPlaneMatchesAlphaBytes(t *testing.T) {
	src := gradient()
	mask := Plane(src)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.Pix[src.PixOffset(x, y)+3]
			got := mask.Pix[mask.PixOffset(x, y)]
			if got != want {
				t.Fatalf("(%d,%d): mask = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestToNRGBAConvertsAndNormalizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 6, 6))
	src.SetRGBA(3, 3, color.RGBA{128, 0, 0, 128})

	out := ToNRGBA(src)
	if got := out.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want (0,0)-(4,4)", got)
	}
	// Premultiplied (128,0,0,128) is straight (255,0,0,128).
	i := out.PixOffset(1, 1)
	if out.Pix[i] != 255 || out.Pix[i+3] != 128 {
		t.Errorf("pixel = (%d,_,_,%d), want (255,_,_,128)", out.Pix[i], out.Pix[i+3])
	}
}

func TestToNRGBAPassthrough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if ToNRGBA(src) != src {
		t.Error("expected zero-origin NRGBA to pass through without copying")
	}
}
