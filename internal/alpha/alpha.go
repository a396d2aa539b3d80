// Package alpha derives new icons from the alpha channel of an existing one.
//
// Everything here works on *image.NRGBA. NRGBA stores straight (not
// premultiplied) alpha, so a transform can rewrite the alpha byte of a pixel
// without disturbing its color bytes, and vice versa.
package alpha

import (
	"image"
	"image/color"
	"image/draw"
)

// SnapThreshold is the lowest raw alpha value treated as opaque by Snap.
// It corresponds to 15% of full opacity (0.15 × 255 = 38.25, rounded up).
const SnapThreshold = 39

// BodyAlpha is the lowest raw alpha value Boost treats as solid body rather
// than smoke. Anti-aliased edges and smoke wisps sit below it.
const BodyAlpha = 240

// ToNRGBA returns img as *image.NRGBA, converting if necessary. The result
// always has its origin at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Plane extracts the alpha channel of img as a grayscale mask.
func Plane(img *image.NRGBA) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := img.PixOffset(b.Min.X, y)
		di := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.Pix[di] = img.Pix[si+3]
			si += 4
			di++
		}
	}
	return mask
}

// Silhouette returns a flat-fill copy of img shaped by its alpha channel:
// every pixel with alpha above zero gets the fill color, every fully
// transparent pixel gets zero color bytes. The output alpha plane equals the
// input alpha plane exactly, so anti-aliased edges survive.
func Silhouette(img *image.NRGBA, fill color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			a := img.Pix[si+3]
			if a > 0 {
				out.Pix[di+0] = fill.R
				out.Pix[di+1] = fill.G
				out.Pix[di+2] = fill.B
			}
			out.Pix[di+3] = a
			si += 4
			di += 4
		}
	}
	return out
}

// Snap binarizes the alpha channel: alpha ≥ SnapThreshold becomes 255,
// anything below becomes 0. No intermediate value survives, which turns
// anti-aliased edges into hard ones. Color bytes are copied unchanged.
func Snap(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+0] = img.Pix[si+0]
			out.Pix[di+1] = img.Pix[si+1]
			out.Pix[di+2] = img.Pix[si+2]
			if img.Pix[si+3] >= SnapThreshold {
				out.Pix[di+3] = 255
			} else {
				out.Pix[di+3] = 0
			}
			si += 4
			di += 4
		}
	}
	return out
}

// Boost multiplies the alpha of every smoke pixel (alpha < BodyAlpha) by
// factor, clamped at 255. Body pixels (alpha ≥ BodyAlpha) and all color
// bytes are left untouched. The product is truncated, not rounded.
func Boost(img *image.NRGBA, factor float64) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+0] = img.Pix[si+0]
			out.Pix[di+1] = img.Pix[si+1]
			out.Pix[di+2] = img.Pix[si+2]
			a := img.Pix[si+3]
			if a < BodyAlpha {
				// Clamp both ends: float→uint8 conversion outside
				// [0, 255] is not defined.
				v := float64(a) * factor
				if v > 255 {
					v = 255
				}
				if v < 0 {
					v = 0
				}
				a = uint8(v)
			}
			out.Pix[di+3] = a
			si += 4
			di += 4
		}
	}
	return out
}
