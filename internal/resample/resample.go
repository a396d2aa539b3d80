// Package resample scales icons between densities.
package resample

import (
	"image"

	"golang.org/x/image/draw"
)

// Square scales img to an edge×edge NRGBA image using the Catmull-Rom
// kernel. Interpolation happens in premultiplied-alpha space, so the color
// bytes of fully transparent source pixels cannot bleed into opaque
// neighbors.
func Square(img image.Image, edge int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, edge, edge))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
