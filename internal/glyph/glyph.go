// Package glyph draws the notification glyphs procedurally. Shapes are built
// as small SVG documents and rasterized, so a glyph rendered at 96 px is as
// crisp as one rendered at 24 px.
package glyph

import (
	"bytes"
	"fmt"
	"image"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const fillWhite = "fill:#ffffff"

// Cigarette draws a horizontal cigarette (body plus filter) on a transparent
// size×size canvas. Proportions: body 60% of the width and 20% tall,
// centered vertically; filter 15% of the width attached to the body's end.
func Cigarette(size int) (*image.NRGBA, error) {
	bodyW := int(float64(size) * 0.6)
	bodyH := int(float64(size) * 0.2)
	bodyX := int(float64(size) * 0.1)
	bodyY := (size - bodyH) / 2
	filterW := int(float64(size) * 0.15)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, viewBox(size))
	canvas.Rect(bodyX, bodyY, bodyW, bodyH, fillWhite)
	canvas.Rect(bodyX+bodyW, bodyY, filterW, bodyH, fillWhite)
	canvas.End()

	return rasterize(buf.Bytes(), size)
}

// Leaf draws a leaf on a transparent size×size canvas: an ellipse body, a
// pointed tip overlaid as a triangle, and a vertical center vein.
func Leaf(size int) (*image.NRGBA, error) {
	cx := size / 2
	top := int(float64(size) * 0.2)
	bottom := int(float64(size) * 0.8)
	midWidth := int(float64(size) * 0.5)
	left := cx - midWidth/2
	right := cx + midWidth/2

	veinW := size / 24
	if veinW < 1 {
		veinW = 1
	}
	veinInset := int(float64(size) * 0.05)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, viewBox(size))
	canvas.Ellipse((left+right)/2, (top+bottom)/2, (right-left)/2, (bottom-top)/2, fillWhite)
	canvas.Polygon(
		[]int{cx, left, right},
		[]int{int(float64(size) * 0.1), top, top},
		fillWhite,
	)
	canvas.Line(cx, top+veinInset, cx, bottom-veinInset,
		fmt.Sprintf("stroke:#ffffff;stroke-width:%d", veinW))
	canvas.End()

	return rasterize(buf.Bytes(), size)
}

func viewBox(size int) string {
	return fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size)
}

// rasterize renders an SVG document onto a transparent size×size NRGBA
// canvas.
func rasterize(doc []byte, size int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}
