package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/boombuler/barcode"
)

// barcodeQuietZone is the white margin around a linear code, in module
// widths. EAN and Code 128 readers need it to locate the symbol edges.
const barcodeQuietZone = 10

func renderBarcodePNG(bc barcode.Barcode, scale float64) (*Image, error) {
	moduleWidth := int(math.Round(2 * scale))
	if moduleWidth < 1 {
		moduleWidth = 1
	}
	height := int(math.Round(100 * scale))
	if height < 1 {
		height = 1
	}

	modules := bc.Bounds().Dx()
	scaled, err := barcode.Scale(bc, modules*moduleWidth, height)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}

	return compositePNG(scaled, barcodeQuietZone*moduleWidth)
}

// compositePNG centers src on a white canvas with the given margin on
// every side and encodes the result as PNG.
func compositePNG(src image.Image, margin int) (*Image, error) {
	b := src.Bounds()
	w := b.Dx() + 2*margin
	h := b.Dy() + 2*margin

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(margin, margin, margin+b.Dx(), margin+b.Dy()), src, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return &Image{PNG: buf.Bytes(), Width: w, Height: h}, nil
}
