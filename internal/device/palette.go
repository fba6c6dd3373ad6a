package device

import (
	"image"
	"image/color"
	"image/draw"

	"inkystocks/internal/chart"
)

// Palette returns the inks of the panel: white and black, plus red in
// three-colour mode.
func Palette(threeColor bool) color.Palette {
	p := color.Palette{chart.White, chart.Black}
	if threeColor {
		p = append(p, chart.Red)
	}
	return p
}

// Quantize maps every pixel to the nearest ink, without dithering.
func Quantize(img image.Image, threeColor bool) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, Palette(threeColor))
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
