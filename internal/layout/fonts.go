package layout

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Fonts hands out faces of one TrueType font at arbitrary pixel sizes.
type Fonts struct {
	src   *opentype.Font
	faces map[float64]font.Face
}

// LoadFonts parses the TrueType file at path. An empty path selects the
// embedded Go Bold font. The returned error is non-nil when path was given
// but could not be used; the Fonts value is still usable then.
func LoadFonts(path string) (*Fonts, error) {
	var loadErr error
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var f *opentype.Font
			if f, err = opentype.Parse(data); err == nil {
				return newFonts(f), nil
			}
		}
		loadErr = fmt.Errorf("load font %s: %w", path, err)
	}
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return newFonts(f), loadErr
}

func newFonts(f *opentype.Font) *Fonts {
	return &Fonts{src: f, faces: make(map[float64]font.Face)}
}

// Face returns the face for a pixel size.
func (f *Fonts) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only fails for invalid sizes, which are constants here.
		panic(fmt.Sprintf("layout: new face size %v: %v", size, err))
	}
	f.faces[size] = face
	return face
}

// Fit returns the largest face between maxSize and minSize (1px steps) that
// renders s within width pixels. The minSize face is returned when none fit.
func (f *Fonts) Fit(s string, maxSize, minSize float64, width int) font.Face {
	for size := maxSize; size > minSize; size-- {
		face := f.Face(size)
		if textWidth(face, s) <= width {
			return face
		}
	}
	return f.Face(minSize)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func textHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *image.RGBA, x, y int, s string, face font.Face, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawTextRight right-aligns s inside the box, centred vertically.
func drawTextRight(dst *image.RGBA, box image.Rectangle, margin int, s string, face font.Face, c color.Color) {
	x := box.Max.X - margin - textWidth(face, s)
	y := box.Min.Y + (box.Dy()-textHeight(face))/2
	drawText(dst, x, y, s, face, c)
}
