// Package layout composes charts and price text into full-screen bitmaps for
// the pHAT (one symbol) and wHAT (up to three symbols) panels.
package layout

import (
	"fmt"
	"image"
	"image/draw"

	"inkystocks/internal/chart"
	"inkystocks/internal/model"
)

// Options are read-only rendering settings shared by every panel of a run.
type Options struct {
	ThreeColor bool
}

// Panel is one composed symbol: the bitmap plus the text placed on it.
type Panel struct {
	Image   *image.RGBA
	Title   string
	Percent string
	Price   string
	IsUp    bool
}

// Composer lays out snapshots.
type Composer struct {
	Opts  Options
	Fonts *Fonts
}

// NewComposer creates a new Composer.
func NewComposer(opts Options, fonts *Fonts) *Composer {
	return &Composer{Opts: opts, Fonts: fonts}
}

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(chart.White), image.Point{}, draw.Src)
	return img
}

func (c *Composer) arrow(dst *image.RGBA, x, y, size int, up bool) {
	col := chart.Black
	if !up && c.Opts.ThreeColor {
		col = chart.Red
	}
	fillPolygon(dst, arrowPoints(x, y, size, up), col)
}

func (c *Composer) renderChart(snap *model.MarketSnapshot, w, h int) (*image.RGBA, error) {
	img, err := chart.Render(snap.Prices(), snap.SplitIndex, w, h, c.Opts.ThreeColor)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", snap.Symbol, err)
	}
	return img, nil
}
