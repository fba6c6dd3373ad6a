package layout

import (
	"image"
	"image/draw"

	"inkystocks/internal/chart"
	"inkystocks/internal/model"
)

// pHAT geometry.
const (
	PHATWidth  = 250
	PHATHeight = 122

	phatGraphWidth  = 185
	phatGraphHeight = 80
	phatInfoWidth   = 65
	phatCellHeight  = 40
	phatTitleMax    = 16
	phatMargin      = 6
)

// ComposeSingle lays out one symbol for the pHAT: title top left, chart
// below it, and a right-hand column with arrow, percentage and price.
func (c *Composer) ComposeSingle(snap *model.MarketSnapshot) (*Panel, error) {
	img := newCanvas(PHATWidth, PHATHeight)

	graph, err := c.renderChart(snap, phatGraphWidth, phatGraphHeight)
	if err != nil {
		return nil, err
	}
	draw.Draw(img, image.Rect(0, phatCellHeight, phatGraphWidth, phatCellHeight+phatGraphHeight),
		graph, image.Point{}, draw.Src)

	p := &Panel{
		Image:   img,
		Title:   FitTitle(snap.Name, snap.Symbol, phatTitleMax),
		Percent: FormatPercent(snap.FirstPrice, snap.LastPrice),
		Price:   FormatPrice(snap.LastPrice),
		IsUp:    snap.IsUp,
	}

	titleFace := c.Fonts.Fit(p.Title, 20, 12, phatGraphWidth-8)
	drawText(img, 8, 8, p.Title, titleFace, chart.Black)

	infoX := PHATWidth - phatInfoWidth

	// arrow cell
	const pad = 8
	size := min(phatInfoWidth-2*pad, phatCellHeight-2*pad)
	ax := infoX + phatInfoWidth - size - (pad + 2)
	ay := (phatCellHeight - size) / 2
	c.arrow(img, ax, ay, size, snap.IsUp)

	pctBox := image.Rect(infoX, phatCellHeight, PHATWidth, 2*phatCellHeight)
	pctFace := c.Fonts.Fit(p.Percent, 20, 10, phatInfoWidth-phatMargin)
	drawTextRight(img, pctBox, phatMargin, p.Percent, pctFace, chart.Black)

	priceBox := image.Rect(infoX, 2*phatCellHeight, PHATWidth, 3*phatCellHeight)
	priceFace := c.Fonts.Fit(p.Price, 16, 10, phatInfoWidth-phatMargin)
	drawTextRight(img, priceBox, phatMargin, p.Price, priceFace, chart.Black)

	return p, nil
}
