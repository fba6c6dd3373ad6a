package layout

import (
	"image"
	"image/draw"

	"inkystocks/internal/chart"
	"inkystocks/internal/model"
)

// wHAT geometry.
const (
	WHATWidth  = 400
	WHATHeight = 300

	// MaxRows is the number of symbols the wHAT shows.
	MaxRows = 3

	whatRowHeight     = 99
	whatRowPadding    = 12
	whatContentHeight = whatRowHeight - 2*whatRowPadding
	whatGraphWidth    = 150
	whatGraphHeight   = whatContentHeight
	whatTitleHeight   = 26
	whatArrowSize     = 24
	whatTitleMax      = 18
	whatTextSize      = 20
)

// PlaceholderText replaces the figures of a symbol that could not be fetched.
const PlaceholderText = "data unavailable"

// ComposeMultiple stacks up to MaxRows symbols on the wHAT, one row each,
// separated by 1px dividers. A failed symbol gets a placeholder row.
func (c *Composer) ComposeMultiple(results []model.SymbolResult) (*image.RGBA, error) {
	if len(results) == 0 {
		return nil, model.RenderFailuref("no symbols to compose")
	}
	if len(results) > MaxRows {
		results = results[:MaxRows]
	}

	img := newCanvas(WHATWidth, WHATHeight)
	for i, r := range results {
		row, err := c.composeRow(r)
		if err != nil {
			return nil, err
		}
		y := i * (whatRowHeight + 1)
		draw.Draw(img, image.Rect(0, y, WHATWidth, y+whatRowHeight), row, image.Point{}, draw.Src)
		if i < len(results)-1 {
			for x := 0; x < WHATWidth; x++ {
				img.SetRGBA(x, y+whatRowHeight, chart.Black)
			}
		}
	}
	return img, nil
}

func (c *Composer) composeRow(r model.SymbolResult) (*image.RGBA, error) {
	row := newCanvas(WHATWidth, whatRowHeight)
	if !r.OK() {
		c.placeholderRow(row, r.Symbol)
		return row, nil
	}
	snap := r.Snapshot

	title := FitTitle(snap.Name, snap.Symbol, whatTitleMax)
	titleWidth := WHATWidth - whatGraphWidth - 3*whatRowPadding
	drawText(row, whatRowPadding, whatRowPadding, title, c.Fonts.Fit(title, 22, 12, titleWidth), chart.Black)

	infoY := whatRowPadding + whatTitleHeight + 4
	remaining := whatContentHeight - whatTitleHeight - 4
	c.arrow(row, whatRowPadding, infoY+(remaining-whatArrowSize)/2, whatArrowSize, snap.IsUp)

	face := c.Fonts.Face(whatTextSize)
	textX := whatRowPadding + whatArrowSize + 16
	textY := infoY + (remaining-whatTextSize)/2
	pct := FormatPercent(snap.FirstPrice, snap.LastPrice)
	drawText(row, textX, textY, pct, face, chart.Black)
	drawText(row, textX+textWidth(face, pct)+12, textY, FormatPrice(snap.LastPrice), face, chart.Black)

	graph, err := c.renderChart(snap, whatGraphWidth, whatGraphHeight)
	if err != nil {
		return nil, err
	}
	gx := WHATWidth - whatGraphWidth - whatRowPadding
	gy := whatRowPadding + (whatContentHeight-whatGraphHeight)/2
	draw.Draw(row, image.Rect(gx, gy, gx+whatGraphWidth, gy+whatGraphHeight), graph, image.Point{}, draw.Src)
	return row, nil
}

func (c *Composer) placeholderRow(row *image.RGBA, symbol string) {
	drawText(row, whatRowPadding, whatRowPadding, symbol, c.Fonts.Face(22), chart.Black)
	y := whatRowPadding + whatTitleHeight + 4 + (whatContentHeight-whatTitleHeight-4-whatTextSize)/2
	drawText(row, whatRowPadding, y, PlaceholderText, c.Fonts.Face(whatTextSize), chart.Black)
}
