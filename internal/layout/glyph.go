package layout

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// arrowPoints returns the triangle of a size x size arrow with its top-left
// corner at (x, y).
func arrowPoints(x, y, size int, up bool) []image.Point {
	if up {
		return []image.Point{
			{x + size/2, y},
			{x, y + size},
			{x + size, y + size},
		}
	}
	return []image.Point{
		{x, y},
		{x + size, y},
		{x + size/2, y + size},
	}
}

// fillPolygon fills pts with the even-odd rule, sampling pixel centres.
func fillPolygon(dst *image.RGBA, pts []image.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	for y := minY; y <= maxY; y++ {
		yc := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= yc && by > yc) || (by <= yc && ay > yc) {
				xs = append(xs, float64(a.X)+(yc-ay)/(by-ay)*float64(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i] - 0.5))
			to := int(math.Floor(xs[i+1] - 0.5))
			for x := from; x <= to; x++ {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}
