// Package chart draws aliased price line charts for e-paper panels.
package chart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"inkystocks/internal/model"
)

// Palette colours used by the renderer. Red only appears in three-colour mode.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)

const dashLen = 3

type scale struct {
	n, w, h  int
	min, max float64
}

func newScale(prices []float64, w, h int) scale {
	s := scale{n: len(prices), w: w, h: h, min: math.Inf(1), max: math.Inf(-1)}
	for _, p := range prices {
		s.min = math.Min(s.min, p)
		s.max = math.Max(s.max, p)
	}
	return s
}

func (s scale) x(i float64) float64 {
	if s.n == 1 {
		return float64(s.w-1) / 2
	}
	return i * float64(s.w-1) / float64(s.n-1)
}

func (s scale) y(p float64) float64 {
	if s.max == s.min {
		return float64(s.h-1) / 2
	}
	return float64(s.h-1) - (p-s.min)/(s.max-s.min)*float64(s.h-1)
}

func (s scale) point(i, p float64) image.Point {
	return image.Pt(int(math.Round(s.x(i))), int(math.Round(s.y(p))))
}

// Render draws prices as a 1px line chart of exactly width x height pixels.
// Samples from splitIndex on are the current session; with threeColor set,
// the parts of the session below its first price are drawn red. A dashed
// separator marks splitIndex when it is positive.
func Render(prices []float64, splitIndex, width, height int, threeColor bool) (*image.RGBA, error) {
	if len(prices) == 0 {
		return nil, model.RenderFailuref("empty price series")
	}
	if splitIndex < 0 || splitIndex >= len(prices) {
		return nil, model.RenderFailuref("split index %d out of range [0,%d)", splitIndex, len(prices))
	}
	if width <= 0 || height <= 0 {
		return nil, model.RenderFailuref("invalid size %dx%d", width, height)
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return nil, model.RenderFailuref("invalid price %v at %d", p, i)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(White), image.Point{}, draw.Src)

	s := newScale(prices, width, height)
	if len(prices) == 1 {
		pt := s.point(0, prices[0])
		img.SetRGBA(pt.X, pt.Y, Black)
	}
	for i := 0; i+1 < len(prices); i++ {
		Line(img, s.point(float64(i), prices[i]), s.point(float64(i+1), prices[i+1]), Black)
	}

	if threeColor {
		drawLosses(img, s, prices, splitIndex)
	}

	if splitIndex > 0 {
		x := int(math.Round(s.x(float64(splitIndex))))
		for y := 0; y < height; y++ {
			if y%(2*dashLen) < dashLen {
				img.SetRGBA(x, y, Black)
			}
		}
	}
	return img, nil
}

// drawLosses overdraws in red every part of the session that lies below the
// session's first price. Segments crossing the baseline are cut at the
// crossing.
func drawLosses(img *image.RGBA, s scale, prices []float64, split int) {
	base := prices[split]
	for i := split; i+1 < len(prices); i++ {
		a, b := prices[i], prices[i+1]
		x0, x1 := float64(i), float64(i+1)
		switch {
		case a == b:
			if a < base {
				Line(img, s.point(x0, a), s.point(x1, b), Red)
			}
		case a < base && b < base:
			Line(img, s.point(x0, a), s.point(x1, b), Red)
		case a < base && b >= base:
			xc := x0 + (base-a)/(b-a)
			Line(img, s.point(x0, a), s.point(xc, base), Red)
		case a >= base && b < base:
			xc := x0 + (base-a)/(b-a)
			Line(img, s.point(xc, base), s.point(x1, b), Red)
		}
	}
}

// Line draws an aliased line with Bresenham's algorithm. Pixels outside the
// image are skipped.
func Line(img draw.Image, p0, p1 image.Point, c color.Color) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		img.Set(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
