package chart

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkystocks/internal/model"
)

// With width=height=21 and prices [100, 90, 110] the points land on
// (0,10), (10,20) and (20,0); the 90->110 segment crosses 100 at (15,10).
func TestRender_ThreeColorSplitsAtBaseline(t *testing.T) {
	img, err := Render([]float64{100, 90, 110}, 0, 21, 21, true)
	require.NoError(t, err)

	assert.Equal(t, Red, img.RGBAAt(5, 15), "100->90 is below the baseline")
	assert.Equal(t, Red, img.RGBAAt(12, 16), "90->110 is red up to the crossing")
	assert.Equal(t, Black, img.RGBAAt(16, 8), "90->110 is black after the crossing")
	assert.Equal(t, Black, img.RGBAAt(18, 4))
	assert.Equal(t, White, img.RGBAAt(0, 0))
}

func TestRender_TwoColorHasNoRed(t *testing.T) {
	img, err := Render([]float64{100, 90, 110}, 0, 21, 21, false)
	require.NoError(t, err)

	assert.Equal(t, Black, img.RGBAAt(5, 15))
	assert.Equal(t, Black, img.RGBAAt(12, 16))
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			assert.NotEqual(t, Red, img.RGBAAt(x, y))
		}
	}
}

func TestRender_ContextIsNeverRed(t *testing.T) {
	// Context 80 -> 100, session starts at 100 and goes up.
	img, err := Render([]float64{80, 100, 110}, 1, 21, 21, true)
	require.NoError(t, err)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			assert.NotEqual(t, Red, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRender_SeparatorAtSplit(t *testing.T) {
	img, err := Render([]float64{100, 90, 110}, 1, 21, 21, false)
	require.NoError(t, err)

	assert.Equal(t, Black, img.RGBAAt(10, 0))
	assert.Equal(t, Black, img.RGBAAt(10, 2))
	assert.Equal(t, White, img.RGBAAt(10, 3), "separator is dashed")
	assert.Equal(t, Black, img.RGBAAt(10, 6))
}

func TestRender_NoSeparatorWithoutContext(t *testing.T) {
	img, err := Render([]float64{100, 100, 100}, 0, 21, 21, false)
	require.NoError(t, err)
	assert.Equal(t, White, img.RGBAAt(0, 0))
	assert.Equal(t, Black, img.RGBAAt(10, 10), "flat series is drawn mid-height")
}

func TestRender_ExactSize(t *testing.T) {
	img, err := Render([]float64{1, 2, 3, 2, 1}, 2, 185, 80, true)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 185, 80), img.Bounds())
}

func TestRender_SinglePoint(t *testing.T) {
	img, err := Render([]float64{42}, 0, 11, 11, true)
	require.NoError(t, err)
	assert.Equal(t, Black, img.RGBAAt(5, 5))
}

func TestRender_Deterministic(t *testing.T) {
	prices := []float64{101.2, 99.8, 100.4, 98.7, 102.3, 103.1, 97.5}
	encode := func() []byte {
		img, err := Render(prices, 2, 150, 75, true)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		return buf.Bytes()
	}
	assert.Equal(t, encode(), encode())
}

func TestRender_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		prices []float64
		split  int
		w, h   int
	}{
		{"empty", nil, 0, 10, 10},
		{"split past end", []float64{1, 2}, 2, 10, 10},
		{"negative split", []float64{1, 2}, -1, 10, 10},
		{"zero width", []float64{1, 2}, 0, 0, 10},
		{"non-positive price", []float64{1, 0}, 0, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Render(tc.prices, tc.split, tc.w, tc.h, false)
			assert.ErrorIs(t, err, model.ErrRenderFailure)
		})
	}
}
