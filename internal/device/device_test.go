package device

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"inkystocks/internal/chart"
	"inkystocks/internal/config"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.SetRGBA(0, 0, chart.White)
	img.SetRGBA(1, 0, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 230, G: 20, B: 30, A: 255})
	img.SetRGBA(3, 0, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	return img
}

func TestQuantize_ThreeColor(t *testing.T) {
	q := Quantize(testImage(), true)
	require.Len(t, q.Palette, 3)
	assert.Equal(t, uint8(0), q.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), q.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(2), q.ColorIndexAt(2, 0))
	assert.Equal(t, uint8(0), q.ColorIndexAt(3, 0))
}

func TestQuantize_TwoColorHasNoRed(t *testing.T) {
	q := Quantize(testImage(), false)
	require.Len(t, q.Palette, 2)
	for x := 0; x < 4; x++ {
		assert.Less(t, q.ColorIndexAt(x, 0), uint8(2))
	}
}

func TestNewPresenter_FallsBackToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "inky_stocks_phat.png")
	p := NewPresenter(Capabilities{Display: Unavailable}, path, true)
	require.IsType(t, &FilePresenter{}, p)
	assert.Equal(t, path, p.Target())

	src := image.NewRGBA(image.Rect(0, 0, 250, 122))
	require.NoError(t, p.Present(src))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Width)
	assert.Equal(t, 122, cfg.Height)
}

func TestNewIndicator_NoopWhenAbsent(t *testing.T) {
	ind := NewIndicator(Capabilities{})
	assert.IsType(t, NoopIndicator{}, ind)
	assert.NoError(t, ind.SetIndicator(true))
	assert.NoError(t, ind.Off())
}

func TestGPIOIndicator(t *testing.T) {
	up := &gpiotest.Pin{N: "GPIO5"}
	down := &gpiotest.Pin{N: "GPIO6"}
	ind := NewIndicator(Capabilities{Indicator: Available, upPin: up, downPin: down})

	require.NoError(t, ind.SetIndicator(true))
	assert.Equal(t, gpio.High, up.Read())
	assert.Equal(t, gpio.Low, down.Read())

	require.NoError(t, ind.SetIndicator(false))
	assert.Equal(t, gpio.Low, up.Read())
	assert.Equal(t, gpio.High, down.Read())

	require.NoError(t, ind.Off())
	assert.Equal(t, gpio.Low, up.Read())
	assert.Equal(t, gpio.Low, down.Read())
}

func TestModelForSize(t *testing.T) {
	assert.Equal(t, config.ModelWHAT, ModelForSize(image.Rect(0, 0, 400, 300)))
	assert.Equal(t, config.ModelPHAT, ModelForSize(image.Rect(0, 0, 250, 122)))
	assert.Equal(t, config.ModelPHAT, ModelForSize(image.Rect(0, 0, 212, 104)))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "available", Available.String())
	assert.Equal(t, "unavailable", Unavailable.String())
}
