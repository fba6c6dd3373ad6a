package device

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"periph.io/x/devices/v3/inky"
)

// Presenter puts a composed bitmap in front of the user.
type Presenter interface {
	Present(img image.Image) error
	Target() string
}

// NewPresenter dispatches on the probed display state.
func NewPresenter(caps Capabilities, outputPath string, threeColor bool) Presenter {
	if caps.Display == Available && caps.panel != nil {
		return &InkyPresenter{dev: caps.panel, ThreeColor: threeColor}
	}
	return &FilePresenter{Path: outputPath, ThreeColor: threeColor}
}

// InkyPresenter pushes images to an Inky e-paper panel over SPI.
type InkyPresenter struct {
	dev        *inky.Dev
	ThreeColor bool
}

func (p *InkyPresenter) Target() string { return "inky" }

func (p *InkyPresenter) Present(img image.Image) error {
	q := Quantize(img, p.ThreeColor)
	if err := p.dev.Draw(p.dev.Bounds(), q, q.Bounds().Min); err != nil {
		return fmt.Errorf("inky draw: %w", err)
	}
	return nil
}

// FilePresenter writes the quantized image as PNG when no panel is attached.
type FilePresenter struct {
	Path       string
	ThreeColor bool
}

func (p *FilePresenter) Target() string { return p.Path }

func (p *FilePresenter) Present(img image.Image) error {
	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", p.Path, err)
	}
	if err := png.Encode(f, Quantize(img, p.ThreeColor)); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
