// Package device probes and drives the optional peripherals: an Inky
// e-paper panel and a two-LED up/down indicator. Missing hardware is a
// capability state, never an error.
package device

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/inky"
	"periph.io/x/host/v3"

	"inkystocks/internal/config"
	"inkystocks/internal/logger"
)

// State is the outcome of probing one peripheral.
type State int

const (
	Unavailable State = iota
	Available
)

func (s State) String() string {
	if s == Available {
		return "available"
	}
	return "unavailable"
}

// Capabilities is the result of the startup probe.
type Capabilities struct {
	Display      State
	DisplayModel string // config.ModelPHAT or config.ModelWHAT when Display is Available
	Indicator    State

	panel   *inky.Dev
	upPin   gpio.PinOut
	downPin gpio.PinOut
}

// Probe detects the panel and the indicator pins once. Failures are logged
// and downgrade the matching peripheral to Unavailable.
func Probe(disp config.DisplayConfig, ind config.IndicatorConfig, log *logger.Logger) Capabilities {
	var caps Capabilities
	if _, err := host.Init(); err != nil {
		log.Warn("periph host init failed, running without hardware", logger.NewField("error", err.Error()))
		return caps
	}

	if dev, model, err := openPanel(disp); err != nil {
		log.Warn("inky display not available, saving image locally", logger.NewField("reason", err.Error()))
	} else {
		caps.Display = Available
		caps.DisplayModel = model
		caps.panel = dev
	}

	if up, down, err := openIndicator(ind); err != nil {
		log.Debug("indicator not available", logger.NewField("reason", err.Error()))
	} else {
		caps.Indicator = Available
		caps.upPin, caps.downPin = up, down
	}

	log.Info("capabilities probed",
		logger.NewField("display", caps.Display.String()),
		logger.NewField("display_model", caps.DisplayModel),
		logger.NewField("indicator", caps.Indicator.String()),
	)
	return caps
}

func openPanel(cfg config.DisplayConfig) (*inky.Dev, string, error) {
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, "", fmt.Errorf("open i2c: %w", err)
	}
	opts, err := inky.DetectOpts(bus)
	bus.Close()
	if err != nil {
		return nil, "", fmt.Errorf("detect inky: %w", err)
	}
	opts.BorderColor = inky.White

	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, "", fmt.Errorf("open spi %s: %w", cfg.SPIPort, err)
	}
	dc := gpioreg.ByName(cfg.DCPin)
	reset := gpioreg.ByName(cfg.ResetPin)
	busy := gpioreg.ByName(cfg.BusyPin)
	if dc == nil || reset == nil || busy == nil {
		port.Close()
		return nil, "", fmt.Errorf("inky pins %s/%s/%s not found", cfg.DCPin, cfg.ResetPin, cfg.BusyPin)
	}
	dev, err := inky.New(port, dc, reset, busy, opts)
	if err != nil {
		port.Close()
		return nil, "", fmt.Errorf("init inky: %w", err)
	}
	return dev, ModelForSize(dev.Bounds()), nil
}

// ModelForSize maps panel bounds to a layout. Unknown sizes use the pHAT layout.
func ModelForSize(r image.Rectangle) string {
	if r.Dx() == 400 && r.Dy() == 300 {
		return config.ModelWHAT
	}
	return config.ModelPHAT
}

func openIndicator(cfg config.IndicatorConfig) (gpio.PinOut, gpio.PinOut, error) {
	if cfg.UpPin == "" || cfg.DownPin == "" {
		return nil, nil, fmt.Errorf("indicator pins not configured")
	}
	up := gpioreg.ByName(cfg.UpPin)
	down := gpioreg.ByName(cfg.DownPin)
	if up == nil || down == nil {
		return nil, nil, fmt.Errorf("indicator pins %s/%s not found", cfg.UpPin, cfg.DownPin)
	}
	return up, down, nil
}
