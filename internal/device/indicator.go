package device

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Indicator shows the aggregate up/down state.
type Indicator interface {
	SetIndicator(isUp bool) error
	Off() error
}

// NewIndicator dispatches on the probed indicator state.
func NewIndicator(caps Capabilities) Indicator {
	if caps.Indicator == Available {
		return &GPIOIndicator{Up: caps.upPin, Down: caps.downPin}
	}
	return NoopIndicator{}
}

// GPIOIndicator drives a green (up) and a red (down) LED.
type GPIOIndicator struct {
	Up   gpio.PinOut
	Down gpio.PinOut
}

func (g *GPIOIndicator) SetIndicator(isUp bool) error {
	if err := g.Up.Out(gpio.Level(isUp)); err != nil {
		return fmt.Errorf("set up led: %w", err)
	}
	if err := g.Down.Out(gpio.Level(!isUp)); err != nil {
		return fmt.Errorf("set down led: %w", err)
	}
	return nil
}

func (g *GPIOIndicator) Off() error {
	if err := g.Up.Out(gpio.Low); err != nil {
		return fmt.Errorf("clear up led: %w", err)
	}
	if err := g.Down.Out(gpio.Low); err != nil {
		return fmt.Errorf("clear down led: %w", err)
	}
	return nil
}

// NoopIndicator is used when no indicator is wired.
type NoopIndicator struct{}

func (NoopIndicator) SetIndicator(bool) error { return nil }
func (NoopIndicator) Off() error              { return nil }
