package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDataUnavailable covers network, provider and unknown-symbol failures
	// as well as empty series.
	ErrDataUnavailable = errors.New("market data unavailable")
	// ErrRenderFailure means an empty or malformed series reached the renderer.
	ErrRenderFailure = errors.New("render failure")
)

// DataUnavailableError records which symbol could not be fetched and why.
type DataUnavailableError struct {
	Symbol string
	Cause  error
}

// NewDataUnavailable wraps cause with a stack trace.
func NewDataUnavailable(symbol string, cause error) error {
	return errors.WithStack(&DataUnavailableError{Symbol: symbol, Cause: cause})
}

func (e *DataUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Symbol, ErrDataUnavailable)
	}
	return fmt.Sprintf("%s: %v: %v", e.Symbol, ErrDataUnavailable, e.Cause)
}

func (e *DataUnavailableError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrDataUnavailable) match.
func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// RenderFailuref builds an ErrRenderFailure with context.
func RenderFailuref(format string, args ...any) error {
	return errors.Wrapf(ErrRenderFailure, format, args...)
}
