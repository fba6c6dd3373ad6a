package model

import "time"

// Sample is a single intraday close.
type Sample struct {
	Time  time.Time
	Price float64
}

// PriceSeries holds samples ordered by time ascending. Gaps in trading are
// absent samples, never zero prices.
type PriceSeries []Sample

// Prices returns the price column of the series.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Price
	}
	return out
}

// MarketSnapshot is the per-symbol result of one fetch. Series may start with
// context samples from the previous day; SplitIndex is the first sample of
// the session being displayed.
type MarketSnapshot struct {
	Symbol     string
	Name       string
	Series     PriceSeries
	SplitIndex int
	IsUp       bool
	FirstPrice float64
	LastPrice  float64
	FetchedAt  time.Time
}

// Prices returns the price column of the displayed series.
func (m *MarketSnapshot) Prices() []float64 {
	return m.Series.Prices()
}

// PercentChange is the session move in percent.
func (m *MarketSnapshot) PercentChange() float64 {
	if m.FirstPrice == 0 {
		return 0
	}
	return (m.LastPrice - m.FirstPrice) / m.FirstPrice * 100
}

// HasContext reports whether previous-day samples were prepended.
func (m *MarketSnapshot) HasContext() bool {
	return m.SplitIndex > 0
}

// SymbolResult is the outcome of fetching one symbol in a batch.
type SymbolResult struct {
	Symbol   string
	Snapshot *MarketSnapshot
	Err      error
}

// OK reports whether the symbol was fetched successfully.
func (r SymbolResult) OK() bool {
	return r.Err == nil && r.Snapshot != nil
}
