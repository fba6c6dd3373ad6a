package collector

import (
	"context"
	"time"

	"inkystocks/internal/logger"
	"inkystocks/internal/model"
)

// Collector turns provider quotes into market snapshots.
type Collector struct {
	Fetcher  Fetcher
	Policy   SessionPolicy
	Lookback time.Duration
	Interval string
	Log      *logger.Logger
	Now      func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, policy SessionPolicy, lookback time.Duration, interval string, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.NewNop()
	}
	return &Collector{
		Fetcher:  fetcher,
		Policy:   policy,
		Lookback: lookback,
		Interval: interval,
		Log:      log,
		Now:      time.Now,
	}
}

// Fetch retrieves one symbol and selects the session to display. Every
// failure is reported as model.ErrDataUnavailable.
func (c *Collector) Fetch(ctx context.Context, symbol string) (*model.MarketSnapshot, error) {
	q, err := c.Fetcher.FetchIntraday(ctx, symbol, c.Lookback, c.Interval)
	if err != nil {
		return nil, model.NewDataUnavailable(symbol, err)
	}
	snap, err := c.Policy.BuildSnapshot(q, c.Now())
	if err != nil {
		return nil, model.NewDataUnavailable(symbol, err)
	}
	c.Log.Debug("snapshot built",
		logger.NewField("symbol", symbol),
		logger.NewField("samples", len(snap.Series)),
		logger.NewField("split_index", snap.SplitIndex),
		logger.NewField("first", snap.FirstPrice),
		logger.NewField("last", snap.LastPrice),
	)
	return snap, nil
}

// FetchMultiple fetches symbols one after another. A failing symbol is
// recorded in its result and does not stop the others.
func (c *Collector) FetchMultiple(ctx context.Context, symbols []string) []model.SymbolResult {
	results := make([]model.SymbolResult, 0, len(symbols))
	for _, sym := range symbols {
		snap, err := c.Fetch(ctx, sym)
		if err != nil {
			c.Log.Warn("fetch failed", logger.NewField("symbol", sym), logger.NewField("error", err.Error()))
		}
		results = append(results, model.SymbolResult{Symbol: sym, Snapshot: snap, Err: err})
	}
	return results
}
