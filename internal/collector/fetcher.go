package collector

import (
	"context"
	"time"

	"inkystocks/internal/model"
)

// Quote is the raw intraday answer of a data provider for one symbol.
type Quote struct {
	Symbol   string
	Name     string
	Location *time.Location // exchange timezone, used to split calendar days
	Samples  model.PriceSeries
}

// Fetcher defines the interface for fetching intraday market data.
type Fetcher interface {
	FetchIntraday(ctx context.Context, symbol string, lookback time.Duration, interval string) (*Quote, error)
	Name() string
}
