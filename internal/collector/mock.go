package collector

import (
	"context"
	"fmt"
	"math"
	"time"

	"inkystocks/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Quotes and Errors take precedence; otherwise a deterministic trading-hours
// series around Price is generated.
type MockFetcher struct {
	Price  float64
	Quotes map[string]*Quote
	Errors map[string]error
	Now    func() time.Time
	Calls  []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntraday(_ context.Context, symbol string, lookback time.Duration, interval string) (*Quote, error) {
	m.Calls = append(m.Calls, symbol)
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	if q, ok := m.Quotes[symbol]; ok {
		return q, nil
	}
	step, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("mock: bad interval %q: %w", interval, err)
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	price := m.Price
	if price <= 0 {
		price = 100
	}
	return &Quote{
		Symbol:   symbol,
		Name:     symbol,
		Location: time.UTC,
		Samples:  generateMockSamples(price, now().UTC(), lookback, step),
	}, nil
}

// generateMockSamples emits weekday samples between 14:30 and 21:00 UTC.
func generateMockSamples(basePrice float64, end time.Time, lookback, step time.Duration) model.PriceSeries {
	var out model.PriceSeries
	start := end.Add(-lookback).Truncate(step)
	i := 0
	for t := start; !t.After(end); t = t.Add(step) {
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		minutes := t.Hour()*60 + t.Minute()
		if minutes < 14*60+30 || minutes >= 21*60 {
			continue
		}
		p := basePrice * (1 + 0.01*math.Sin(float64(i)/6))
		out = append(out, model.Sample{Time: t, Price: p})
		i++
	}
	return out
}
