package collector

import (
	"errors"
	"time"

	"inkystocks/internal/model"
)

// SessionPolicy decides how much of a fetched series is shown.
//
// A latest day with ShortSessionSamples or fewer samples (two hours at the
// 15 minute interval) is too short to show a trend, so up to ContextSamples
// samples of the previous day are prepended.
type SessionPolicy struct {
	ShortSessionSamples int
	ContextSamples      int
}

// DefaultSessionPolicy returns the stock thresholds.
func DefaultSessionPolicy() SessionPolicy {
	return SessionPolicy{ShortSessionSamples: 8, ContextSamples: 16}
}

var errEmptySeries = errors.New("empty price series")

type dayKey struct {
	y int
	m time.Month
	d int
}

func dayOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{y, m, d}
}

// dayStart returns the index of the first sample on the same calendar day as
// series[end-1].
func dayStart(series model.PriceSeries, end int, loc *time.Location) int {
	day := dayOf(series[end-1].Time, loc)
	i := end - 1
	for i > 0 && dayOf(series[i-1].Time, loc) == day {
		i--
	}
	return i
}

// Select returns the series to display and the index where the latest
// session starts. The returned series never aliases the input.
func (p SessionPolicy) Select(series model.PriceSeries, loc *time.Location) (model.PriceSeries, int, error) {
	if len(series) == 0 {
		return nil, 0, errEmptySeries
	}
	if loc == nil {
		loc = time.UTC
	}

	latestStart := dayStart(series, len(series), loc)
	latest := series[latestStart:]

	var prior model.PriceSeries
	if len(latest) <= p.ShortSessionSamples && latestStart > 0 {
		prevStart := dayStart(series, latestStart, loc)
		from := latestStart - p.ContextSamples
		if from < prevStart {
			from = prevStart
		}
		prior = series[from:latestStart]
	}

	out := make(model.PriceSeries, 0, len(prior)+len(latest))
	out = append(out, prior...)
	out = append(out, latest...)
	return out, len(prior), nil
}

// BuildSnapshot applies the policy to a quote. Baseline prices and IsUp are
// taken from the latest session only, never from the prepended context.
func (p SessionPolicy) BuildSnapshot(q *Quote, fetchedAt time.Time) (*model.MarketSnapshot, error) {
	series, split, err := p.Select(q.Samples, q.Location)
	if err != nil {
		return nil, err
	}
	first := series[split].Price
	last := series[len(series)-1].Price
	return &model.MarketSnapshot{
		Symbol:     q.Symbol,
		Name:       q.Name,
		Series:     series,
		SplitIndex: split,
		IsUp:       last >= first,
		FirstPrice: first,
		LastPrice:  last,
		FetchedAt:  fetchedAt,
	}, nil
}
