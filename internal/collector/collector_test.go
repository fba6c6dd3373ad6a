package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkystocks/internal/model"
)

func TestCollector_FetchMultipleKeepsGoingAfterFailure(t *testing.T) {
	series := day(nil, "2024-01-03", 12, rising(100))
	mock := &MockFetcher{
		Quotes: map[string]*Quote{
			"AAPL": {Symbol: "AAPL", Name: "Apple", Location: time.UTC, Samples: series},
			"MSFT": {Symbol: "MSFT", Name: "Microsoft", Location: time.UTC, Samples: series},
		},
		Errors: map[string]error{"BAD": errors.New("connection refused")},
	}
	c := NewCollector(mock, DefaultSessionPolicy(), 96*time.Hour, "15m", nil)

	results := c.FetchMultiple(context.Background(), []string{"AAPL", "BAD", "MSFT"})
	require.Len(t, results, 3)
	assert.Equal(t, []string{"AAPL", "BAD", "MSFT"}, mock.Calls)

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())
	assert.True(t, errors.Is(results[1].Err, model.ErrDataUnavailable))
	assert.Contains(t, results[1].Err.Error(), "connection refused")
	assert.Equal(t, "BAD", results[1].Symbol)
}

func TestCollector_EmptySeriesIsDataUnavailable(t *testing.T) {
	mock := &MockFetcher{Quotes: map[string]*Quote{"X": {Symbol: "X", Location: time.UTC}}}
	c := NewCollector(mock, DefaultSessionPolicy(), 96*time.Hour, "15m", nil)

	_, err := c.Fetch(context.Background(), "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDataUnavailable)

	var due *model.DataUnavailableError
	require.ErrorAs(t, err, &due)
	assert.Equal(t, "X", due.Symbol)
}

func TestCollector_GeneratedMockData(t *testing.T) {
	// Wednesday afternoon UTC: today has trading samples.
	now := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	mock := &MockFetcher{Price: 5000, Now: func() time.Time { return now }}
	c := NewCollector(mock, DefaultSessionPolicy(), 96*time.Hour, "15m", nil)

	snap, err := c.Fetch(context.Background(), "^GSPC")
	require.NoError(t, err)
	assert.Equal(t, "^GSPC", snap.Symbol)
	assert.NotEmpty(t, snap.Series)
	assert.Less(t, snap.SplitIndex, len(snap.Series))
	assert.Equal(t, snap.Series[snap.SplitIndex].Price, snap.FirstPrice)
}
