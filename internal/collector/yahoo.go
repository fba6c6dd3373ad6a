package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"inkystocks/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance chart host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	Now     func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YahooFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Now: time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string `json:"symbol"`
				ShortName            string `json:"shortName"`
				LongName             string `json:"longName"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
				GMTOffset            int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchIntraday requests lookback worth of interval bars ending now.
func (f *YahooFetcher) FetchIntraday(ctx context.Context, symbol string, lookback time.Duration, interval string) (*Quote, error) {
	end := f.Now()
	start := end.Add(-lookback)
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&period1=%d&period2=%d&includePrePost=false",
		f.BaseURL, url.PathEscape(symbol), url.QueryEscape(interval), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart yahooChart
	decodeErr := json.Unmarshal(body, &chart)
	if decodeErr == nil && chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote block")
	}
	closes := result.Indicators.Quote[0].Close

	loc := time.FixedZone("exchange", result.Meta.GMTOffset)
	if result.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(result.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	samples := make(model.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		c := toFloat(closes[i])
		if c <= 0 {
			continue // null bars
		}
		samples = append(samples, model.Sample{Time: time.Unix(ts, 0).In(loc), Price: c})
	}
	samples = normalize(samples)
	if len(samples) == 0 {
		return nil, fmt.Errorf("yahoo: no prices in window")
	}

	name := strings.TrimSpace(result.Meta.ShortName)
	if name == "" {
		name = strings.TrimSpace(result.Meta.LongName)
	}
	if name == "" {
		name = symbol
	}

	return &Quote{
		Symbol:   symbol,
		Name:     name,
		Location: loc,
		Samples:  samples,
	}, nil
}

// normalize sorts samples and drops repeated timestamps, keeping the last.
func normalize(samples model.PriceSeries) model.PriceSeries {
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Time.Before(samples[j].Time) })
	out := samples[:0]
	for _, s := range samples {
		if n := len(out); n > 0 && out[n-1].Time.Equal(s.Time) {
			out[n-1] = s
			continue
		}
		out = append(out, s)
	}
	return out
}
