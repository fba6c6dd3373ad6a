package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkystocks/internal/config"
)

var defaultSet = []string{"^GSPC", "^FTSE", "BTC-USD"}

func parse(t *testing.T, argv ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts, err := parseArgs(fs, argv)
	require.NoError(t, err)
	return opts
}

func TestParseSymbols(t *testing.T) {
	assert.Equal(t, []string{"AAPL", "MSFT", "BTC-USD"}, parseSymbols(" aapl, msft ", []string{"btc-usd"}))
	assert.Equal(t, []string{"^FTSE"}, parseSymbols("", []string{"^ftse", " "}))
	assert.Empty(t, parseSymbols("", nil))
}

func TestParseArgs_InterleavedFlags(t *testing.T) {
	opts := parse(t, "-display", "what", "-symbols", "AAPL", "MSFT", "-three-color", "tsla")

	assert.True(t, opts.threeColor)
	assert.Equal(t, "what", opts.display)
	assert.Equal(t, "AAPL", opts.symbols)
	assert.Equal(t, []string{"MSFT", "tsla"}, opts.args)
	assert.Equal(t, []string{"AAPL", "MSFT", "TSLA"}, resolveSymbols(config.ModelWHAT, opts, defaultSet))
}

func TestParseArgs_DoubleDash(t *testing.T) {
	opts := parse(t, "-symbols", "AAPL", "--", "-odd", "-three-color")
	assert.False(t, opts.threeColor)
	assert.Equal(t, []string{"-odd", "-three-color"}, opts.args)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := parseArgs(fs, []string{"AAPL", "-nope"})
	assert.Error(t, err)
}

func TestResolveSymbols(t *testing.T) {
	tests := []struct {
		name  string
		model string
		argv  []string
		want  []string
	}{
		{"phat default", config.ModelPHAT, nil, []string{"^GSPC"}},
		{"phat symbol", config.ModelPHAT, []string{"-symbol", "aapl"}, []string{"AAPL"}},
		{"what default set", config.ModelWHAT, nil, defaultSet},
		{"what explicit symbol", config.ModelWHAT, []string{"-symbol", "aapl"}, []string{"AAPL"}},
		{"what explicit default symbol", config.ModelWHAT, []string{"-symbol", "^GSPC"}, []string{"^GSPC"}},
		{"symbols beat symbol", config.ModelWHAT, []string{"-symbol", "ibm", "-symbols", "a,b"}, []string{"A", "B"}},
		{"positionals", config.ModelPHAT, []string{"msft", "ibm"}, []string{"MSFT", "IBM"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveSymbols(tt.model, parse(t, tt.argv...), defaultSet))
		})
	}
}
