package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"inkystocks/internal/app"
	"inkystocks/internal/config"
	"inkystocks/internal/device"
	"inkystocks/internal/logger"
)

const defaultSymbol = "^GSPC"

// options holds the parsed command line.
type options struct {
	symbol     string
	symbolSet  bool
	symbols    string
	args       []string
	threeColor bool
	display    string
	output     string
	config     string
}

// parseArgs parses flags that may be interleaved with positional symbols,
// e.g. "-symbols AAPL MSFT -three-color".
func parseArgs(fs *flag.FlagSet, argv []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.symbol, "symbol", defaultSymbol, "stock symbol to display")
	fs.StringVar(&opts.symbols, "symbols", "", "comma separated symbols for the wHAT (up to 3)")
	fs.BoolVar(&opts.threeColor, "three-color", false, "use red for losses on three-colour panels")
	fs.StringVar(&opts.display, "display", "", "display model: auto, phat or what")
	fs.StringVar(&opts.output, "output", "", "PNG path used when no display is attached")
	fs.StringVar(&opts.config, "config", "", "path to YAML config")

	rest := argv
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		remaining := fs.Args()
		if len(remaining) == 0 {
			break
		}
		// "--" ends flag parsing for good.
		if used := len(rest) - len(remaining); used > 0 && rest[used-1] == "--" {
			opts.args = append(opts.args, remaining...)
			break
		}
		opts.args = append(opts.args, remaining[0])
		rest = remaining[1:]
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "symbol" {
			opts.symbolSet = true
		}
	})
	return opts, nil
}

// resolveSymbols picks what to show. An explicit list (-symbols or
// positionals) wins, then an explicit -symbol. Otherwise the wHAT shows the
// configured defaults and the pHAT shows -symbol's default.
func resolveSymbols(model string, opts *options, defaults []string) []string {
	if list := parseSymbols(opts.symbols, opts.args); len(list) > 0 {
		return list
	}
	if opts.symbolSet || model != config.ModelWHAT {
		return normalizeSymbols([]string{opts.symbol})
	}
	return normalizeSymbols(defaults)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fs := flag.NewFlagSet("inkystocks", flag.ContinueOnError)
	opts, err := parseArgs(fs, argv)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	path := opts.config
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	if opts.display != "" {
		cfg.Display.Model = strings.ToLower(opts.display)
	}
	if opts.threeColor {
		cfg.Display.ThreeColor = true
	}
	if opts.output != "" {
		cfg.Display.OutputPath = opts.output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	caps := device.Probe(cfg.Display, cfg.Indicator, log)
	runner, err := app.New(cfg, caps, log)
	if err != nil {
		log.Error(err)
		return 1
	}
	defer runner.Recorder.Close()

	requested := resolveSymbols(runner.Model, opts, cfg.DataSource.Symbols)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runner.Run(ctx, requested); err != nil {
		log.Error(err, logger.NewField("symbols", requested))
		return 1
	}
	return 0
}

// parseSymbols merges the -symbols list with positional arguments.
func parseSymbols(list string, args []string) []string {
	var raw []string
	if list != "" {
		raw = append(raw, strings.Split(list, ",")...)
	}
	raw = append(raw, args...)
	return normalizeSymbols(raw)
}

func normalizeSymbols(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
