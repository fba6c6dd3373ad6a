package app

import (
	"fmt"

	"inkystocks/internal/collector"
	"inkystocks/internal/config"
	"inkystocks/internal/device"
	"inkystocks/internal/layout"
	"inkystocks/internal/logger"
	"inkystocks/internal/recorder"
)

// ResolveModel picks the layout: an explicit model wins, then the detected
// panel, then the pHAT.
func ResolveModel(requested string, caps device.Capabilities) string {
	switch requested {
	case config.ModelPHAT, config.ModelWHAT:
		return requested
	}
	if caps.Display == device.Available && caps.DisplayModel != "" {
		return caps.DisplayModel
	}
	return config.ModelPHAT
}

// DefaultOutputPath is where the PNG lands when no panel is attached.
func DefaultOutputPath(model string) string {
	return fmt.Sprintf("inky_stocks_%s.png", model)
}

// NewFetcher selects the data provider.
func NewFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.Provider == "mock" {
		return &collector.MockFetcher{Price: 100}
	}
	return collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.DataSource.Timeout)
}

// NewRecorder opens the SQLite history when configured, falling back to a
// no-op recorder.
func NewRecorder(cfg *config.Config, log *logger.Logger) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn("init sqlite recorder failed, using noop", logger.NewField("error", err.Error()))
		return recorder.NewNoopRecorder()
	}
	log.Info("sqlite recorder opened", logger.NewField("path", cfg.Database.SQLitePath))
	return sr
}

// New builds a Runner from configuration and probed capabilities.
func New(cfg *config.Config, caps device.Capabilities, log *logger.Logger) (*Runner, error) {
	fonts, err := layout.LoadFonts(cfg.Display.FontPath)
	if fonts == nil {
		return nil, err
	}
	if err != nil {
		log.Warn("could not load font, using embedded default", logger.NewField("error", err.Error()))
	}

	model := ResolveModel(cfg.Display.Model, caps)
	out := cfg.Display.OutputPath
	if out == "" {
		out = DefaultOutputPath(model)
	}

	policy := collector.SessionPolicy{
		ShortSessionSamples: cfg.Session.ShortSessionSamples,
		ContextSamples:      cfg.Session.ContextSamples,
	}
	fetcher := NewFetcher(cfg)
	log.Info("data source selected", logger.NewField("provider", fetcher.Name()))

	return &Runner{
		Collector: collector.NewCollector(fetcher, policy, cfg.DataSource.Lookback, cfg.DataSource.Interval, log),
		Composer:  layout.NewComposer(layout.Options{ThreeColor: cfg.Display.ThreeColor}, fonts),
		Presenter: device.NewPresenter(caps, out, cfg.Display.ThreeColor),
		Indicator: device.NewIndicator(caps),
		Recorder:  NewRecorder(cfg, log),
		Model:     model,
		Log:       log,
	}, nil
}
