// Package app wires one render-and-present cycle:
// fetch, select session, render, compose, present, indicate.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"inkystocks/internal/collector"
	"inkystocks/internal/config"
	"inkystocks/internal/device"
	"inkystocks/internal/layout"
	"inkystocks/internal/logger"
	"inkystocks/internal/model"
	"inkystocks/internal/recorder"
)

// ErrNothingToShow is returned when every requested symbol failed.
var ErrNothingToShow = errors.New("no valid stock data to display")

// Runner executes a single cycle. It holds no state between runs.
type Runner struct {
	Collector *collector.Collector
	Composer  *layout.Composer
	Presenter device.Presenter
	Indicator device.Indicator
	Recorder  recorder.Recorder
	Model     string // config.ModelPHAT or config.ModelWHAT
	Log       *logger.Logger
	Now       func() time.Time
}

// Run fetches symbols and presents them. On the pHAT only the first symbol
// is used and its failure is fatal; on the wHAT failures become placeholder
// rows and only a total failure is fatal. Nothing is presented on failure.
func (r *Runner) Run(ctx context.Context, symbols []string) error {
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols requested")
	}
	runID := uuid.NewString()
	log := r.Log.WithFields(logger.NewField("run_id", runID), logger.NewField("display", r.Model))

	var (
		img     image.Image
		results []model.SymbolResult
		isUp    bool
	)
	switch r.Model {
	case config.ModelWHAT:
		if len(symbols) > layout.MaxRows {
			log.Warn("wHAT only shows 3 symbols", logger.NewField("dropped", symbols[layout.MaxRows:]))
			symbols = symbols[:layout.MaxRows]
		}
		results = r.Collector.FetchMultiple(ctx, symbols)
		var ok int
		isUp = true
		for _, res := range results {
			if res.OK() {
				ok++
				isUp = isUp && res.Snapshot.IsUp
			} else {
				log.Error(res.Err, logger.NewField("symbol", res.Symbol))
			}
		}
		if ok == 0 {
			r.record(runID, results, "")
			return ErrNothingToShow
		}
		composite, err := r.Composer.ComposeMultiple(results)
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
		img = composite

	default:
		if len(symbols) > 1 {
			log.Warn("pHAT only shows 1 symbol", logger.NewField("dropped", symbols[1:]))
		}
		snap, err := r.Collector.Fetch(ctx, symbols[0])
		results = []model.SymbolResult{{Symbol: symbols[0], Snapshot: snap, Err: err}}
		if err != nil {
			r.record(runID, results, "")
			return err
		}
		panel, err := r.Composer.ComposeSingle(snap)
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
		img = panel.Image
		isUp = snap.IsUp
		log.Info("panel composed",
			logger.NewField("symbol", snap.Symbol),
			logger.NewField("title", panel.Title),
			logger.NewField("change", panel.Percent),
			logger.NewField("price", panel.Price),
		)
	}

	if err := r.Presenter.Present(img); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	log.Info("image presented", logger.NewField("target", r.Presenter.Target()))

	if err := r.Indicator.SetIndicator(isUp); err != nil {
		log.Warn("set indicator failed", logger.NewField("error", err.Error()))
	}
	r.record(runID, results, r.Presenter.Target())
	return nil
}

func (r *Runner) record(runID string, results []model.SymbolResult, target string) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	ts := now()
	for _, res := range results {
		rec := &recorder.RunRecord{
			RunID:        runID,
			Timestamp:    ts,
			Symbol:       res.Symbol,
			DisplayModel: r.Model,
			Target:       target,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		if s := res.Snapshot; s != nil {
			if !s.FetchedAt.IsZero() {
				rec.Timestamp = s.FetchedAt
			}
			rec.Name = s.Name
			rec.Samples = len(s.Series)
			rec.SplitIndex = s.SplitIndex
			rec.FirstPrice = s.FirstPrice
			rec.LastPrice = s.LastPrice
			rec.PercentChange = s.PercentChange()
			rec.IsUp = s.IsUp
		}
		if err := r.Recorder.RecordRun(rec); err != nil {
			r.Log.Warn("record run failed", logger.NewField("symbol", res.Symbol), logger.NewField("error", err.Error()))
		}
	}
}
