// Command resetleds switches the up/down indicator off.
package main

import (
	"fmt"
	"os"

	"inkystocks/internal/config"
	"inkystocks/internal/device"
	"inkystocks/internal/logger"
)

func main() {
	path := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	caps := device.Probe(cfg.Display, cfg.Indicator, log)
	if caps.Indicator != device.Available {
		log.Info("no indicator attached")
		return
	}
	if err := device.NewIndicator(caps).Off(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Info("indicator off")
}
