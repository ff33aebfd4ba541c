package main

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const (
	statsAddress = "localhost:12600"
	statsURL     = "/debug/statsview"
)

// launchStatsView serves Go runtime statistics charts in a new goroutine.
func launchStatsView(logger *log.Logger) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsAddress))
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Error("Stats server stopped", log.Err(err))
		}
	}()

	logger.Info("Stats server available", log.String("url", "http://"+statsAddress+statsURL))
}
