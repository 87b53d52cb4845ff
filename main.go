package main

import (
	"github.com/wfunc/partymediator/config"
	"github.com/wfunc/partymediator/logger"
	"github.com/wfunc/partymediator/monitor"
	"github.com/wfunc/partymediator/notify"
	"github.com/wfunc/partymediator/party"
	"github.com/wfunc/partymediator/scenario"
)

func main() {
	// Initialize logger
	if err := logger.Init("info"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		logger.Log.Fatalf("Failed to apply log level: %v", err)
	}

	var sink notify.Sink = notify.Stdout()
	if cfg.Output == config.OutputLog {
		sink = notify.NewLogSink(logger.Log)
	}

	mon := monitor.NewMonitor(cfg.Metrics.Namespace)
	manager := party.NewManager(mon)

	if err := scenario.Run(cfg.Parties, manager, sink); err != nil {
		logger.Log.Fatalf("Failed to run parties: %v", err)
	}

	summary, err := mon.Summary()
	if err != nil {
		logger.Log.Errorf("Failed to gather metrics: %v", err)
		return
	}
	logger.Log.Infow("done", "parties", len(manager.Parties()), "broadcasts", summary.Broadcasts, "uptime", summary.Uptime)
}
