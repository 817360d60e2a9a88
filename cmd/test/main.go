// Manual smoke harness: runs the feed, pipeline and server together without
// a browser and prints PASS/FAIL per check. Not a replacement for go test,
// this exercises the real wiring end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"token-radar/src/config"
	"token-radar/src/logger"
)

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Speed the harness up: no load delay, deterministic seed.
	conf.Feed.InitialLoadDelayMs = 0
	conf.Feed.Seed = 42

	appLogger := logger.NewLogger(conf.LogLevel, "smoke")

	failures := 0
	run := func(name string, check func() error) {
		if err := check(); err != nil {
			failures++
			appLogger.Error("FAIL %s: %v", name, err)
			return
		}
		appLogger.Info("PASS %s", name)
	}

	run("universe", func() error { return checkUniverse(conf) })
	run("tick ordering", func() error { return checkTickOrdering(conf) })
	run("pipeline", func() error { return checkPipeline(conf) })
	run("server snapshot", func() error { return checkServerSnapshot(conf) })

	if failures > 0 {
		appLogger.Critical("%d check(s) failed", failures)
	}
	appLogger.Info("All checks passed")
}
