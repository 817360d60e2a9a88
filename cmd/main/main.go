package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"token-radar/src/config"
	"token-radar/src/feed"
	"token-radar/src/helpers"
	"token-radar/src/interfaces"
	"token-radar/src/logger"
	"token-radar/src/models"
	"token-radar/src/server"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(conf.LogLevel, conf.Name)
	errHandler := helpers.NewErrorHandler()

	// Setup Components
	var source interfaces.IFeedSource = feed.NewMockFeedSource(conf.MConfig)
	var srv interfaces.IDataExchanger = server.NewTableServer(conf.MConfig, appLogger, conf.DefaultView())

	// Initial Load
	// The feed observes its configured load delay; until it returns, every
	// client sees the LOADING skeleton state.
	appLogger.Info("Loading initial token universe...")
	records, err := source.FetchInitialData()
	if err != nil {
		// Single modeled failure mode: surface it, keep serving the error page.
		errHandler.Handle(err, "initial token load")
		srv.SetInitialState(&models.MFeedUpdate{
			Err:       err.Error(),
			Timestamp: time.Now().UnixMilli(),
		})
	} else {
		errHandler.ResetErrorCount()
		srv.SetInitialState(&models.MFeedUpdate{
			Records:      records,
			Observations: make(map[string]models.MPriceObservation),
			Timestamp:    time.Now().UnixMilli(),
		})
		appLogger.Info("Initialization complete: %d tokens", len(records))
	}

	// Start Server
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	// Main Loop (Push Model)
	// Create context for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapWg := &sync.WaitGroup{}
	updatesChan := make(chan *models.MFeedUpdate, 100)

	// Start Source (only once the initial load succeeded; a failed load has
	// no retry, the table stays in its error state until restart)
	if err == nil {
		if startErr := source.Start(ctx, updatesChan, wrapWg); startErr != nil {
			errHandler.Handle(startErr, "feed source start")
			appLogger.Critical("Failed to start source: %v", startErr)
			return
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	appLogger.Info("Starting data loop (Push Model)...")

	for {
		select {
		case update, ok := <-updatesChan:
			if !ok {
				appLogger.Info("Feed source closed channel.")
				return
			}

			appLogger.Debug("Tick %d: %d records", update.Sequence, len(update.Records))
			srv.Broadcast(update)

		case <-quit:
			appLogger.Info("Shutdown signal received, stopping...")
			cancel()
			wrapWg.Wait()
			srv.Stop()
			return
		}
	}
}
