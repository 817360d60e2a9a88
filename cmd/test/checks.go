package main

import (
	"fmt"
	"math/rand"
	"time"

	"token-radar/src/config"
	"token-radar/src/feed"
	"token-radar/src/logger"
	"token-radar/src/models"
	"token-radar/src/pipeline"
	"token-radar/src/server"
)

// -----------------------------------------------------------------------------

func checkUniverse(conf *config.Config) error {
	src := feed.NewMockFeedSource(conf.MConfig)
	records, err := src.FetchInitialData()
	if err != nil {
		return err
	}
	if len(records) != conf.Feed.UniverseSize {
		return fmt.Errorf("expected %d records, got %d", conf.Feed.UniverseSize, len(records))
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("duplicate record id %s", rec.ID)
		}
		seen[rec.ID] = struct{}{}
		if rec.Price <= 0 || rec.MarketCap < 0 || rec.AuditScore < 0 || rec.AuditScore > 100 {
			return fmt.Errorf("record %s violates value invariants", rec.Symbol)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

func checkTickOrdering(conf *config.Config) error {
	rng := rand.New(rand.NewSource(7))
	records := feed.Universe(6, rng, time.Now())
	preTick := make(map[string]float64, len(records))
	for _, rec := range records {
		preTick[rec.ID] = rec.Price
	}

	updated, observations := feed.Tick(records, conf.Feed.PriceJitter, conf.Feed.VolumeJitter, rng)

	for _, rec := range updated {
		obs, ok := observations[rec.ID]
		if !ok {
			return fmt.Errorf("missing observation for %s", rec.ID)
		}
		if obs.PreviousPrice != preTick[rec.ID] {
			return fmt.Errorf("observation for %s lost the pre-tick price", rec.ID)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

func checkPipeline(conf *config.Config) error {
	rng := rand.New(rand.NewSource(7))
	records := feed.Universe(9, rng, time.Now())

	sorted := pipeline.Sort(records, models.DefaultSortSpec())
	for i := 1; i < len(sorted); i++ {
		if sorted[i].MarketCap > sorted[i-1].MarketCap {
			return fmt.Errorf("default sort is not market-cap descending at index %d", i)
		}
	}

	total := 0
	for _, stage := range models.Stages {
		total += len(pipeline.FilterStage(sorted, stage))
	}
	if total != len(records) {
		return fmt.Errorf("stage filters do not partition the set: %d != %d", total, len(records))
	}
	return nil
}

// -----------------------------------------------------------------------------

func checkServerSnapshot(conf *config.Config) error {
	srv := server.NewTableServer(conf.MConfig, logger.NewLogger(conf.LogLevel, "smoke-server"), conf.DefaultView())

	rng := rand.New(rand.NewSource(7))
	records := feed.Universe(6, rng, time.Now())
	updated, observations := feed.Tick(records, conf.Feed.PriceJitter, conf.Feed.VolumeJitter, rng)

	srv.SetInitialState(&models.MFeedUpdate{
		Records:      updated,
		Observations: observations,
		Timestamp:    time.Now().UnixMilli(),
	})

	snapshot := srv.SnapshotFor(conf.DefaultView(), models.SnapshotInitial)
	if snapshot.Type != models.SnapshotInitial {
		return fmt.Errorf("expected INITIAL snapshot, got %s", snapshot.Type)
	}
	if len(snapshot.Rows) != len(updated) {
		return fmt.Errorf("expected %d rows, got %d", len(updated), len(snapshot.Rows))
	}
	if snapshot.Tabs.All != len(updated) {
		return fmt.Errorf("tab counts out of sync: %d != %d", snapshot.Tabs.All, len(updated))
	}
	return nil
}
