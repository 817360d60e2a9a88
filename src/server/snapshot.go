package server

import (
	"time"

	"token-radar/src/models"
	"token-radar/src/pipeline"
	"token-radar/src/utils"
)

// -----------------------------------------------------------------------------
// Snapshot derivation. All helpers here expect the caller to hold stateMutex
// (read side is enough); they never mutate server state.
// -----------------------------------------------------------------------------

// SnapshotFor derives a snapshot for an arbitrary view on demand (REST
// queries and harnesses; the hub uses the locked internals directly).
func (s *TableServer) SnapshotFor(view models.MViewState, wanted string) *models.MTableSnapshot {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.snapshotForView(view, snapshotTypeLocked(s.loaded, s.feedErr, wanted))
}

// -----------------------------------------------------------------------------

// snapshotTypeLocked picks the snapshot type for the current feed state:
// LOADING before the first load, ERROR after a feed failure, otherwise the
// type the caller wants (INITIAL or UPDATE).
func snapshotTypeLocked(loaded bool, feedErr string, wanted string) string {
	if feedErr != "" {
		return models.SnapshotError
	}
	if !loaded {
		return models.SnapshotLoading
	}
	return wanted
}

// -----------------------------------------------------------------------------

// snapshotForView derives the visible ordered subset for one view and wraps
// it in a snapshot. LOADING and ERROR snapshots carry no rows; the table is
// replaced by a skeleton or a failure message client-side.
func (s *TableServer) snapshotForView(view models.MViewState, snapshotType string) *models.MTableSnapshot {
	snapshot := &models.MTableSnapshot{
		Type: snapshotType,
		View: view,
	}

	switch snapshotType {
	case models.SnapshotError:
		snapshot.Error = s.feedErr
		return snapshot
	case models.SnapshotLoading:
		return snapshot
	}

	visible := pipeline.Apply(s.state.Records, view)

	rows := make([]models.MTokenRow, 0, len(visible))
	for _, rec := range visible {
		rows = append(rows, s.rowFor(rec))
	}

	snapshot.Rows = rows
	snapshot.Tabs = pipeline.StageCounts(pipeline.FilterCriteria(s.state.Records, view.Criteria))
	snapshot.Timestamp = s.state.Timestamp
	return snapshot
}

// -----------------------------------------------------------------------------

// rowFor decorates one record with its latest trend classification and the
// preformatted display fields.
func (s *TableServer) rowFor(rec models.MTokenRecord) models.MTokenRow {
	trend := models.TrendFlat
	if obs, ok := s.state.Observations[rec.ID]; ok {
		trend = obs.Trend
	}

	return models.MTokenRow{
		MTokenRecord:     rec,
		Trend:            trend,
		PriceDisplay:     utils.FormatPrice(rec.Price),
		MarketCapDisplay: utils.FormatCompact(rec.MarketCap),
		Volume24hDisplay: utils.FormatCompact(rec.Volume24h),
		LiquidityDisplay: utils.FormatCompact(rec.Liquidity),
		AgeDisplay:       utils.Age(rec.LaunchedAt, time.Now()),
	}
}
