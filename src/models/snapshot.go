package models

// -----------------------------------------------------------------------------
// Feed Update (what the generator pushes every tick)
// -----------------------------------------------------------------------------

// MFeedUpdate is one tick's payload: the full mutated record list plus the
// wholesale-replaced observation map. Both are complete replacements, never
// partial updates.
type MFeedUpdate struct {
	Sequence     int64                        `json:"sequence"`
	Records      []MTokenRecord               `json:"records"`
	Observations map[string]MPriceObservation `json:"observations"`
	Timestamp    int64                        `json:"timestamp"`
	Err          string                       `json:"error,omitempty"`
}

// -----------------------------------------------------------------------------
// Table Snapshot (what one client sees, already sorted and filtered)
// -----------------------------------------------------------------------------

// Snapshot types, mirroring the table's lifecycle.
const (
	SnapshotInitial = "INITIAL"
	SnapshotUpdate  = "UPDATE"
	SnapshotLoading = "LOADING"
	SnapshotError   = "ERROR"
)

// MTokenRow is a table row ready for display: the record plus the most
// recent trend classification and preformatted numeric fields (formatting
// guards against NaN/Inf upstream, rows never carry "NaN" text).
type MTokenRow struct {
	MTokenRecord
	Trend            MTrend `json:"trend"`
	PriceDisplay     string `json:"price_display"`
	MarketCapDisplay string `json:"market_cap_display"`
	Volume24hDisplay string `json:"volume_24h_display"`
	LiquidityDisplay string `json:"liquidity_display"`
	AgeDisplay       string `json:"age_display"`
}

// MTabCounts carries per-stage row counts for the tab bar; All is the total.
type MTabCounts struct {
	All           int `json:"all"`
	New           int `json:"new"`
	NearMigration int `json:"near_migration"`
	Migrated      int `json:"migrated"`
}

// MTableSnapshot is the derived, ordered, visible subset for one view.
type MTableSnapshot struct {
	Type      string      `json:"type"`
	Rows      []MTokenRow `json:"rows"`
	Tabs      MTabCounts  `json:"tabs"`
	View      MViewState  `json:"view"`
	Timestamp int64       `json:"timestamp"`
	Error     string      `json:"error,omitempty"`
}

// -----------------------------------------------------------------------------
// Detail / Score Breakdown (row modal and score tooltip)
// -----------------------------------------------------------------------------

// MScoreBreakdown splits the audit score into its conceptual weights:
// 40% liquidity lock, 30% community trust, 30% audit. Derived on demand,
// never stored separately.
type MScoreBreakdown struct {
	LiquidityLock  float64 `json:"liquidity_lock"`
	CommunityTrust float64 `json:"community_trust"`
	Audit          float64 `json:"audit"`
	Total          int     `json:"total"`
}

// MTokenDetail is the row-modal payload: the row, its score breakdown,
// exact grouped dollar figures and the recent price history kept by the
// history buffers.
type MTokenDetail struct {
	Row            MTokenRow       `json:"row"`
	Score          MScoreBreakdown `json:"score"`
	MarketCapExact string          `json:"market_cap_exact"`
	LiquidityExact string          `json:"liquidity_exact"`
	History        []MHistoryPoint `json:"history"`
}
