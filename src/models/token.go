package models

// -----------------------------------------------------------------------------
// Token Record (the unit the whole table is built from)
// -----------------------------------------------------------------------------

// MStage is the lifecycle stage of a token. The order below is the canonical
// rank order used by the sort pipeline: new < near-migration < migrated.
type MStage string

const (
	StageNew           MStage = "new"
	StageNearMigration MStage = "near-migration"
	StageMigrated      MStage = "migrated"

	// StageAll is not a real stage; it is the tab selection meaning "no filter".
	StageAll MStage = "all"
)

// Stages lists the real lifecycle stages in rank order.
var Stages = []MStage{StageNew, StageNearMigration, StageMigrated}

// StageRank returns the fixed rank of a stage for sorting purposes.
// Unknown stages sort after everything else.
func StageRank(s MStage) int {
	switch s {
	case StageNew:
		return 0
	case StageNearMigration:
		return 1
	case StageMigrated:
		return 2
	}
	return 3
}

// -----------------------------------------------------------------------------

// MChain identifies the network a token trades on.
type MChain string

const (
	ChainSolana   MChain = "solana"
	ChainEthereum MChain = "ethereum"
	ChainBase     MChain = "base"
	ChainBSC      MChain = "bsc"
)

// Chains lists all supported networks.
var Chains = []MChain{ChainSolana, ChainEthereum, ChainBase, ChainBSC}

// -----------------------------------------------------------------------------

// MTokenRecord represents one row of the discovery table.
// ID uniquely identifies a record for the session lifetime; records are never
// removed, only mutated in place (price/volume) by the feed.
type MTokenRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	Chain      MChain  `json:"chain"`
	Pair       string  `json:"pair"`
	Stage      MStage  `json:"stage"`
	MarketCap  float64 `json:"market_cap"`
	Price      float64 `json:"price"`
	Volume24h  float64 `json:"volume_24h"`
	Liquidity  float64 `json:"liquidity"`
	LaunchedAt int64   `json:"launched_at"` // Unix timestamp in milliseconds
	AuditScore int     `json:"audit_score"` // 0..100
}
