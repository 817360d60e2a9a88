package models

// -----------------------------------------------------------------------------
// View State (what one connected client is looking at)
// -----------------------------------------------------------------------------

// MSortKey names a sortable column of the table. Every listed column is
// sortable; there is no "unsorted" key.
type MSortKey string

const (
	SortByName       MSortKey = "name"
	SortBySymbol     MSortKey = "symbol"
	SortByChain      MSortKey = "chain"
	SortByPair       MSortKey = "pair"
	SortByStage      MSortKey = "stage"
	SortByMarketCap  MSortKey = "market_cap"
	SortByPrice      MSortKey = "price"
	SortByVolume24h  MSortKey = "volume_24h"
	SortByLiquidity  MSortKey = "liquidity"
	SortByLaunchedAt MSortKey = "launched_at"
	SortByAuditScore MSortKey = "audit_score"
)

// SortKeys lists all sortable columns in table order.
var SortKeys = []MSortKey{
	SortByName, SortBySymbol, SortByChain, SortByPair, SortByStage,
	SortByMarketCap, SortByPrice, SortByVolume24h, SortByLiquidity,
	SortByLaunchedAt, SortByAuditScore,
}

// IsNumericSortKey reports whether a key compares by numeric difference.
// Launch time counts as numeric (it is a timestamp).
func IsNumericSortKey(k MSortKey) bool {
	switch k {
	case SortByMarketCap, SortByPrice, SortByVolume24h, SortByLiquidity,
		SortByLaunchedAt, SortByAuditScore:
		return true
	}
	return false
}

// -----------------------------------------------------------------------------

// MSortDirection is asc or desc.
type MSortDirection string

const (
	SortAsc  MSortDirection = "asc"
	SortDesc MSortDirection = "desc"
)

// MSortSpec is the active sort key and direction.
// Default: market cap, descending.
type MSortSpec struct {
	Key       MSortKey       `json:"key"`
	Direction MSortDirection `json:"direction"`
}

// DefaultSortSpec returns the table's initial sort.
func DefaultSortSpec() MSortSpec {
	return MSortSpec{Key: SortByMarketCap, Direction: SortDesc}
}

// DefaultDirectionFor returns the direction a freshly clicked key starts with:
// descending for numeric keys, ascending for textual keys and for stage.
func DefaultDirectionFor(k MSortKey) MSortDirection {
	if IsNumericSortKey(k) {
		return SortDesc
	}
	return SortAsc
}

// -----------------------------------------------------------------------------

// MFilterCriteria holds the advanced-filter modal's criteria.
// An empty chain list means "any chain"; MinAuditScore of 0 means no floor.
type MFilterCriteria struct {
	Chains        []MChain `json:"chains"`
	MinAuditScore int      `json:"min_audit_score"`
}

// -----------------------------------------------------------------------------

// MViewState is the full per-client view configuration: sort, active stage
// tab and advanced-filter criteria. It is the input of the pipeline facade.
type MViewState struct {
	Sort     MSortSpec       `json:"sort"`
	Stage    MStage          `json:"stage"`
	Criteria MFilterCriteria `json:"criteria"`
}

// DefaultViewState is what every client starts with: market cap descending,
// "all" tab, no advanced criteria.
func DefaultViewState() MViewState {
	return MViewState{
		Sort:  DefaultSortSpec(),
		Stage: StageAll,
	}
}

// -----------------------------------------------------------------------------
// View Command (client messages over the WebSocket)
// -----------------------------------------------------------------------------

// MViewCommand is what a connected client sends to change what it sees.
// Command "view" replaces the stage tab and/or advanced criteria;
// a non-empty SortKey is treated as a header click (toggle semantics).
type MViewCommand struct {
	Command       string   `json:"command"`
	SortKey       MSortKey `json:"sortKey"`
	Stage         MStage   `json:"stage"`
	Chains        []MChain `json:"chains"`
	MinAuditScore int      `json:"minAuditScore"`
}
