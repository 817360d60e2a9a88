package pipeline

import (
	"sort"

	"token-radar/src/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// -----------------------------------------------------------------------------
// Sorting
// -----------------------------------------------------------------------------

// Sort orders records by the given spec and returns a new slice; the input
// is never reordered in place. Numeric keys compare by numeric difference,
// stage compares by its fixed lifecycle rank, textual keys compare with
// locale-aware collation. Descending flips the comparison.
func Sort(records []models.MTokenRecord, spec models.MSortSpec) []models.MTokenRecord {
	out := make([]models.MTokenRecord, len(records))
	copy(out, records)

	cmp := comparatorFor(spec.Key)
	desc := spec.Direction == models.SortDesc

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(&out[i], &out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out
}

// -----------------------------------------------------------------------------

// comparatorFor returns a three-way comparator for one sort key.
func comparatorFor(key models.MSortKey) func(a, b *models.MTokenRecord) int {
	switch key {
	case models.SortByMarketCap:
		return func(a, b *models.MTokenRecord) int { return compareFloat(a.MarketCap, b.MarketCap) }
	case models.SortByPrice:
		return func(a, b *models.MTokenRecord) int { return compareFloat(a.Price, b.Price) }
	case models.SortByVolume24h:
		return func(a, b *models.MTokenRecord) int { return compareFloat(a.Volume24h, b.Volume24h) }
	case models.SortByLiquidity:
		return func(a, b *models.MTokenRecord) int { return compareFloat(a.Liquidity, b.Liquidity) }
	case models.SortByLaunchedAt:
		return func(a, b *models.MTokenRecord) int { return compareInt(a.LaunchedAt, b.LaunchedAt) }
	case models.SortByAuditScore:
		return func(a, b *models.MTokenRecord) int { return compareInt(int64(a.AuditScore), int64(b.AuditScore)) }
	case models.SortByStage:
		return func(a, b *models.MTokenRecord) int {
			return compareInt(int64(models.StageRank(a.Stage)), int64(models.StageRank(b.Stage)))
		}
	case models.SortBySymbol:
		c := newCollator()
		return func(a, b *models.MTokenRecord) int { return c.CompareString(a.Symbol, b.Symbol) }
	case models.SortByChain:
		c := newCollator()
		return func(a, b *models.MTokenRecord) int { return c.CompareString(string(a.Chain), string(b.Chain)) }
	case models.SortByPair:
		c := newCollator()
		return func(a, b *models.MTokenRecord) int { return c.CompareString(a.Pair, b.Pair) }
	default: // SortByName and anything unknown
		c := newCollator()
		return func(a, b *models.MTokenRecord) int { return c.CompareString(a.Name, b.Name) }
	}
}

// -----------------------------------------------------------------------------

// newCollator builds a fresh locale-aware collator per sort call; collators
// carry internal buffers and must not be shared across goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// Header-click semantics
// -----------------------------------------------------------------------------

// NextSort resolves a column-header click: clicking the active key toggles
// the direction, clicking a new key resets to that key's type default
// (descending for numeric columns, ascending for textual ones and stage).
func NextSort(current models.MSortSpec, clicked models.MSortKey) models.MSortSpec {
	if current.Key == clicked {
		dir := models.SortAsc
		if current.Direction == models.SortAsc {
			dir = models.SortDesc
		}
		return models.MSortSpec{Key: clicked, Direction: dir}
	}
	return models.MSortSpec{Key: clicked, Direction: models.DefaultDirectionFor(clicked)}
}
