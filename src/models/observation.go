package models

// -----------------------------------------------------------------------------
// Price Observation (per-tick trend memory)
// -----------------------------------------------------------------------------

// MTrend classifies a single tick's price movement.
type MTrend string

const (
	TrendUp   MTrend = "up"
	TrendDown MTrend = "down"
	TrendFlat MTrend = "flat"
)

// MPriceObservation remembers the price a record had immediately before the
// most recent tick and how the tick moved it. The observation map is replaced
// wholesale every tick; it only exists to drive transient row styling.
type MPriceObservation struct {
	PreviousPrice float64 `json:"previous_price"`
	Trend         MTrend  `json:"trend"`
}

// ClassifyTrend compares a post-tick price against the pre-tick price.
func ClassifyTrend(oldPrice, newPrice float64) MTrend {
	switch {
	case newPrice > oldPrice:
		return TrendUp
	case newPrice < oldPrice:
		return TrendDown
	}
	return TrendFlat
}
