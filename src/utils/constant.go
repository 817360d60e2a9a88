package utils

// -----------------------------------------------------------------------------

// History sizing. At the reference 1-second tick, 300 points cover the last
// five minutes of movement, which is all the detail modal charts.
const (
	DefaultHistoryPoints    = 300
	DefaultRetentionSeconds = 300
)

// -----------------------------------------------------------------------------

// HistoryCapacityFor sizes a per-token buffer from the tick interval so the
// kept window stays near retentionSeconds regardless of configuration.
func HistoryCapacityFor(tickIntervalMs, retentionSeconds int) int {
	if tickIntervalMs <= 0 || retentionSeconds <= 0 {
		return DefaultHistoryPoints
	}
	points := retentionSeconds * 1000 / tickIntervalMs
	if points < 1 {
		return 1
	}
	return points
}
