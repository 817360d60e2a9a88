package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// -----------------------------------------------------------------------------
// Display formatting. Every formatter guards against NaN/Inf: invalid values
// render as a dash instead of leaking "NaN" into the table.
// -----------------------------------------------------------------------------

const invalidPlaceholder = "—"

// FormatCompact renders a dollar amount in the table's compact style:
// $1.2B / $3.4M / $56.7K, plain below a thousand.
func FormatCompact(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidPlaceholder
	}

	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%sB", trimmed(v/1e9, 1))
	case abs >= 1e6:
		return fmt.Sprintf("$%sM", trimmed(v/1e6, 1))
	case abs >= 1e3:
		return fmt.Sprintf("$%sK", trimmed(v/1e3, 1))
	}
	return fmt.Sprintf("$%s", trimmed(v, 2))
}

// -----------------------------------------------------------------------------

// FormatUSD renders an exact dollar amount with digit grouping ($1,234,567.89).
// Used where the compact style would hide precision, like the detail modal.
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidPlaceholder
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f", v)
}

// -----------------------------------------------------------------------------

// FormatPrice renders a token price. Micro-cap prices need more precision
// than fiat amounts: below a cent we keep enough digits to show movement.
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalidPlaceholder
	}

	switch {
	case v >= 1:
		return fmt.Sprintf("$%s", trimmed(v, 2))
	case v >= 0.01:
		return fmt.Sprintf("$%s", trimmed(v, 4))
	}
	return fmt.Sprintf("$%s", trimmed(v, 8))
}

// -----------------------------------------------------------------------------

// trimmed rounds with decimal arithmetic and strips trailing zeros, so
// 1.50 renders as "1.5" and 2.00 as "2".
func trimmed(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)
	return d.String()
}

// -----------------------------------------------------------------------------

// Age renders how long ago a token launched, in the table's shorthand
// (45s, 12m, 3h, 2d).
func Age(launchedAtMs int64, now time.Time) string {
	if launchedAtMs <= 0 {
		return invalidPlaceholder
	}

	elapsed := now.Sub(time.UnixMilli(launchedAtMs))
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh", int(elapsed.Hours()))
	}
	return fmt.Sprintf("%dd", int(elapsed.Hours()/24))
}
