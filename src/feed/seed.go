package feed

import (
	"fmt"
	"math/rand"
	"time"

	"token-radar/src/models"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Synthetic Universe
// -----------------------------------------------------------------------------

// Name fragments combined into token names. The universe is deterministic in
// structure (stage round-robin, name cycling) and randomized in magnitude.
var (
	namePrefixes = []string{
		"Moon", "Giga", "Turbo", "Pepe", "Doge", "Shadow", "Quantum", "Astro",
		"Hyper", "Neon", "Degen", "Frost", "Solar", "Pixel", "Rocket", "Nova",
	}
	nameSuffixes = []string{
		"Cat", "Inu", "Frog", "Punk", "Whale", "Lord", "Bot", "Chad",
	}
	quoteSymbols = map[models.MChain]string{
		models.ChainSolana:   "SOL",
		models.ChainEthereum: "ETH",
		models.ChainBase:     "ETH",
		models.ChainBSC:      "BNB",
	}
)

// -----------------------------------------------------------------------------

// Universe builds the fixed-size starting record list. Stage is assigned
// round-robin over the three lifecycle stages; prices, caps, volumes,
// liquidity, launch times and audit scores are drawn from the given rng.
func Universe(size int, rng *rand.Rand, now time.Time) []models.MTokenRecord {
	records := make([]models.MTokenRecord, 0, size)

	for i := 0; i < size; i++ {
		name := namePrefixes[i%len(namePrefixes)] + nameSuffixes[(i/len(namePrefixes))%len(nameSuffixes)]
		symbol := symbolFor(name, i)
		chain := models.Chains[rng.Intn(len(models.Chains))]
		stage := models.Stages[i%len(models.Stages)]

		// Later stages have had time to grow: scale caps/liquidity by stage.
		scale := float64(models.StageRank(stage))*4 + 1

		// Launched between 2 minutes and ~48h ago, newer for StageNew.
		maxAge := time.Duration(scale) * 12 * time.Hour
		age := time.Duration(rng.Int63n(int64(maxAge-2*time.Minute))) + 2*time.Minute

		records = append(records, models.MTokenRecord{
			ID:         uuid.NewString(),
			Name:       name,
			Symbol:     symbol,
			Chain:      chain,
			Pair:       fmt.Sprintf("%s/%s", symbol, quoteSymbols[chain]),
			Stage:      stage,
			MarketCap:  (5_000 + rng.Float64()*120_000) * scale,
			Price:      0.000004 + rng.Float64()*0.002,
			Volume24h:  (1_000 + rng.Float64()*80_000) * scale,
			Liquidity:  (2_000 + rng.Float64()*40_000) * scale,
			LaunchedAt: now.Add(-age).UnixMilli(),
			AuditScore: 20 + rng.Intn(81),
		})
	}

	return records
}

// -----------------------------------------------------------------------------

// symbolFor derives a short uppercase ticker from the token name, suffixed
// with the ordinal when names cycle so symbols stay distinct.
func symbolFor(name string, i int) string {
	symbol := ""
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			symbol += string(r)
		}
	}
	if len(symbol) < 3 {
		upper := []rune(name)
		for _, r := range upper {
			if len(symbol) >= 3 {
				break
			}
			if r >= 'a' && r <= 'z' {
				symbol += string(r - 32)
			}
		}
	}
	cycle := i / (len(namePrefixes) * len(nameSuffixes))
	if cycle > 0 {
		symbol = fmt.Sprintf("%s%d", symbol, cycle+1)
	}
	return symbol
}
