package pipeline

import (
	"math"
	"testing"

	"token-radar/src/models"
)

func TestScoreBreakdown_WeightsSumToTotal(t *testing.T) {
	rec := models.MTokenRecord{AuditScore: 87}

	breakdown := ScoreBreakdown(rec)

	sum := breakdown.LiquidityLock + breakdown.CommunityTrust + breakdown.Audit
	if math.Abs(sum-float64(rec.AuditScore)) > 1e-9 {
		t.Errorf("weights sum to %v, want %d", sum, rec.AuditScore)
	}
	if breakdown.LiquidityLock != 87*0.4 {
		t.Errorf("liquidity-lock weight: got %v", breakdown.LiquidityLock)
	}
	if breakdown.Total != 87 {
		t.Errorf("total: got %d", breakdown.Total)
	}
}
