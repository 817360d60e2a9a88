package pipeline

import "token-radar/src/models"

// Score breakdown weights. The audit score is presented as three weighted
// sub-scores that conceptually sum back to the whole; they are derived on
// demand and never stored.
const (
	WeightLiquidityLock  = 0.40
	WeightCommunityTrust = 0.30
	WeightAudit          = 0.30
)

// ScoreBreakdown splits a record's audit score into its display weights.
func ScoreBreakdown(rec models.MTokenRecord) models.MScoreBreakdown {
	total := float64(rec.AuditScore)
	return models.MScoreBreakdown{
		LiquidityLock:  total * WeightLiquidityLock,
		CommunityTrust: total * WeightCommunityTrust,
		Audit:          total * WeightAudit,
		Total:          rec.AuditScore,
	}
}
