package pipeline

import "token-radar/src/models"

// -----------------------------------------------------------------------------
// Filtering
// -----------------------------------------------------------------------------

// FilterStage returns the subset whose stage matches the tab selection,
// preserving input order. StageAll returns everything.
func FilterStage(records []models.MTokenRecord, stage models.MStage) []models.MTokenRecord {
	if stage == models.StageAll {
		out := make([]models.MTokenRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]models.MTokenRecord, 0, len(records))
	for _, rec := range records {
		if rec.Stage == stage {
			out = append(out, rec)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// FilterCriteria applies the advanced-filter criteria: chain allow-list and
// minimum audit score. Empty criteria pass everything through.
func FilterCriteria(records []models.MTokenRecord, criteria models.MFilterCriteria) []models.MTokenRecord {
	if len(criteria.Chains) == 0 && criteria.MinAuditScore <= 0 {
		out := make([]models.MTokenRecord, len(records))
		copy(out, records)
		return out
	}

	allowed := make(map[models.MChain]struct{}, len(criteria.Chains))
	for _, c := range criteria.Chains {
		allowed[c] = struct{}{}
	}

	out := make([]models.MTokenRecord, 0, len(records))
	for _, rec := range records {
		if len(allowed) > 0 {
			if _, ok := allowed[rec.Chain]; !ok {
				continue
			}
		}
		if rec.AuditScore < criteria.MinAuditScore {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// -----------------------------------------------------------------------------

// StageCounts tallies records per lifecycle stage for the tab bar.
func StageCounts(records []models.MTokenRecord) models.MTabCounts {
	counts := models.MTabCounts{All: len(records)}
	for _, rec := range records {
		switch rec.Stage {
		case models.StageNew:
			counts.New++
		case models.StageNearMigration:
			counts.NearMigration++
		case models.StageMigrated:
			counts.Migrated++
		}
	}
	return counts
}
