package pipeline

import (
	"testing"

	"token-radar/src/models"
)

func stageMix() []models.MTokenRecord {
	return []models.MTokenRecord{
		{ID: "a", Stage: models.StageMigrated, Chain: models.ChainSolana, AuditScore: 90},
		{ID: "b", Stage: models.StageNew, Chain: models.ChainEthereum, AuditScore: 40},
		{ID: "c", Stage: models.StageNearMigration, Chain: models.ChainSolana, AuditScore: 70},
		{ID: "d", Stage: models.StageNew, Chain: models.ChainBSC, AuditScore: 55},
		{ID: "e", Stage: models.StageMigrated, Chain: models.ChainBase, AuditScore: 20},
	}
}

// -----------------------------------------------------------------------------

func TestFilterStage_AllReturnsEverything(t *testing.T) {
	records := stageMix()

	out := FilterStage(records, models.StageAll)

	if len(out) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(out))
	}
}

func TestFilterStage_ExactMatchPreservingOrder(t *testing.T) {
	records := stageMix()

	out := FilterStage(records, models.StageNew)

	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "d" {
		t.Fatalf("expected [b d], got %v", ids(out))
	}
}

func TestFilterStage_MigratedExcludedFromNewTab(t *testing.T) {
	records := stageMix()

	for _, rec := range FilterStage(records, models.StageNew) {
		if rec.Stage == models.StageMigrated {
			t.Errorf("migrated record %s leaked into the new tab", rec.ID)
		}
	}
}

func TestFilterStage_PerStageSetsPartitionTheUniverse(t *testing.T) {
	records := stageMix()

	seen := make(map[string]int)
	total := 0
	for _, stage := range models.Stages {
		subset := FilterStage(records, stage)
		total += len(subset)
		for _, rec := range subset {
			seen[rec.ID]++
		}
	}

	if total != len(records) {
		t.Errorf("union size %d, want %d", total, len(records))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("record %s appeared %d times across stage subsets", id, count)
		}
	}
	if len(seen) != len(records) {
		t.Errorf("%d distinct records across subsets, want %d", len(seen), len(records))
	}
}

// -----------------------------------------------------------------------------

func TestFilterCriteria_ChainAllowList(t *testing.T) {
	records := stageMix()

	out := FilterCriteria(records, models.MFilterCriteria{Chains: []models.MChain{models.ChainSolana}})

	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("expected [a c], got %v", ids(out))
	}
}

func TestFilterCriteria_MinScore(t *testing.T) {
	records := stageMix()

	out := FilterCriteria(records, models.MFilterCriteria{MinAuditScore: 60})

	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("expected [a c], got %v", ids(out))
	}
}

func TestFilterCriteria_EmptyPassesThrough(t *testing.T) {
	records := stageMix()

	out := FilterCriteria(records, models.MFilterCriteria{})

	if len(out) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(out))
	}
}

// -----------------------------------------------------------------------------

func TestStageCounts(t *testing.T) {
	counts := StageCounts(stageMix())

	if counts.All != 5 || counts.New != 2 || counts.NearMigration != 1 || counts.Migrated != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

// -----------------------------------------------------------------------------

func TestApply_CriteriaThenSortThenStage(t *testing.T) {
	records := stageMix()
	view := models.MViewState{
		Sort:     models.MSortSpec{Key: models.SortByAuditScore, Direction: models.SortDesc},
		Stage:    models.StageMigrated,
		Criteria: models.MFilterCriteria{MinAuditScore: 10},
	}

	out := Apply(records, view)

	// Migrated records are a (90) and e (20); score-descending keeps a first.
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "e" {
		t.Fatalf("expected [a e], got %v", ids(out))
	}
}

// -----------------------------------------------------------------------------

func ids(records []models.MTokenRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}
