package pipeline

import (
	"testing"

	"token-radar/src/models"
)

func capRecords(caps ...float64) []models.MTokenRecord {
	records := make([]models.MTokenRecord, len(caps))
	for i, c := range caps {
		records[i] = models.MTokenRecord{
			ID:        string(rune('a' + i)),
			Name:      string(rune('a' + i)),
			MarketCap: c,
			Stage:     models.StageNew,
		}
	}
	return records
}

// -----------------------------------------------------------------------------

func TestSort_DefaultMarketCapDescending(t *testing.T) {
	// Reference scenario: caps [100, 300, 200] under the default sort.
	records := capRecords(100, 300, 200)

	sorted := Sort(records, models.DefaultSortSpec())

	want := []float64{300, 200, 100}
	for i, cap := range want {
		if sorted[i].MarketCap != cap {
			t.Errorf("index %d: got cap %v, want %v", i, sorted[i].MarketCap, cap)
		}
	}
}

func TestSort_HeaderClickTogglesToAscending(t *testing.T) {
	// Clicking the active market-cap header flips descending to ascending.
	records := capRecords(100, 300, 200)
	spec := NextSort(models.DefaultSortSpec(), models.SortByMarketCap)

	if spec.Direction != models.SortAsc {
		t.Fatalf("expected ascending after toggle, got %s", spec.Direction)
	}

	sorted := Sort(records, spec)
	want := []float64{100, 200, 300}
	for i, cap := range want {
		if sorted[i].MarketCap != cap {
			t.Errorf("index %d: got cap %v, want %v", i, sorted[i].MarketCap, cap)
		}
	}
}

func TestSort_DoubleToggleRestoresOrder(t *testing.T) {
	records := capRecords(100, 300, 200, 50, 400)

	original := Sort(records, models.DefaultSortSpec())

	spec := NextSort(models.DefaultSortSpec(), models.SortByMarketCap) // asc
	spec = NextSort(spec, models.SortByMarketCap)                      // back to desc
	again := Sort(records, spec)

	for i := range original {
		if original[i].ID != again[i].ID {
			t.Errorf("index %d: order changed after double toggle (%s vs %s)",
				i, original[i].ID, again[i].ID)
		}
	}
}

// -----------------------------------------------------------------------------

func TestSort_StageRankOrder(t *testing.T) {
	// Every permutation of the three stages must come out in rank order.
	permutations := [][]models.MStage{
		{models.StageNew, models.StageNearMigration, models.StageMigrated},
		{models.StageNew, models.StageMigrated, models.StageNearMigration},
		{models.StageNearMigration, models.StageNew, models.StageMigrated},
		{models.StageNearMigration, models.StageMigrated, models.StageNew},
		{models.StageMigrated, models.StageNew, models.StageNearMigration},
		{models.StageMigrated, models.StageNearMigration, models.StageNew},
	}

	for _, perm := range permutations {
		records := make([]models.MTokenRecord, len(perm))
		for i, stage := range perm {
			records[i] = models.MTokenRecord{ID: string(rune('a' + i)), Stage: stage}
		}

		sorted := Sort(records, models.MSortSpec{Key: models.SortByStage, Direction: models.SortAsc})

		want := []models.MStage{models.StageNew, models.StageNearMigration, models.StageMigrated}
		for i, stage := range want {
			if sorted[i].Stage != stage {
				t.Errorf("input %v: index %d got stage %s, want %s", perm, i, sorted[i].Stage, stage)
			}
		}
	}
}

func TestSort_TextualKeysIgnoreCase(t *testing.T) {
	records := []models.MTokenRecord{
		{ID: "1", Name: "zeta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "miko"},
	}

	sorted := Sort(records, models.MSortSpec{Key: models.SortByName, Direction: models.SortAsc})

	want := []string{"Alpha", "miko", "zeta"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("index %d: got %s, want %s", i, sorted[i].Name, name)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := capRecords(100, 300, 200)

	Sort(records, models.DefaultSortSpec())

	want := []float64{100, 300, 200}
	for i, cap := range want {
		if records[i].MarketCap != cap {
			t.Errorf("input slice reordered at index %d", i)
		}
	}
}

// -----------------------------------------------------------------------------

func TestNextSort_NewKeyUsesTypeDefault(t *testing.T) {
	cases := []struct {
		clicked models.MSortKey
		want    models.MSortDirection
	}{
		{models.SortByPrice, models.SortDesc},
		{models.SortByVolume24h, models.SortDesc},
		{models.SortByLaunchedAt, models.SortDesc},
		{models.SortByName, models.SortAsc},
		{models.SortByChain, models.SortAsc},
		{models.SortByStage, models.SortAsc},
	}

	for _, tc := range cases {
		spec := NextSort(models.DefaultSortSpec(), tc.clicked)
		if spec.Key != tc.clicked || spec.Direction != tc.want {
			t.Errorf("clicking %s: got (%s, %s), want (%s, %s)",
				tc.clicked, spec.Key, spec.Direction, tc.clicked, tc.want)
		}
	}
}
