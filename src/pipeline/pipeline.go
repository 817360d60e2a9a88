package pipeline

import "token-radar/src/models"

// -----------------------------------------------------------------------------
// Pipeline Facade
// -----------------------------------------------------------------------------

// Apply derives the visible, ordered subset for one view: advanced criteria
// first, then sort, then the stage tab (which preserves sort order). All
// three steps are pure; the caller's slice is never mutated. The whole list
// is recomputed on every call; inputs are small and there is no
// incremental path.
func Apply(records []models.MTokenRecord, view models.MViewState) []models.MTokenRecord {
	subset := FilterCriteria(records, view.Criteria)
	subset = Sort(subset, view.Sort)
	return FilterStage(subset, view.Stage)
}
