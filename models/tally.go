package models

import "time"

// DefaultCuisines is the canonical ordered list of cuisine categories.
var DefaultCuisines = []string{
	"mexican", "american", "korean", "japanese", "italian",
	"chinese", "thai", "mediterranean", "indian", "vietnamese",
	"latin", "french", "filipino", "greek", "hawaiian",
}

// CategoryCount is the outcome of counting one cuisine category.
// When Known is false the count could not be determined and Count is
// meaningless; Err carries the transport failure, if any.
type CategoryCount struct {
	Category string
	Count    int
	Known    bool
	Err      error
}

// KnownCount builds a resolved CategoryCount.
func KnownCount(category string, count int) CategoryCount {
	return CategoryCount{Category: category, Count: count, Known: true}
}

// UnknownCount builds an unresolved CategoryCount.
func UnknownCount(category string, err error) CategoryCount {
	return CategoryCount{Category: category, Err: err}
}

// AggregateRow is one line of the aggregated table.
type AggregateRow struct {
	Category   string
	Count      int
	Percentage float64
}

// Aggregate is the aggregated table. Excluded lists categories whose count
// was unknown; they contribute to neither Total nor Rows.
type Aggregate struct {
	Total    int
	Rows     []AggregateRow
	Excluded []string
}

// Report is everything produced by one run.
type Report struct {
	RunID           string
	Locality        Locality
	Recommendations []Recommendation
	Aggregate       *Aggregate
	CreatedAt       time.Time
}
