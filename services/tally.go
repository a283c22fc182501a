package services

import (
	"context"
	"errors"
	"fmt"

	"cuisine-scene/models"
	"cuisine-scene/utils"
)

// errNoOpenBusiness marks a response with no open business in it, which
// leaves the category count undetermined.
var errNoOpenBusiness = errors.New("no open business in response")

// CategoryTally counts businesses per cuisine category, one search each.
type CategoryTally struct {
	searcher Searcher
	limit    int
	logger   *utils.Logger
}

// NewCategoryTally creates a CategoryTally. limit is the page size requested
// per search; 0 leaves it to the service.
func NewCategoryTally(searcher Searcher, limit int, logger *utils.Logger) *CategoryTally {
	return &CategoryTally{searcher: searcher, limit: limit, logger: logger}
}

// Tally searches each category in order and records the reported total.
// Categories are independent: a failure leaves that category unknown and the
// rest are still counted.
func (t *CategoryTally) Tally(ctx context.Context, locality models.Locality, categories []string) []models.CategoryCount {
	counts := make([]models.CategoryCount, 0, len(categories))
	for _, category := range categories {
		c := t.count(ctx, locality, category)
		if c.Known {
			t.logger.Debug("[tally] %s → %d", category, c.Count)
		} else {
			t.logger.Warn("[tally] %s count unknown: %v", category, c.Err)
		}
		counts = append(counts, c)
	}
	return counts
}

func (t *CategoryTally) count(ctx context.Context, locality models.Locality, category string) models.CategoryCount {
	res, err := t.searcher.Search(ctx, models.SearchRequest{
		Term:     category,
		Location: locality.String(),
		Limit:    t.limit,
	})
	if err != nil {
		return models.UnknownCount(category, fmt.Errorf("search %q: %w", category, err))
	}
	if res == nil || !hasOpenBusiness(res.Businesses) {
		return models.UnknownCount(category, errNoOpenBusiness)
	}
	return models.KnownCount(category, res.Total)
}

func hasOpenBusiness(businesses []models.BusinessListing) bool {
	for _, b := range businesses {
		if !b.IsClosed {
			return true
		}
	}
	return false
}
