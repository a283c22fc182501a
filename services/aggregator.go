package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"cuisine-scene/models"
)

// ErrZeroTotal is returned when there is nothing to compute percentages of.
var ErrZeroTotal = errors.New("aggregate: total count is zero")

var hundred = decimal.NewFromInt(100)

// Aggregate sums the known counts and computes each category's share,
// rounded to two decimal places. Unknown counts are left out of both the
// total and the rows and reported in Excluded. Row order follows input order.
func Aggregate(counts []models.CategoryCount) (*models.Aggregate, error) {
	agg := &models.Aggregate{}

	for _, c := range counts {
		if !c.Known {
			agg.Excluded = append(agg.Excluded, c.Category)
			continue
		}
		agg.Total += c.Count
	}

	if agg.Total == 0 {
		return agg, ErrZeroTotal
	}

	total := decimal.NewFromInt(int64(agg.Total))
	agg.Rows = make([]models.AggregateRow, 0, len(counts)-len(agg.Excluded))
	for _, c := range counts {
		if !c.Known {
			continue
		}
		agg.Rows = append(agg.Rows, models.AggregateRow{
			Category:   c.Category,
			Count:      c.Count,
			Percentage: percentage(c.Count, total),
		})
	}
	return agg, nil
}

func percentage(part int, total decimal.Decimal) float64 {
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(total, 2).
		InexactFloat64()
}
