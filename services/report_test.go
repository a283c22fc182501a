package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"cuisine-scene/models"
)

func TestReportRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewReportPrinter(&buf)

	p.Recommendations(denver, []models.Recommendation{{Name: "Tacos El Gordo", Rating: 4.5}})

	out := buf.String()
	assert.Contains(t, out, "highly rated restaurants in Denver, Colorado:")
	assert.Contains(t, out, "Tacos El Gordo - 4.5 stars")
}

func TestReportNoRecommendations(t *testing.T) {
	var buf bytes.Buffer
	NewReportPrinter(&buf).Recommendations(denver, nil)
	assert.Contains(t, buf.String(), "No recommendations available")
}

func TestReportCategoryCount(t *testing.T) {
	var buf bytes.Buffer
	p := NewReportPrinter(&buf)

	p.CategoryCount(denver, models.KnownCount("mexican", 240))
	p.CategoryCount(denver, models.UnknownCount("hawaiian", nil))

	out := buf.String()
	assert.Contains(t, out, "There is 240 Mexican restaurants in Denver, Colorado.")
	assert.Contains(t, out, "The number of Hawaiian restaurants in Denver, Colorado is unknown.")
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	agg := &models.Aggregate{
		Total: 100,
		Rows: []models.AggregateRow{
			{Category: "mexican", Count: 40, Percentage: 40},
			{Category: "italian", Count: 60, Percentage: 60},
		},
		Excluded: []string{"greek"},
	}

	NewReportPrinter(&buf).Summary(denver, agg)

	out := buf.String()
	assert.Contains(t, out, "There is over 100 restaurants in Denver, Colorado.")
	assert.Contains(t, out, "mexican")
	assert.Contains(t, out, "40.00%")
	assert.Contains(t, out, "60.00%")
	assert.Contains(t, out, "Unknown (excluded): greek")
}
