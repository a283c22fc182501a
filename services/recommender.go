package services

import (
	"context"
	"fmt"

	"cuisine-scene/models"
	"cuisine-scene/utils"
)

const (
	RecommendTerm          = "restaurant"
	DefaultRatingThreshold = 4.0
)

// Recommender picks open, highly rated restaurants at a locality.
type Recommender struct {
	searcher Searcher
	logger   *utils.Logger
}

func NewRecommender(searcher Searcher, logger *utils.Logger) *Recommender {
	return &Recommender{searcher: searcher, logger: logger}
}

// Recommend returns open businesses rated strictly above threshold, in the
// order the service returned them. The result is never nil; on a failed
// search it is empty and the error is returned alongside for logging.
func (r *Recommender) Recommend(ctx context.Context, locality models.Locality, threshold float64) ([]models.Recommendation, error) {
	recs := []models.Recommendation{}

	res, err := r.searcher.Search(ctx, models.SearchRequest{
		Term:     RecommendTerm,
		Location: locality.String(),
	})
	if err != nil {
		return recs, fmt.Errorf("recommend: %w", err)
	}
	if res == nil {
		return recs, nil
	}

	for _, b := range res.Businesses {
		if !b.IsClosed && b.Rating > threshold {
			recs = append(recs, models.Recommendation{Name: b.Name, Rating: b.Rating})
		}
	}
	r.logger.Debug("[recommend] %d of %d businesses in %s above %.1f",
		len(recs), len(res.Businesses), locality, threshold)
	return recs, nil
}
