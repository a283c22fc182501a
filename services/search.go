package services

import (
	"context"

	"cuisine-scene/models"
)

// Searcher is the business search collaborator. *yelp.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}
