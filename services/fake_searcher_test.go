package services

import (
	"context"
	"errors"

	"cuisine-scene/models"
)

// fakeSearcher answers searches from a fixed table keyed by term.
type fakeSearcher struct {
	responses map[string]*models.SearchResponse
	errs      map[string]error
	requests  []models.SearchRequest
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		responses: make(map[string]*models.SearchResponse),
		errs:      make(map[string]error),
	}
}

func (f *fakeSearcher) Search(_ context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	f.requests = append(f.requests, req)
	if err, ok := f.errs[req.Term]; ok {
		return nil, err
	}
	if res, ok := f.responses[req.Term]; ok {
		return res, nil
	}
	return nil, errors.New("no such term")
}

func open(name string, rating float64) models.BusinessListing {
	return models.BusinessListing{Name: name, Rating: rating}
}

func closed(name string, rating float64) models.BusinessListing {
	return models.BusinessListing{Name: name, Rating: rating, IsClosed: true}
}
