package models

// SearchRequest describes one business search against the directory service.
// Limit of 0 leaves the page size to the service.
type SearchRequest struct {
	Term     string
	Location string
	Limit    int
}

// Category is a directory category attached to a business.
type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// BusinessListing is a single business record as returned by a search.
type BusinessListing struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"review_count"`
	IsClosed    bool       `json:"is_closed"`
	Categories  []Category `json:"categories"`
	URL         string     `json:"url"`
}

// SearchResponse is one page of search results plus the service's reported
// total number of matches, which may exceed len(Businesses).
type SearchResponse struct {
	Businesses []BusinessListing `json:"businesses"`
	Total      int               `json:"total"`
}

// Recommendation is a highly rated, open business.
type Recommendation struct {
	Name   string
	Rating float64
}
