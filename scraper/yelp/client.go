package yelp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"cuisine-scene/models"
	"cuisine-scene/utils"
)

const (
	DefaultBaseURL = "https://api.yelp.com"
	searchPath     = "/v3/businesses/search"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = errors.New("yelp: missing API key")

// APIError is a non-2xx response from the Fusion API.
type APIError struct {
	Status      int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("yelp: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("yelp: %s (status %d): %s", e.Code, e.Status, e.Description)
}

type errorBody struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type ClientOpts struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	RateLimitMs int
	Logger      *utils.Logger
}

// Client talks to the Yelp Fusion business search endpoint.
type Client struct {
	httpClient *resty.Client
	logger     *utils.Logger
	retry      *utils.RetryConfig
	limiter    *utils.RateLimiter
}

func NewClient(opts ClientOpts) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := DefaultBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(opts.APIKey).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
		retry: &utils.RetryConfig{
			MaxAttempts: opts.MaxAttempts,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
		limiter: utils.NewRateLimiter(opts.RateLimitMs),
	}, nil
}

// Search runs one business search and returns the first page of results
// together with the reported total.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	params := map[string]string{
		"term":     req.Term,
		"location": req.Location,
	}
	if req.Limit > 0 {
		params["limit"] = strconv.Itoa(req.Limit)
	}

	var result *models.SearchResponse
	err := c.retry.Do(ctx, "yelp search "+strconv.Quote(req.Term), func() error {
		c.limiter.Wait()

		body := &models.SearchResponse{}
		res, err := handleError(c.httpClient.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(body).
			SetError(&errorBody{}).
			Get(searchPath))
		if err != nil {
			return err
		}

		c.logger.Debug("[yelp] term=%q location=%q → %d businesses, total %d (%s)",
			req.Term, req.Location, len(body.Businesses), body.Total, res.Time())
		result = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// handleError turns failing responses (>399 status code) into an *APIError.
// Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, fmt.Errorf("yelp: request: %w", err)
	}
	if res.IsError() {
		apiErr := &APIError{Status: res.StatusCode()}
		if body, ok := res.Error().(*errorBody); ok && body != nil {
			apiErr.Code = body.Error.Code
			apiErr.Description = body.Error.Description
		}
		return res, apiErr
	}
	return res, nil
}
