// OMDb implementation of [MovieService]
//
// Response shapes follow https://www.omdbapi.com/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"golang.org/x/time/rate"
)

const omdbBaseURL = "https://www.omdbapi.com/"

// notFoundError is the provider's Error string for a zero-match search.
const notFoundError = "Movie not found!"

// OMDbService implements [MovieService] against the OMDb JSON API.
//
// Requests are bounded by a client-side rate limiter in addition to the UI's
// keystroke debounce, so a burst of searches never floods the provider.
type OMDbService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewOMDbService creates a new OMDb client. An empty baseURL selects the
// public endpoint; rps <= 0 disables client-side limiting.
func NewOMDbService(apiKey, baseURL string, rps float64, client *http.Client) (*OMDbService, error) {
	if apiKey == "" {
		return nil, shared.ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = omdbBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &OMDbService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}, nil
}

func (s *OMDbService) Name() string {
	return "OMDb"
}

// omdbEnvelope carries the provider's status fields present on every
// response shape.
type omdbEnvelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type searchResponse struct {
	omdbEnvelope
	Search       []models.MovieSummary `json:"Search"`
	TotalResults string                `json:"totalResults"`
}

type detailResponse struct {
	omdbEnvelope
	models.MovieDetail
}

// doRequest performs a GET against the provider with the given query
// parameters and decodes the JSON response into result.
func (s *OMDbService) doRequest(ctx context.Context, params url.Values, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	params.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}

// Search returns summaries matching a title fragment, in provider order.
func (s *OMDbService) Search(ctx context.Context, title string) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("s", title)

	var response searchResponse
	if err := s.doRequest(ctx, params, &response); err != nil {
		return nil, err
	}

	if response.Response == "False" {
		if response.Error == notFoundError {
			return []models.MovieSummary{}, nil
		}
		return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, response.Error)
	}

	return response.Search, nil
}

// ByID returns the full record for a provider id.
func (s *OMDbService) ByID(ctx context.Context, id string) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var response detailResponse
	if err := s.doRequest(ctx, params, &response); err != nil {
		return nil, err
	}

	if response.Response == "False" {
		return nil, fmt.Errorf("%w: %s", shared.ErrMovieNotFound, id)
	}

	return &response.MovieDetail, nil
}
