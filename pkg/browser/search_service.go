package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

/*
ServiceStrategy queries a SearxNG-compatible search service for structured
JSON results. It is the preferred strategy whenever a service base URL is
configured.
*/
type ServiceStrategy struct {
	BaseURL string
	Client  *http.Client
}

type serviceResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (s *ServiceStrategy) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

/*
Search issues the query against the service and returns up to maxResults
hits in service order. Results with an empty title or url are dropped.
Transport errors, non-200 responses and unparseable bodies all return a
non-nil error so the caller can tell a degraded search from a genuine
zero-match outcome.
*/
func (s *ServiceStrategy) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf(
		"%s/search?q=%s&format=json",
		strings.TrimRight(s.BaseURL, "/"),
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search service request: %w", err)
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("search service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service returned status %d", resp.StatusCode)
	}

	var body serviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("search service response: %w", err)
	}

	results := make([]Result, 0, maxResults)

	for _, hit := range body.Results {
		if len(results) >= maxResults {
			break
		}

		if hit.Title == "" || hit.URL == "" {
			continue
		}

		results = append(results, Result{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: hit.Content,
		})
	}

	return results, nil
}
