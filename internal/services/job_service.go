package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrJobSearchNotConfigured = errors.New("job search is not configured")

const serperSearchURL = "https://google.serper.dev/search"

// JobService proxies live job-listing searches through the Serper API.
type JobService struct {
	apiKey     string
	httpClient *http.Client
}

// NewJobService creates a new JobService
func NewJobService(apiKey string) *JobService {
	return &JobService{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// JobListing is one parsed search result.
type JobListing struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}

// Search queries for job listings posted within the past week.
func (s *JobService) Search(ctx context.Context, query, location string) ([]JobListing, error) {
	if s.apiKey == "" {
		return nil, ErrJobSearchNotConfigured
	}

	if location == "" {
		location = "India"
	}

	payload, err := json.Marshal(map[string]interface{}{
		"q":   fmt.Sprintf("%s jobs in %s", query, location),
		"num": 15,
		// qdr:w restricts results to the past week
		"tbs": "qdr:w",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperSearchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search returned status %d", resp.StatusCode)
	}

	var body struct {
		Organic []struct {
			Title   string `json:"title"`
			Source  string `json:"source"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
			Date    string `json:"date"`
		} `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	listings := make([]JobListing, 0, len(body.Organic))
	for _, item := range body.Organic {
		listing := JobListing{
			Title:   item.Title,
			Company: item.Source,
			Link:    item.Link,
			Snippet: item.Snippet,
			Date:    item.Date,
		}
		if listing.Title == "" {
			listing.Title = "Job Opportunity"
		}
		if listing.Company == "" {
			listing.Company = "Unknown Company"
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
