package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUpstream = errors.New("search provider request failed")

// JobListing is one normalized job-search result.
type JobListing struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PostedAt    string `json:"postedAt"`
}

type jobSearchResponse struct {
	JobsResults []struct {
		Title       string `json:"title"`
		CompanyName string `json:"company_name"`
		Location    string `json:"location"`
		Description string `json:"description"`
		ShareLink   string `json:"share_link"`
		DetectedExtensions struct {
			PostedAt string `json:"posted_at"`
		} `json:"detected_extensions"`
	} `json:"jobs_results"`
}

// JobSearchClient queries the jobs search API (SerpAPI-compatible).
type JobSearchClient struct {
	client *resty.Client
	apiKey string
}

func NewJobSearchClient(apiKey string) *JobSearchClient {
	client := resty.New().
		SetBaseURL("https://serpapi.com").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &JobSearchClient{client: client, apiKey: apiKey}
}

func (c *JobSearchClient) Search(ctx context.Context, query, location string) ([]JobListing, error) {
	var out jobSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":   "google_jobs",
			"q":        query,
			"location": location,
			"api_key":  c.apiKey,
		}).
		SetResult(&out).
		Get("/search.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	listings := make([]JobListing, 0, len(out.JobsResults))
	for _, j := range out.JobsResults {
		listings = append(listings, JobListing{
			Title:       j.Title,
			CompanyName: j.CompanyName,
			Location:    j.Location,
			Description: j.Description,
			Link:        j.ShareLink,
			PostedAt:    j.DetectedExtensions.PostedAt,
		})
	}
	return listings, nil
}
