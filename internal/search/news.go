package search

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Article is one normalized news result.
type Article struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type newsResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewsClient queries the news API for industry headlines.
type NewsClient struct {
	client *resty.Client
	apiKey string
}

func NewNewsClient(apiKey string) *NewsClient {
	client := resty.New().
		SetBaseURL("https://newsapi.org").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &NewsClient{client: client, apiKey: apiKey}
}

func (c *NewsClient) TopHeadlines(ctx context.Context, topic string) ([]Article, error) {
	if topic == "" {
		topic = "technology careers"
	}

	var out newsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        topic,
			"sortBy":   "publishedAt",
			"pageSize": "20",
		}).
		SetHeader("X-Api-Key", c.apiKey).
		SetResult(&out).
		Get("/v2/everything")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	articles := make([]Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Source:      a.Source.Name,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
