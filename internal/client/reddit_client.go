// internal/client/reddit_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"reddit-tools/internal/config"
	"reddit-tools/internal/metrics"
	"reddit-tools/internal/models"
	"reddit-tools/internal/ratelimit"
	"reddit-tools/pkg/httpclient"
)

// RedditClient performs single-shot GETs against Reddit's public .json
// endpoints. No retries, no backoff: quota exhaustion surfaces to the caller
// as a FetchError carrying Reddit's 429.
type RedditClient struct {
	client    *http.Client
	userAgent string
	baseURL   string
	tracker   *ratelimit.Tracker
}

func NewRedditClient(cfg *config.Config, tracker *ratelimit.Tracker) (*RedditClient, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("a descriptive User-Agent is required for Reddit requests")
	}

	httpClient, err := httpclient.New(httpclient.Options{
		Timeout:     cfg.RequestTimeout,
		Fingerprint: cfg.FingerprintTransport,
		ProxyURL:    cfg.ProxyURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &RedditClient{
		client:    httpClient,
		userAgent: cfg.UserAgent,
		baseURL:   cfg.RedditBaseURL,
		tracker:   tracker,
	}, nil
}

// Fetch issues one GET and returns the response body. Rate limit headers are
// recorded on every received response, success or not; a request that fails
// before headers arrive leaves the tracker untouched.
func (r *RedditClient) Fetch(ctx context.Context, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("fetch_error").Inc()
		return nil, &models.FetchError{Path: rawURL, Err: err}
	}
	defer resp.Body.Close()

	r.tracker.Record(resp.Header)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		metrics.FetchesTotal.WithLabelValues("not_found").Inc()
		return nil, &models.NotFoundError{Path: rawURL}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.FetchesTotal.WithLabelValues("fetch_error").Inc()
		return nil, &models.FetchError{Path: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("fetch_error").Inc()
		return nil, &models.FetchError{Path: rawURL, Err: fmt.Errorf("reading body: %w", err)}
	}

	metrics.FetchesTotal.WithLabelValues("ok").Inc()
	return body, nil
}

func (r *RedditClient) SubredditURL(name, sort string, limit int, timeFilter string) string {
	u := fmt.Sprintf("%s/r/%s/%s.json?raw_json=1", r.baseURL, name, sort)

	params := url.Values{}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if sort == "top" && timeFilter != "" {
		params.Set("t", timeFilter)
	}

	if s := params.Encode(); s != "" {
		u += "&" + s
	}
	return u
}

func (r *RedditClient) SubredditAboutURL(name string) string {
	return fmt.Sprintf("%s/r/%s/about.json?raw_json=1", r.baseURL, name)
}

func (r *RedditClient) PostURL(postID string, commentLimit int) string {
	u := fmt.Sprintf("%s/comments/%s.json?raw_json=1", r.baseURL, postID)
	if commentLimit > 0 {
		u += fmt.Sprintf("&limit=%d", commentLimit)
	}
	return u
}

func (r *RedditClient) UserURL(username, kind string, limit int) string {
	u := fmt.Sprintf("%s/user/%s/%s.json?raw_json=1", r.baseURL, username, kind)
	if limit > 0 {
		u += fmt.Sprintf("&limit=%d", limit)
	}
	return u
}

func (r *RedditClient) SearchURL(query, subreddit, sort, timeFilter string, limit int) string {
	params := url.Values{}
	params.Set("q", query)
	if sort != "" {
		params.Set("sort", sort)
	}
	if timeFilter != "" {
		params.Set("t", timeFilter)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	if subreddit != "" {
		params.Set("restrict_sr", "on")
		return fmt.Sprintf("%s/r/%s/search.json?raw_json=1&%s", r.baseURL, subreddit, params.Encode())
	}
	return fmt.Sprintf("%s/search.json?raw_json=1&%s", r.baseURL, params.Encode())
}
