// internal/tools/service_test.go
package tools_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-tools/internal/config"
	"reddit-tools/internal/parser"
	"reddit-tools/internal/ratelimit"
	"reddit-tools/internal/tools"
)

// mockClient implements client.RedditClientInterface with overridable funcs.
type mockClient struct {
	FetchFunc func(ctx context.Context, url string) (json.RawMessage, error)

	lastURL string
}

func (m *mockClient) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	m.lastURL = url
	return m.FetchFunc(ctx, url)
}

func (m *mockClient) SubredditURL(name, sort string, limit int, timeFilter string) string {
	return fmt.Sprintf("/r/%s/%s.json?limit=%d&t=%s", name, sort, limit, timeFilter)
}

func (m *mockClient) SubredditAboutURL(name string) string {
	return fmt.Sprintf("/r/%s/about.json", name)
}

func (m *mockClient) PostURL(postID string, commentLimit int) string {
	return fmt.Sprintf("/comments/%s.json?limit=%d", postID, commentLimit)
}

func (m *mockClient) UserURL(username, kind string, limit int) string {
	return fmt.Sprintf("/user/%s/%s.json?limit=%d", username, kind, limit)
}

func (m *mockClient) SearchURL(query, subreddit, sort, timeFilter string, limit int) string {
	return fmt.Sprintf("/search.json?q=%s&sr=%s&sort=%s&t=%s&limit=%d", query, subreddit, sort, timeFilter, limit)
}

const listingFixture = `{"data": {"children": [
	{"kind": "t3", "data": {"id": "abc", "title": "Hello world", "author": "u1", "subreddit": "python", "score": 42, "created_utc": 1620000000, "permalink": "/r/python/comments/abc/hello_world"}}
]}}`

const postFixture = `[
	{"data": {"children": [
		{"kind": "t3", "data": {"id": "abc", "title": "Hello world", "selftext": "Body", "author": "u1", "subreddit": "python", "score": 42, "num_comments": 1, "created_utc": 1620000000, "permalink": "/r/python/comments/abc/hello_world", "is_self": true}}
	]}},
	{"data": {"children": [
		{"kind": "t1", "data": {"id": "c1", "author": "alice", "body": "Nice", "score": 3, "created_utc": 1620000100, "replies": ""}}
	]}}
]`

const userFixture = `{"data": {"children": [
	{"kind": "t1", "data": {"body": "A comment", "subreddit": "python", "score": 2, "permalink": "/r/python/comments/abc/x/c1"}}
]}}`

const aboutFixture = `{"data": {"title": "Python", "public_description": "News", "description": "", "subscribers": 100, "created_utc": 1201242956}}`

func testConfig() *config.Config {
	return &config.Config{
		DefaultListingLimit: 10,
		MaxListingLimit:     25,
		MaxCommentLimit:     50,
		MaxUserLimit:        25,
		MaxToolOutputRunes:  30 * 1024,
	}
}

func newService(mock *mockClient) *tools.Service {
	return tools.NewService(mock, parser.NewRedditParser(), ratelimit.NewTracker(), testConfig())
}

func fixtureByURL(ctx context.Context, url string) (json.RawMessage, error) {
	switch {
	case strings.Contains(url, "/about.json"):
		return json.RawMessage(aboutFixture), nil
	case strings.Contains(url, "/comments/"):
		return json.RawMessage(postFixture), nil
	case strings.Contains(url, "/user/"):
		return json.RawMessage(userFixture), nil
	default:
		return json.RawMessage(listingFixture), nil
	}
}

func TestGetSubredditHeader(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)

	page, err := svc.GetSubreddit(context.Background(), "python", "hot", 1, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "r/python - hot"), "page must start with the header line")
	assert.Contains(t, page, "1. [Hello world] - r/python (42 pts)")
	assert.Contains(t, page, "https://reddit.com/r/python/comments/abc/hello_world")
	assert.NotContains(t, page, "2. [")
	assert.Contains(t, mock.lastURL, "limit=1")
}

func TestGetSubredditDefaultsAndCaps(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)

	_, err := svc.GetSubreddit(context.Background(), "python", "", 0, "")
	require.NoError(t, err)
	assert.Contains(t, mock.lastURL, "/r/python/hot.json")
	assert.Contains(t, mock.lastURL, "limit=10")

	_, err = svc.GetSubreddit(context.Background(), "python", "top", 500, "week")
	require.NoError(t, err)
	assert.Contains(t, mock.lastURL, "limit=25")
	assert.Contains(t, mock.lastURL, "t=week")
}

func TestGetSubredditRejectsBadParams(t *testing.T) {
	svc := newService(&mockClient{FetchFunc: fixtureByURL})

	_, err := svc.GetSubreddit(context.Background(), "python", "controversial", 0, "")
	assert.ErrorIs(t, err, tools.ErrInvalidParam)

	_, err = svc.GetSubreddit(context.Background(), "", "hot", 0, "")
	assert.ErrorIs(t, err, tools.ErrInvalidParam)

	_, err = svc.GetSubreddit(context.Background(), "python", "top", 0, "fortnight")
	assert.ErrorIs(t, err, tools.ErrInvalidParam)
}

func TestGetPostAcceptsURLAndID(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)

	page, err := svc.GetPost(context.Background(), "https://www.reddit.com/r/python/comments/abc/hello_world/", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "## Hello world"))
	assert.Contains(t, mock.lastURL, "/comments/abc.json")
	assert.Contains(t, mock.lastURL, "limit=20")

	_, err = svc.GetPost(context.Background(), "abc", 10)
	require.NoError(t, err)
	assert.Contains(t, mock.lastURL, "limit=10")
}

func TestGetPostRejectsNonPostURL(t *testing.T) {
	svc := newService(&mockClient{FetchFunc: fixtureByURL})

	_, err := svc.GetPost(context.Background(), "https://reddit.com/u/spez", 0)
	assert.ErrorIs(t, err, tools.ErrInvalidParam)
}

func TestGetUser(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)

	page, err := svc.GetUser(context.Background(), "spez", "", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "u/spez - overview"))
	assert.Contains(t, page, "[COMMENT] in r/python | 2 pts")
	assert.Contains(t, mock.lastURL, "/user/spez/overview.json")

	_, err = svc.GetUser(context.Background(), "spez", "gilded", 0)
	assert.ErrorIs(t, err, tools.ErrInvalidParam)
}

func TestSearch(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)

	page, err := svc.Search(context.Background(), "generics", "", "", "", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "Search: 'generics' in all of Reddit"))
	assert.Contains(t, mock.lastURL, "sort=relevance")
	assert.Contains(t, mock.lastURL, "t=all")

	page, err = svc.Search(context.Background(), "generics", "golang", "top", "year", 5)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "Search: 'generics' in r/golang"))

	_, err = svc.Search(context.Background(), "", "", "", "", 0)
	assert.ErrorIs(t, err, tools.ErrInvalidParam)
}

func TestOpenDispatch(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	svc := newService(mock)
	ctx := context.Background()

	// Post permalink goes to the post extractor.
	page, err := svc.Open(ctx, "https://www.reddit.com/r/python/comments/abc/hello_world/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "## Hello world"), "post URL must render a post page")

	// User profile goes to the user extractor.
	page, err = svc.Open(ctx, "https://www.reddit.com/u/spez")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "u/spez - overview"), "user URL must render a user page")

	// Bare subreddit goes to the listing extractor.
	page, err = svc.Open(ctx, "https://www.reddit.com/r/python")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "r/python - hot"), "subreddit URL must render a listing")

	// Unknown URLs fail without fetching.
	before := mock.lastURL
	_, err = svc.Open(ctx, "https://example.com/nothing")
	assert.ErrorIs(t, err, tools.ErrInvalidParam)
	assert.Equal(t, before, mock.lastURL, "no fetch for unknown URLs")
}

func TestRateLimitStatusUnknownWithoutResponses(t *testing.T) {
	svc := newService(&mockClient{FetchFunc: fixtureByURL})

	status := svc.RateLimitStatus()
	assert.Contains(t, status, "Remaining: unknown")
	assert.Contains(t, status, "Resets in: unknown")
}

func TestRateLimitStatusAfterRecord(t *testing.T) {
	tracker := ratelimit.NewTracker()
	svc := tools.NewService(&mockClient{FetchFunc: fixtureByURL}, parser.NewRedditParser(), tracker, testConfig())

	h := http.Header{}
	h.Set("x-ratelimit-remaining", "96")
	h.Set("x-ratelimit-used", "4")
	tracker.Record(h)

	status := svc.RateLimitStatus()
	assert.Contains(t, status, "Remaining: 96 requests")
	assert.Contains(t, status, "Used: 4 requests")
	assert.Contains(t, status, "Limit: 100 requests")
}

func TestOutputTruncation(t *testing.T) {
	mock := &mockClient{FetchFunc: fixtureByURL}
	cfg := testConfig()
	cfg.MaxToolOutputRunes = 80
	svc := tools.NewService(mock, parser.NewRedditParser(), ratelimit.NewTracker(), cfg)

	page, err := svc.GetSubreddit(context.Background(), "python", "hot", 1, "")
	require.NoError(t, err)
	assert.Contains(t, page, "output truncated")
	assert.LessOrEqual(t, len([]rune(page)), 80+60)
}

func TestFetchErrorPropagates(t *testing.T) {
	mock := &mockClient{FetchFunc: func(ctx context.Context, url string) (json.RawMessage, error) {
		return nil, fmt.Errorf("boom")
	}}
	svc := newService(mock)

	_, err := svc.GetSubreddit(context.Background(), "python", "hot", 0, "")
	assert.Error(t, err)
}
