// internal/tools/service.go

// Package tools exposes Reddit's read-only JSON endpoints as callable tools
// for an AI-agent runtime. Every tool performs one fetch, reshapes the result
// and returns compact plain text.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reddit-tools/internal/client"
	"reddit-tools/internal/config"
	"reddit-tools/internal/parser"
	"reddit-tools/internal/ratelimit"
	"reddit-tools/internal/redditurl"
	"reddit-tools/internal/render"
)

// ErrInvalidParam marks caller mistakes: bad enum values, missing names,
// unclassifiable URLs. No fetch is issued when it is returned.
var ErrInvalidParam = errors.New("invalid parameter")

var (
	listingSorts = map[string]bool{"hot": true, "new": true, "top": true, "rising": true, "best": true}
	searchSorts  = map[string]bool{"relevance": true, "hot": true, "top": true, "new": true, "comments": true}
	timeFilters  = map[string]bool{"hour": true, "day": true, "week": true, "month": true, "year": true, "all": true}
	userKinds    = map[string]bool{"overview": true, "submitted": true, "comments": true}
)

// Service implements the tool surface. All state crossing calls lives in the
// injected rate tracker; each call is an independent request/response.
type Service struct {
	client  client.RedditClientInterface
	parser  parser.Parser
	tracker *ratelimit.Tracker
	cfg     *config.Config
	now     func() time.Time
}

func NewService(c client.RedditClientInterface, p parser.Parser, tracker *ratelimit.Tracker, cfg *config.Config) *Service {
	return &Service{
		client:  c,
		parser:  p,
		tracker: tracker,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Open classifies an arbitrary Reddit URL and dispatches to the matching
// tool. Unknown URLs fail without fetching.
func (s *Service) Open(ctx context.Context, rawURL string) (string, error) {
	target := redditurl.Classify(rawURL)

	switch target.Kind {
	case redditurl.KindSubredditInfo:
		return s.GetSubredditInfo(ctx, target.Subreddit)
	case redditurl.KindPost:
		return s.getPostByID(ctx, target.PostID, 0)
	case redditurl.KindUser:
		return s.GetUser(ctx, target.Username, "", 0)
	case redditurl.KindSearch:
		return s.Search(ctx, target.Query, "", "", "", 0)
	case redditurl.KindSubreddit:
		return s.GetSubreddit(ctx, target.Subreddit, target.Sort, 0, "")
	default:
		return "", fmt.Errorf("%w: could not parse URL: %s", ErrInvalidParam, rawURL)
	}
}

// GetSubreddit fetches one page of a subreddit listing.
func (s *Service) GetSubreddit(ctx context.Context, name, sort string, limit int, timeFilter string) (string, error) {
	if err := validateName(name, "subreddit"); err != nil {
		return "", err
	}
	if sort == "" {
		sort = "hot"
	}
	if !listingSorts[sort] {
		return "", fmt.Errorf("%w: sort must be one of hot, new, top, rising, best; got %q", ErrInvalidParam, sort)
	}
	timeFilter, err := normalizeTimeFilter(timeFilter, "day")
	if err != nil {
		return "", err
	}
	limit = clampLimit(limit, s.cfg.DefaultListingLimit, s.cfg.MaxListingLimit)

	data, err := s.client.Fetch(ctx, s.client.SubredditURL(name, sort, limit, timeFilter))
	if err != nil {
		return "", err
	}

	posts, _, err := s.parser.ParseListing(data)
	if err != nil {
		return "", err
	}

	return s.finish(render.Listing(name, sort, posts)), nil
}

// GetSubredditInfo fetches a subreddit's about page.
func (s *Service) GetSubredditInfo(ctx context.Context, name string) (string, error) {
	if err := validateName(name, "subreddit"); err != nil {
		return "", err
	}

	data, err := s.client.Fetch(ctx, s.client.SubredditAboutURL(name))
	if err != nil {
		return "", err
	}

	info, err := s.parser.ParseSubredditInfo(name, data)
	if err != nil {
		return "", err
	}

	return s.finish(render.SubredditInfoPage(info)), nil
}

// GetPost fetches a post and its comment tree. urlOrID accepts a permalink,
// a full URL or a bare post ID.
func (s *Service) GetPost(ctx context.Context, urlOrID string, commentLimit int) (string, error) {
	if urlOrID == "" {
		return "", fmt.Errorf("%w: missing post URL or ID", ErrInvalidParam)
	}

	postID := urlOrID
	if strings.Contains(urlOrID, "/") {
		target := redditurl.Classify(urlOrID)
		if target.Kind != redditurl.KindPost {
			return "", fmt.Errorf("%w: not a post URL: %s", ErrInvalidParam, urlOrID)
		}
		postID = target.PostID
	}

	return s.getPostByID(ctx, postID, commentLimit)
}

func (s *Service) getPostByID(ctx context.Context, postID string, commentLimit int) (string, error) {
	if commentLimit <= 0 {
		commentLimit = 20
	}
	if commentLimit > s.cfg.MaxCommentLimit {
		commentLimit = s.cfg.MaxCommentLimit
	}

	data, err := s.client.Fetch(ctx, s.client.PostURL(postID, commentLimit))
	if err != nil {
		return "", err
	}

	detail, err := s.parser.ParsePostAndComments(data)
	if err != nil {
		return "", err
	}

	return s.finish(render.PostPage(detail)), nil
}

// GetUser fetches a user's recent activity. kind selects overview, submitted
// or comments.
func (s *Service) GetUser(ctx context.Context, username, kind string, limit int) (string, error) {
	if err := validateName(username, "username"); err != nil {
		return "", err
	}
	if kind == "" {
		kind = "overview"
	}
	if !userKinds[kind] {
		return "", fmt.Errorf("%w: kind must be one of overview, submitted, comments; got %q", ErrInvalidParam, kind)
	}
	limit = clampLimit(limit, 15, s.cfg.MaxUserLimit)

	data, err := s.client.Fetch(ctx, s.client.UserURL(username, kind, limit))
	if err != nil {
		return "", err
	}

	items, _, err := s.parser.ParseUserOverview(data)
	if err != nil {
		return "", err
	}

	return s.finish(render.UserPage(username, kind, items)), nil
}

// Search queries Reddit for posts, optionally restricted to one subreddit.
func (s *Service) Search(ctx context.Context, query, subreddit, sort, timeFilter string, limit int) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: missing search query", ErrInvalidParam)
	}
	if sort == "" {
		sort = "relevance"
	}
	if !searchSorts[sort] {
		return "", fmt.Errorf("%w: sort must be one of relevance, hot, top, new, comments; got %q", ErrInvalidParam, sort)
	}
	timeFilter, err := normalizeTimeFilter(timeFilter, "all")
	if err != nil {
		return "", err
	}
	limit = clampLimit(limit, s.cfg.DefaultListingLimit, s.cfg.MaxListingLimit)

	data, err := s.client.Fetch(ctx, s.client.SearchURL(query, subreddit, sort, timeFilter, limit))
	if err != nil {
		return "", err
	}

	posts, _, err := s.parser.ParseListing(data)
	if err != nil {
		return "", err
	}

	return s.finish(render.SearchPage(query, subreddit, posts)), nil
}

// RateLimitStatus reports the quota Reddit last communicated via headers.
// It performs no I/O.
func (s *Service) RateLimitStatus() string {
	return render.QuotaStatus(s.tracker.Status(), s.now())
}

func (s *Service) finish(page string) string {
	return TruncateOutput(page, s.cfg.MaxToolOutputRunes)
}

func validateName(name, what string) error {
	if name == "" {
		return fmt.Errorf("%w: missing %s", ErrInvalidParam, what)
	}
	if strings.ContainsAny(name, "/ ?") {
		return fmt.Errorf("%w: invalid %s: %q", ErrInvalidParam, what, name)
	}
	return nil
}

func normalizeTimeFilter(timeFilter, fallback string) (string, error) {
	if timeFilter == "" {
		return fallback, nil
	}
	if !timeFilters[timeFilter] {
		return "", fmt.Errorf("%w: time must be one of hour, day, week, month, year, all; got %q", ErrInvalidParam, timeFilter)
	}
	return timeFilter, nil
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
