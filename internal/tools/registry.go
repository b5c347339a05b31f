// internal/tools/registry.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is a callable tool ready for registration with a hosting agent
// runtime. Handler takes JSON-encoded arguments and returns the rendered
// page. Handlers are safe for concurrent use and respect context
// cancellation.
type Tool struct {
	Name        string
	Description string
	// ReadOnly: the tool never modifies external state.
	ReadOnly bool
	// OpenWorld: the tool reaches out to an external service.
	OpenWorld bool
	Handler   func(ctx context.Context, args json.RawMessage) (string, error)
}

// Registry returns the full tool surface in declaration order.
func (s *Service) Registry() []Tool {
	return []Tool{
		{
			Name:        "open",
			Description: "Open any Reddit URL (subreddit, post, user profile or search) and return formatted content.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					URL string `json:"url"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.Open(ctx, a.URL)
			},
		},
		{
			Name:        "get_subreddit",
			Description: "Get posts from a subreddit. Sort: hot, new, top, rising, best. Time (for top): hour, day, week, month, year, all.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					Name  string `json:"name"`
					Sort  string `json:"sort"`
					Limit int    `json:"limit"`
					Time  string `json:"time"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.GetSubreddit(ctx, a.Name, a.Sort, a.Limit, a.Time)
			},
		},
		{
			Name:        "get_subreddit_info",
			Description: "Get subreddit metadata: description, subscriber count and related subreddits.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					Name string `json:"name"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.GetSubredditInfo(ctx, a.Name)
			},
		},
		{
			Name:        "get_post",
			Description: "Get a post and its comments by URL, permalink or post ID.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					URL          string `json:"url"`
					CommentLimit int    `json:"comment_limit"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.GetPost(ctx, a.URL, a.CommentLimit)
			},
		},
		{
			Name:        "get_user",
			Description: "Get a Reddit user's recent activity. Kind: overview, submitted, comments.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					Username string `json:"username"`
					Kind     string `json:"kind"`
					Limit    int    `json:"limit"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.GetUser(ctx, a.Username, a.Kind, a.Limit)
			},
		},
		{
			Name:        "search",
			Description: "Search Reddit for posts, optionally within one subreddit. Sort: relevance, hot, top, new, comments.",
			ReadOnly:    true,
			OpenWorld:   true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				var a struct {
					Query     string `json:"query"`
					Subreddit string `json:"subreddit"`
					Sort      string `json:"sort"`
					Time      string `json:"time"`
					Limit     int    `json:"limit"`
				}
				if err := unmarshalArgs(args, &a); err != nil {
					return "", err
				}
				return s.Search(ctx, a.Query, a.Subreddit, a.Sort, a.Time, a.Limit)
			},
		},
		{
			Name:        "rate_limit_status",
			Description: "Get the current Reddit API rate limit status.",
			ReadOnly:    true,
			Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
				return s.RateLimitStatus(), nil
			},
		},
	}
}

func unmarshalArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: malformed arguments: %v", ErrInvalidParam, err)
	}
	return nil
}
