// internal/client/interface.go
package client

import (
	"context"
	"encoding/json"
)

type RedditClientInterface interface {
	Fetch(ctx context.Context, url string) (json.RawMessage, error)
	SubredditURL(name, sort string, limit int, timeFilter string) string
	SubredditAboutURL(name string) string
	PostURL(postID string, commentLimit int) string
	UserURL(username, kind string, limit int) string
	SearchURL(query, subreddit, sort, timeFilter string, limit int) string
}
