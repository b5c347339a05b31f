// internal/redditurl/classify.go

// Package redditurl classifies arbitrary Reddit URLs into resource kinds.
package redditurl

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind is the resource category a Reddit URL denotes.
type Kind int

const (
	KindUnknown Kind = iota
	KindSubreddit
	KindSubredditInfo
	KindPost
	KindUser
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindSubreddit:
		return "subreddit"
	case KindSubredditInfo:
		return "subreddit_info"
	case KindPost:
		return "post"
	case KindUser:
		return "user"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Target is the classified form of a Reddit URL. Fields are populated
// according to Kind; unset fields are empty.
type Target struct {
	Kind      Kind
	Subreddit string
	PostID    string
	Username  string
	Query     string
	Sort      string
}

var (
	aboutRe     = regexp.MustCompile(`^r/(\w+)/about`)
	postRe      = regexp.MustCompile(`^r/(\w+)/comments/(\w+)`)
	userRe      = regexp.MustCompile(`^u(?:ser)?/(\w+)`)
	searchRe    = regexp.MustCompile(`^search$`)
	subredditRe = regexp.MustCompile(`^r/(\w+)(?:/(\w+))?`)
)

var listingSorts = map[string]bool{
	"hot":    true,
	"new":    true,
	"top":    true,
	"rising": true,
	"best":   true,
}

// Classify matches the URL's path segments in priority order:
// about > post > user > search > subreddit listing > unknown.
func Classify(raw string) Target {
	path, query := normalize(raw)

	if m := aboutRe.FindStringSubmatch(path); m != nil {
		return Target{Kind: KindSubredditInfo, Subreddit: m[1]}
	}

	if m := postRe.FindStringSubmatch(path); m != nil {
		return Target{Kind: KindPost, Subreddit: m[1], PostID: m[2]}
	}

	if m := userRe.FindStringSubmatch(path); m != nil {
		return Target{Kind: KindUser, Username: m[1]}
	}

	if searchRe.MatchString(path) {
		if q := query.Get("q"); q != "" {
			return Target{Kind: KindSearch, Query: q}
		}
		return Target{Kind: KindUnknown}
	}

	if m := subredditRe.FindStringSubmatch(path); m != nil {
		sort := "hot"
		if listingSorts[m[2]] {
			sort = m[2]
		}
		return Target{Kind: KindSubreddit, Subreddit: m[1], Sort: sort}
	}

	return Target{Kind: KindUnknown}
}

// normalize strips scheme and reddit.com hosts, returning the bare path and
// parsed query string.
func normalize(raw string) (string, url.Values) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	for _, host := range []string{"www.reddit.com", "old.reddit.com", "reddit.com"} {
		if strings.HasPrefix(s, host) {
			s = strings.TrimPrefix(s, host)
			break
		}
	}
	s = strings.TrimLeft(s, "/")

	path := s
	query := url.Values{}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		path = s[:i]
		if q, err := url.ParseQuery(s[i+1:]); err == nil {
			query = q
		}
	}
	path = strings.TrimRight(path, "/")
	return path, query
}
