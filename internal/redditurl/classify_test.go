// internal/redditurl/classify_test.go
package redditurl_test

import (
	"testing"

	"reddit-tools/internal/redditurl"
)

func TestClassifyPost(t *testing.T) {
	target := redditurl.Classify("https://www.reddit.com/r/python/comments/abc123/some_title/")

	if target.Kind != redditurl.KindPost {
		t.Fatalf("expected post, got %s", target.Kind)
	}
	if target.Subreddit != "python" || target.PostID != "abc123" {
		t.Errorf("expected python/abc123, got %s/%s", target.Subreddit, target.PostID)
	}
}

func TestClassifyUser(t *testing.T) {
	for _, raw := range []string{
		"https://reddit.com/u/spez",
		"reddit.com/user/spez",
		"/user/spez/",
	} {
		target := redditurl.Classify(raw)
		if target.Kind != redditurl.KindUser {
			t.Errorf("%s: expected user, got %s", raw, target.Kind)
		}
		if target.Username != "spez" {
			t.Errorf("%s: expected username spez, got %s", raw, target.Username)
		}
	}
}

func TestClassifySubredditListing(t *testing.T) {
	target := redditurl.Classify("https://www.reddit.com/r/python")

	if target.Kind != redditurl.KindSubreddit {
		t.Fatalf("expected subreddit, got %s", target.Kind)
	}
	if target.Subreddit != "python" || target.Sort != "hot" {
		t.Errorf("expected python/hot, got %s/%s", target.Subreddit, target.Sort)
	}
}

func TestClassifySubredditWithSort(t *testing.T) {
	target := redditurl.Classify("reddit.com/r/golang/new")

	if target.Kind != redditurl.KindSubreddit || target.Sort != "new" {
		t.Errorf("expected subreddit/new, got %s/%s", target.Kind, target.Sort)
	}

	// A trailing segment that is not a sort falls back to hot.
	target = redditurl.Classify("reddit.com/r/golang/gilded")
	if target.Kind != redditurl.KindSubreddit || target.Sort != "hot" {
		t.Errorf("expected subreddit/hot, got %s/%s", target.Kind, target.Sort)
	}
}

func TestClassifySubredditAbout(t *testing.T) {
	target := redditurl.Classify("https://old.reddit.com/r/python/about")

	if target.Kind != redditurl.KindSubredditInfo || target.Subreddit != "python" {
		t.Errorf("expected subreddit_info/python, got %s/%s", target.Kind, target.Subreddit)
	}
}

func TestClassifySearch(t *testing.T) {
	target := redditurl.Classify("https://www.reddit.com/search?q=golang+generics")

	if target.Kind != redditurl.KindSearch {
		t.Fatalf("expected search, got %s", target.Kind)
	}
	if target.Query != "golang generics" {
		t.Errorf("expected decoded query, got %q", target.Query)
	}
}

func TestClassifyPostBeatsSubreddit(t *testing.T) {
	// A comments URL matches both patterns; the post must win.
	target := redditurl.Classify("r/python/comments/xyz789/title_here")
	if target.Kind != redditurl.KindPost {
		t.Errorf("expected post, got %s", target.Kind)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/r-python",
		"not a url at all",
		"reddit.com/search",
		"",
	} {
		if target := redditurl.Classify(raw); target.Kind != redditurl.KindUnknown {
			t.Errorf("%q: expected unknown, got %s", raw, target.Kind)
		}
	}
}
