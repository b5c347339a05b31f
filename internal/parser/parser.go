// internal/parser/parser.go
package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"reddit-tools/internal/models"
)

// Parser maps raw Reddit envelopes to normalized models. Every method uses an
// explicit field allowlist; unknown envelope fields are never copied. A child
// that fails to unmarshal is skipped and counted, never fatal for the page.
type Parser interface {
	ParseListing(data json.RawMessage) ([]models.Post, int, error)
	ParseSubredditInfo(name string, data json.RawMessage) (models.SubredditInfo, error)
	ParsePostAndComments(data json.RawMessage) (models.PostDetail, error)
	ParseUserOverview(data json.RawMessage) ([]models.UserItem, int, error)
}

type RedditParser struct{}

func NewRedditParser() *RedditParser {
	return &RedditParser{}
}

// rawPostChild is the allowlisted schema for a t3 (post) envelope child.
type rawPostChild struct {
	Kind string `json:"kind"`
	Data struct {
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		Selftext    string  `json:"selftext"`
		Author      string  `json:"author"`
		Subreddit   string  `json:"subreddit"`
		Score       int     `json:"score"`
		NumComments int     `json:"num_comments"`
		CreatedUTC  float64 `json:"created_utc"`
		Permalink   string  `json:"permalink"`
		URL         string  `json:"url"`
		IsSelf      bool    `json:"is_self"`
	} `json:"data"`
}

func (c *rawPostChild) toPost() models.Post {
	return models.Post{
		ID:          c.Data.ID,
		Title:       c.Data.Title,
		Body:        c.Data.Selftext,
		Author:      c.Data.Author,
		Subreddit:   c.Data.Subreddit,
		Score:       c.Data.Score,
		NumComments: c.Data.NumComments,
		CreatedAt:   time.Unix(int64(c.Data.CreatedUTC), 0).UTC(),
		Permalink:   absolutePermalink(c.Data.Permalink),
		URL:         c.Data.URL,
		IsSelf:      c.Data.IsSelf,
	}
}

// rawCommentChild is the allowlisted schema for a t1 (comment) child.
// Replies stays raw because Reddit sends "" instead of an object for leaves.
type rawCommentChild struct {
	Kind string `json:"kind"`
	Data struct {
		ID         string          `json:"id"`
		Author     string          `json:"author"`
		Body       string          `json:"body"`
		Score      int             `json:"score"`
		CreatedUTC float64         `json:"created_utc"`
		Replies    json.RawMessage `json:"replies"`
	} `json:"data"`
}

// ParseListing extracts posts from a subreddit or search listing envelope.
// The second return value counts children that were skipped as malformed.
func (p *RedditParser) ParseListing(data json.RawMessage) ([]models.Post, int, error) {
	children, err := listingChildren(data)
	if err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	skipped := 0
	for _, raw := range children {
		var child rawPostChild
		if err := json.Unmarshal(raw, &child); err != nil {
			skipped++
			continue
		}
		if child.Kind != "t3" {
			continue
		}
		posts = append(posts, child.toPost())
	}

	return posts, skipped, nil
}

var relatedSubredditRe = regexp.MustCompile(`/r/(\w+)`)

// ParseSubredditInfo extracts about-page metadata. Related subreddits are
// pulled out of the sidebar markdown in first-appearance order, the subreddit
// itself excluded, capped at ten.
func (p *RedditParser) ParseSubredditInfo(name string, data json.RawMessage) (models.SubredditInfo, error) {
	var about struct {
		Data struct {
			Title             string  `json:"title"`
			PublicDescription string  `json:"public_description"`
			Description       string  `json:"description"`
			Subscribers       int     `json:"subscribers"`
			CreatedUTC        float64 `json:"created_utc"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &about); err != nil {
		return models.SubredditInfo{}, &models.ParseError{Reason: "subreddit about envelope", Err: err}
	}

	var related []string
	seen := map[string]bool{strings.ToLower(name): true}
	for _, m := range relatedSubredditRe.FindAllStringSubmatch(about.Data.Description, -1) {
		lower := strings.ToLower(m[1])
		if seen[lower] {
			continue
		}
		seen[lower] = true
		related = append(related, m[1])
		if len(related) == 10 {
			break
		}
	}

	return models.SubredditInfo{
		Name:        name,
		Title:       about.Data.Title,
		Description: about.Data.PublicDescription,
		Subscribers: about.Data.Subscribers,
		CreatedAt:   time.Unix(int64(about.Data.CreatedUTC), 0).UTC(),
		Related:     related,
	}, nil
}

// ParsePostAndComments parses the two-element array envelope Reddit returns
// for a comments page: [post listing, comment tree listing].
func (p *RedditParser) ParsePostAndComments(data json.RawMessage) (models.PostDetail, error) {
	var blocks []json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil {
		return models.PostDetail{}, &models.ParseError{Reason: "comments page envelope", Err: err}
	}
	if len(blocks) == 0 {
		return models.PostDetail{}, &models.ParseError{Reason: "comments page envelope is empty"}
	}

	postChildren, err := listingChildren(blocks[0])
	if err != nil {
		return models.PostDetail{}, err
	}
	if len(postChildren) == 0 {
		return models.PostDetail{}, &models.ParseError{Reason: "post listing has no children"}
	}

	var postChild rawPostChild
	if err := json.Unmarshal(postChildren[0], &postChild); err != nil {
		return models.PostDetail{}, &models.ParseError{Reason: "post child", Err: err}
	}

	detail := models.PostDetail{Post: postChild.toPost()}

	if len(blocks) > 1 {
		commentChildren, err := listingChildren(blocks[1])
		if err == nil {
			detail.Comments = p.parseComments(commentChildren)
		}
	}

	return detail, nil
}

// parseComments walks a comment tree, skipping malformed children and "more"
// placeholders (a single page is fetched, never expanded).
func (p *RedditParser) parseComments(children []json.RawMessage) []models.Comment {
	var comments []models.Comment

	for _, raw := range children {
		var child rawCommentChild
		if err := json.Unmarshal(raw, &child); err != nil {
			continue
		}
		if child.Kind != "t1" {
			continue
		}

		comment := models.Comment{
			ID:        child.Data.ID,
			Author:    child.Data.Author,
			Body:      child.Data.Body,
			Score:     child.Data.Score,
			CreatedAt: time.Unix(int64(child.Data.CreatedUTC), 0).UTC(),
		}

		if len(child.Data.Replies) > 0 {
			if replyChildren, err := listingChildren(child.Data.Replies); err == nil {
				comment.Replies = p.parseComments(replyChildren)
			}
		}

		comments = append(comments, comment)
	}

	return comments
}

// rawUserChild covers both t1 and t3 entries of a user listing; the union of
// fields is safe because each field allowlist is disjoint where it matters.
type rawUserChild struct {
	Kind string `json:"kind"`
	Data struct {
		Title     string `json:"title"`
		Body      string `json:"body"`
		Subreddit string `json:"subreddit"`
		Score     int    `json:"score"`
		Permalink string `json:"permalink"`
	} `json:"data"`
}

// ParseUserOverview extracts the mixed post/comment entries of a user
// overview, submitted or comments listing.
func (p *RedditParser) ParseUserOverview(data json.RawMessage) ([]models.UserItem, int, error) {
	children, err := listingChildren(data)
	if err != nil {
		return nil, 0, err
	}

	var items []models.UserItem
	skipped := 0
	for _, raw := range children {
		var child rawUserChild
		if err := json.Unmarshal(raw, &child); err != nil {
			skipped++
			continue
		}

		switch child.Kind {
		case "t3":
			items = append(items, models.UserItem{
				Kind:      models.UserItemPost,
				Title:     child.Data.Title,
				Subreddit: child.Data.Subreddit,
				Score:     child.Data.Score,
				Permalink: absolutePermalink(child.Data.Permalink),
			})
		case "t1":
			items = append(items, models.UserItem{
				Kind:      models.UserItemComment,
				Body:      child.Data.Body,
				Subreddit: child.Data.Subreddit,
				Score:     child.Data.Score,
				Permalink: absolutePermalink(child.Data.Permalink),
			})
		}
	}

	return items, skipped, nil
}

// listingChildren unwraps a Listing envelope into its raw children.
func listingChildren(data json.RawMessage) ([]json.RawMessage, error) {
	var listing struct {
		Data struct {
			Children []json.RawMessage `json:"children"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, &models.ParseError{Reason: fmt.Sprintf("listing envelope: %v", err), Err: err}
	}
	return listing.Data.Children, nil
}

func absolutePermalink(permalink string) string {
	if permalink == "" {
		return ""
	}
	return "https://reddit.com" + permalink
}
