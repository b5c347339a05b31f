// internal/models/models.go
package models

import "time"

// Post is the normalized view of a Reddit link/self post. Only the fields
// listed here are ever copied out of the API envelope.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	Subreddit   string    `json:"subreddit"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
	Permalink   string    `json:"permalink"`
	// URL is the outbound link for link posts; empty for self posts.
	URL    string `json:"url,omitempty"`
	IsSelf bool   `json:"is_self"`
}

// Comment is a single comment with its nested replies.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies,omitempty"`
}

// PostDetail is a post together with its top-level comment tree.
type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

// SubredditInfo is the about-page metadata of a subreddit.
type SubredditInfo struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subscribers int       `json:"subscribers"`
	CreatedAt   time.Time `json:"created_at"`
	// Related holds subreddit names referenced from the sidebar text,
	// first-appearance order, the subreddit itself excluded.
	Related []string `json:"related,omitempty"`
}

// UserItemKind discriminates entries in a user overview listing.
type UserItemKind string

const (
	UserItemPost    UserItemKind = "post"
	UserItemComment UserItemKind = "comment"
)

// UserItem is one entry of a user's overview/submitted/comments listing.
type UserItem struct {
	Kind      UserItemKind `json:"kind"`
	Title     string       `json:"title,omitempty"`
	Body      string       `json:"body,omitempty"`
	Subreddit string       `json:"subreddit"`
	Score     int          `json:"score"`
	Permalink string       `json:"permalink"`
}
