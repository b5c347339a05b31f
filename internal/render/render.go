// internal/render/render.go

// Package render turns normalized Reddit models into compact plain text.
// Rendering is deterministic: the same input always yields identical bytes.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reddit-tools/internal/models"
	"reddit-tools/internal/ratelimit"
)

const (
	rule = "========================================"

	// maxRepliesPerLevel bounds how deep a comment page can grow sideways.
	maxRepliesPerLevel = 5
	// commentBodyMax caps comment bodies on user pages.
	commentBodyMax = 200
)

// Listing renders a subreddit listing: header line, rule, numbered entries.
func Listing(name, sort string, posts []models.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "r/%s - %s\n", name, sort)
	b.WriteString(rule)
	writeListingEntries(&b, posts)
	return b.String()
}

// SearchPage renders search results. Scope names the subreddit searched, or
// all of Reddit.
func SearchPage(query, subreddit string, posts []models.Post) string {
	scope := "all of Reddit"
	if subreddit != "" {
		scope = "r/" + subreddit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search: '%s' in %s\n", query, scope)
	b.WriteString(rule)
	writeListingEntries(&b, posts)
	return b.String()
}

func writeListingEntries(b *strings.Builder, posts []models.Post) {
	for i, post := range posts {
		fmt.Fprintf(b, "\n%d. [%s] - r/%s (%d pts)\n   %s", i+1, post.Title, post.Subreddit, post.Score, post.Permalink)
	}
}

// PostPage renders a post with its comment tree. Comments indent two spaces
// per nesting level; at most five replies are shown per level.
func PostPage(detail models.PostDetail) string {
	var b strings.Builder
	post := detail.Post

	fmt.Fprintf(&b, "## %s\n", post.Title)
	fmt.Fprintf(&b, "by u/%s in r/%s | %d pts | %d comments\n", post.Author, post.Subreddit, post.Score, post.NumComments)
	b.WriteString(post.Permalink)

	if post.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(post.Body)
	} else if !post.IsSelf && post.URL != "" {
		fmt.Fprintf(&b, "\nLink: %s", post.URL)
	}

	b.WriteString("\n\n")
	b.WriteString(rule)
	b.WriteString("\nCOMMENTS\n")
	b.WriteString(rule)

	for _, comment := range detail.Comments {
		b.WriteString("\n\n")
		writeComment(&b, comment, 0)
	}

	return b.String()
}

func writeComment(b *strings.Builder, comment models.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%su/%s (%d pts)\n", indent, comment.Author, comment.Score)
	b.WriteString(indent)
	b.WriteString(comment.Body)

	replies := comment.Replies
	if len(replies) > maxRepliesPerLevel {
		replies = replies[:maxRepliesPerLevel]
	}
	for _, reply := range replies {
		b.WriteString("\n\n")
		writeComment(b, reply, depth+1)
	}
}

// SubredditInfoPage renders about-page metadata.
func SubredditInfoPage(info models.SubredditInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "r/%s\n", info.Name)
	b.WriteString(rule)

	if info.Title != "" {
		b.WriteString("\n")
		b.WriteString(info.Title)
	}
	if info.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(info.Description)
	}

	fmt.Fprintf(&b, "\n\nSubscribers: %s", groupThousands(info.Subscribers))
	if info.CreatedAt.Unix() > 0 {
		fmt.Fprintf(&b, "\nCreated: %s", info.CreatedAt.UTC().Format("2006-01-02"))
	}

	if len(info.Related) > 0 {
		b.WriteString("\n\nRelated subreddits:")
		for _, name := range info.Related {
			fmt.Fprintf(&b, "\n  r/%s", name)
		}
	}

	return b.String()
}

// UserPage renders a user's activity listing.
func UserPage(username, kind string, items []models.UserItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "u/%s - %s\n", username, kind)
	b.WriteString(rule)

	for i, item := range items {
		switch item.Kind {
		case models.UserItemPost:
			fmt.Fprintf(&b, "\n%d. [POST] %s\n   r/%s | %d pts\n   %s", i+1, item.Title, item.Subreddit, item.Score, item.Permalink)
		case models.UserItemComment:
			fmt.Fprintf(&b, "\n%d. [COMMENT] in r/%s | %d pts\n   %s\n   %s", i+1, item.Subreddit, item.Score, truncateRunes(item.Body, commentBodyMax), item.Permalink)
		}
	}

	return b.String()
}

// QuotaStatus renders the rate tracker snapshot. Fields never observed on a
// response render as "unknown".
func QuotaStatus(snap ratelimit.Snapshot, now time.Time) string {
	var b strings.Builder

	b.WriteString("Remaining: ")
	b.WriteString(formatQuota(snap.Remaining, " requests"))

	b.WriteString("\nUsed: ")
	b.WriteString(formatQuota(snap.Used, " requests"))

	b.WriteString("\nLimit: ")
	if limit, ok := snap.Limit(); ok {
		fmt.Fprintf(&b, "%.0f requests", limit)
	} else {
		b.WriteString("unknown")
	}

	b.WriteString("\nResets in: ")
	if snap.ResetAt != nil {
		seconds := snap.ResetAt.Sub(now).Seconds()
		if seconds < 0 {
			seconds = 0
		}
		fmt.Fprintf(&b, "%.0f seconds", seconds)
	} else {
		b.WriteString("unknown")
	}

	return b.String()
}

func formatQuota(v *float64, unit string) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.0f%s", *v, unit)
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
