package domain

import "time"

// Bookmark is a URL saved by a user.
//
// It is owned by the use-case layer; the web layer only reads it.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// BookmarkID is the canonical unique identifier (UUID string).
	BookmarkID string `json:"bookmark_id"`

	// UserID identifies the owner. Bookmarks are never shared across users.
	UserID string `json:"user_id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Name is the human label chosen by the user.
	// Example: "Go blog"
	Name string `json:"name"`

	// URL is the absolute http(s) URL.
	// Example: https://go.dev/blog/
	URL string `json:"url"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// DateCreated is set once when the bookmark is created.
	DateCreated time.Time `json:"date_created"`
}

// CreateBookmarkResult is what the create use case reports back.
// An empty Errors map means the bookmark was stored.
type CreateBookmarkResult struct {
	BookmarkID string
	Errors     map[string][]string
}

// OK reports whether the creation succeeded.
func (r CreateBookmarkResult) OK() bool {
	return len(r.Errors) == 0
}
