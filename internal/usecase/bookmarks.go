package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

const (
	// MaxNameLength is the longest bookmark name accepted.
	MaxNameLength = 255

	FieldName = "name"
	FieldURL  = "url"
)

// Bookmarks implements the list, details and create use cases.
type Bookmarks struct {
	repo  BookmarkRepository
	now   func() time.Time
	newID func() string
}

// Option customizes Bookmarks.
type Option func(*Bookmarks)

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(b *Bookmarks) { b.now = now }
}

// WithIDGenerator overrides the UUID generator (tests).
func WithIDGenerator(gen func() string) Option {
	return func(b *Bookmarks) { b.newID = gen }
}

// NewBookmarks builds the use cases on top of repo.
func NewBookmarks(repo BookmarkRepository, opts ...Option) *Bookmarks {
	b := &Bookmarks{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ListBookmarks presents every bookmark owned by userID.
func (b *Bookmarks) ListBookmarks(ctx context.Context, userID string, out ListBookmarksOutput) error {
	stored, err := b.repo.ListBookmarks(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]domain.Bookmark, 0, len(stored))
	for _, bm := range stored {
		bookmarks = append(bookmarks, *bm)
	}
	out.Present(bookmarks)
	return nil
}

// BookmarkDetails presents a single bookmark. Unknown ids surface as domain.ErrBookmarkNotFound.
func (b *Bookmarks) BookmarkDetails(ctx context.Context, userID, bookmarkID string, out BookmarkDetailsOutput) error {
	bm, err := b.repo.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		return fmt.Errorf("failed to get bookmark %s: %w", bookmarkID, err)
	}
	out.Present(*bm)
	return nil
}

// CreateBookmark validates and stores a new bookmark.
// Invalid input is not an error: it is presented as per-field messages.
func (b *Bookmarks) CreateBookmark(ctx context.Context, userID, name, rawURL string, out CreateBookmarkOutput) error {
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)

	errs := make(map[string][]string)
	if name == "" {
		errs[FieldName] = append(errs[FieldName], "Name is required.")
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs[FieldName] = append(errs[FieldName], fmt.Sprintf("Name must be at most %d characters.", MaxNameLength))
	}
	if msg := checkURL(rawURL); msg != "" {
		errs[FieldURL] = append(errs[FieldURL], msg)
	}

	if len(errs) > 0 {
		out.Present(domain.CreateBookmarkResult{Errors: errs})
		return nil
	}

	bm := &domain.Bookmark{
		BookmarkID:  b.newID(),
		UserID:      userID,
		Name:        name,
		URL:         rawURL,
		DateCreated: b.now().UTC(),
	}
	// The repository enforces one bookmark per URL and user atomically.
	if err := b.repo.SaveBookmark(ctx, bm); err != nil {
		if errors.Is(err, domain.ErrDuplicateURL) {
			out.Present(domain.CreateBookmarkResult{Errors: map[string][]string{
				FieldURL: {"You already bookmarked this URL."},
			}})
			return nil
		}
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	out.Present(domain.CreateBookmarkResult{
		BookmarkID: bm.BookmarkID,
		Errors:     map[string][]string{},
	})
	return nil
}

// checkURL returns a user-facing message, or "" when rawURL is acceptable.
func checkURL(rawURL string) string {
	if rawURL == "" {
		return "URL is required."
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Invalid URL."
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "URL must start with http:// or https://."
	}
	return ""
}
