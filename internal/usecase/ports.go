package usecase

import (
	"context"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// BookmarkRepository is the persistence port used by the bookmark use cases.
type BookmarkRepository interface {
	// ListBookmarks returns the user's bookmarks, newest first.
	ListBookmarks(ctx context.Context, userID string) ([]*domain.Bookmark, error)
	// GetBookmark returns domain.ErrBookmarkNotFound when the id is unknown for that user.
	GetBookmark(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error)
	SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error
}

// ListBookmarksOutput receives the result of ListBookmarks.
type ListBookmarksOutput interface {
	Present(bookmarks []domain.Bookmark)
}

// BookmarkDetailsOutput receives the result of BookmarkDetails.
type BookmarkDetailsOutput interface {
	Present(bookmark domain.Bookmark)
}

// CreateBookmarkOutput receives the result of CreateBookmark.
type CreateBookmarkOutput interface {
	Present(result domain.CreateBookmarkResult)
}
