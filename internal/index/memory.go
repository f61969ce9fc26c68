package index

import (
	"context"
	"sort"
	"sync"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// MemoryIndex is an in-process bookmark repository.
// It is used when no Redis address is configured.
type MemoryIndex struct {
	mu        sync.RWMutex
	bookmarks map[string]map[string]*domain.Bookmark // UserID -> BookmarkID -> Bookmark
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		bookmarks: make(map[string]map[string]*domain.Bookmark),
	}
}

// SaveBookmark stores a copy of bookmark. It fails with domain.ErrDuplicateURL
// when another bookmark of the same user already has the URL; the check and
// the write happen under one lock.
func (idx *MemoryIndex) SaveBookmark(_ context.Context, bookmark *domain.Bookmark) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	userBookmarks, ok := idx.bookmarks[bookmark.UserID]
	if !ok {
		userBookmarks = make(map[string]*domain.Bookmark)
		idx.bookmarks[bookmark.UserID] = userBookmarks
	}
	for id, existing := range userBookmarks {
		if existing.URL == bookmark.URL && id != bookmark.BookmarkID {
			return domain.ErrDuplicateURL
		}
	}
	cp := *bookmark
	userBookmarks[bookmark.BookmarkID] = &cp
	return nil
}

// GetBookmark retrieves one of the user's bookmarks.
func (idx *MemoryIndex) GetBookmark(_ context.Context, userID, bookmarkID string) (*domain.Bookmark, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	bookmark, ok := idx.bookmarks[userID][bookmarkID]
	if !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	cp := *bookmark
	return &cp, nil
}

// ListBookmarks returns a snapshot of the user's bookmarks, newest first.
func (idx *MemoryIndex) ListBookmarks(_ context.Context, userID string) ([]*domain.Bookmark, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	userBookmarks := idx.bookmarks[userID]
	bookmarks := make([]*domain.Bookmark, 0, len(userBookmarks))
	for _, bookmark := range userBookmarks {
		cp := *bookmark
		bookmarks = append(bookmarks, &cp)
	}
	sortNewestFirst(bookmarks)
	return bookmarks, nil
}

// sortNewestFirst orders by DateCreated descending, then BookmarkID descending,
// which is the order ZREVRANGE gives the Redis store for equal scores.
func sortNewestFirst(bookmarks []*domain.Bookmark) {
	sort.Slice(bookmarks, func(i, j int) bool {
		a, b := bookmarks[i], bookmarks[j]
		if !a.DateCreated.Equal(b.DateCreated) {
			return a.DateCreated.After(b.DateCreated)
		}
		return a.BookmarkID > b.BookmarkID
	})
}
