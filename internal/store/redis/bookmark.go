package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// Store is the Redis-backed bookmark repository.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection; used by the infra endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// saveRetries bounds how often SaveBookmark retries after a concurrent
// write to the user's URL hash aborted its transaction.
const saveRetries = 5

// SaveBookmark stores the bookmark document and indexes it under its owner.
// The user's URL hash is watched so that two concurrent saves of the same URL
// cannot both succeed; the loser gets domain.ErrDuplicateURL.
func (s *Store) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	data, err := json.Marshal(bookmark)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	urlsKey := UserURLsKey(bookmark.UserID)
	save := func(tx *redis.Tx) error {
		owner, err := tx.HGet(ctx, urlsKey, bookmark.URL).Result()
		switch {
		case err == nil && owner != bookmark.BookmarkID:
			return domain.ErrDuplicateURL
		case err != nil && !errors.Is(err, redis.Nil):
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, BookmarkKey(bookmark.BookmarkID), data, 0)
			pipe.ZAdd(ctx, UserBookmarksKey(bookmark.UserID), redis.Z{
				Score:  float64(bookmark.DateCreated.UnixNano()),
				Member: bookmark.BookmarkID,
			})
			pipe.HSet(ctx, urlsKey, bookmark.URL, bookmark.BookmarkID)
			return nil
		})
		return err
	}

	for range saveRetries {
		err = s.client.Watch(ctx, save, urlsKey)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrDuplicateURL):
			return err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return fmt.Errorf("failed to save bookmark: %w", err)
		}
	}

	return fmt.Errorf("failed to save bookmark: %w", err)
}

// GetBookmark retrieves a bookmark owned by userID.
// A bookmark owned by someone else is reported as not found.
func (s *Store) GetBookmark(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error) {
	bookmark, err := s.getBookmark(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookmarkNotFound, bookmarkID)
	}
	return bookmark, nil
}

// ListBookmarks retrieves all bookmarks of a user, newest first
func (s *Store) ListBookmarks(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	ids, err := s.client.ZRevRange(ctx, UserBookmarksKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Bookmark{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = BookmarkKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	bookmarks := make([]*domain.Bookmark, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Skip dangling IDs whose document is gone
			continue
		}
		var bookmark domain.Bookmark
		if err := json.Unmarshal([]byte(raw), &bookmark); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
		}
		bookmarks = append(bookmarks, &bookmark)
	}

	return bookmarks, nil
}

func (s *Store) getBookmark(ctx context.Context, id string) (*domain.Bookmark, error) {
	data, err := s.client.Get(ctx, BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBookmarkNotFound, id)
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var bookmark domain.Bookmark
	if err := json.Unmarshal(data, &bookmark); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	return &bookmark, nil
}
