package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestSaveAndGetBookmark(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 5, 4, 10, 30, 0, 0, time.UTC)

	in := &domain.Bookmark{BookmarkID: "b1", UserID: "alice", Name: "Example", URL: "http://a.com/x", DateCreated: created}
	if err := store.SaveBookmark(ctx, in); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}

	got, err := store.GetBookmark(ctx, "alice", "b1")
	if err != nil {
		t.Fatalf("GetBookmark() error = %v", err)
	}
	if got.Name != in.Name || got.URL != in.URL || !got.DateCreated.Equal(created) {
		t.Errorf("GetBookmark() = %+v, want %+v", got, in)
	}
}

func TestGetBookmarkNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetBookmark(ctx, "alice", "missing"); !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Errorf("GetBookmark() missing error = %v, want ErrBookmarkNotFound", err)
	}

	_ = store.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "b1", UserID: "alice"})
	if _, err := store.GetBookmark(ctx, "bob", "b1"); !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Errorf("GetBookmark() other user error = %v, want ErrBookmarkNotFound", err)
	}
}

func TestListBookmarksNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		bm := &domain.Bookmark{BookmarkID: id, UserID: "alice", URL: "https://example.com/" + id, DateCreated: base.Add(time.Duration(i) * time.Minute)}
		if err := store.SaveBookmark(ctx, bm); err != nil {
			t.Fatalf("SaveBookmark() error = %v", err)
		}
	}
	_ = store.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "other", UserID: "bob", DateCreated: base})

	got, err := store.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	want := []string{"third", "second", "first"}
	if len(got) != len(want) {
		t.Fatalf("ListBookmarks() returned %d bookmarks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].BookmarkID != want[i] {
			t.Errorf("ListBookmarks()[%d] = %s, want %s", i, got[i].BookmarkID, want[i])
		}
	}
}

func TestListBookmarksEmptyAndDangling(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	got, err := store.ListBookmarks(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListBookmarks() for unknown user = %v, want empty slice", got)
	}

	_ = store.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "b1", UserID: "alice"})
	mr.Del(BookmarkKey("b1"))

	got, err = store.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListBookmarks() should skip dangling IDs, got %v", got)
	}
}

func TestListBookmarksTiesNewestIDFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"b", "a", "c"} {
		bm := &domain.Bookmark{BookmarkID: id, UserID: "alice", URL: "https://example.com/" + id, DateCreated: created}
		if err := store.SaveBookmark(ctx, bm); err != nil {
			t.Fatalf("SaveBookmark() error = %v", err)
		}
	}

	got, err := store.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("ListBookmarks() returned %d bookmarks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].BookmarkID != want[i] {
			t.Errorf("ListBookmarks()[%d] = %s, want %s", i, got[i].BookmarkID, want[i])
		}
	}
}

func TestSaveBookmarkDuplicateURL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	const url = "https://go.dev/"

	if err := store.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "b1", UserID: "alice", URL: url}); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}

	tests := []struct {
		name    string
		in      domain.Bookmark
		wantErr error
	}{
		{"same user same url", domain.Bookmark{BookmarkID: "b2", UserID: "alice", URL: url}, domain.ErrDuplicateURL},
		{"same bookmark saved again", domain.Bookmark{BookmarkID: "b1", UserID: "alice", URL: url, Name: "renamed"}, nil},
		{"other user same url", domain.Bookmark{BookmarkID: "b3", UserID: "bob", URL: url}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveBookmark(ctx, &tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SaveBookmark() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if mr.Exists(BookmarkKey("b2")) {
		t.Error("rejected duplicate document was written")
	}
	if owner := mr.HGet(UserURLsKey("alice"), url); owner != "b1" {
		t.Errorf("url owner = %q, want b1", owner)
	}
}

func TestSaveBookmarkConcurrentDuplicates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.SaveBookmark(ctx, &domain.Bookmark{
				BookmarkID: fmt.Sprintf("id-%d", i),
				UserID:     "alice",
				URL:        "https://go.dev/",
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("created %d bookmarks for one URL, want 1", created)
	}
	got, err := store.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ListBookmarks() returned %d bookmarks, want 1", len(got))
	}
}

func TestPing(t *testing.T) {
	store, mr := newTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	mr.SetError("LOADING")
	if err := store.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail while the server reports an error")
	}
}
