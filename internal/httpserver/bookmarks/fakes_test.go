package bookmarks

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

// fakeRenderer records what a view asked to render.
type fakeRenderer struct {
	calls  int
	page   string
	status int
	data   any
	err    error
}

func (f *fakeRenderer) Render(w http.ResponseWriter, _ *http.Request, status int, page string, data any) error {
	f.calls++
	f.page, f.status, f.data = page, status, data
	if f.err != nil {
		return f.err
	}
	w.WriteHeader(status)
	return nil
}

// fakeUseCases implements the three use-case ports with canned behavior.
type fakeUseCases struct {
	bookmarks []domain.Bookmark
	details   *domain.Bookmark
	result    *domain.CreateBookmarkResult
	err       error

	gotUserID     string
	gotBookmarkID string
	gotName       string
	gotURL        string
}

func (f *fakeUseCases) ListBookmarks(_ context.Context, userID string, out usecase.ListBookmarksOutput) error {
	f.gotUserID = userID
	if f.err != nil {
		return f.err
	}
	out.Present(f.bookmarks)
	return nil
}

func (f *fakeUseCases) BookmarkDetails(_ context.Context, userID, bookmarkID string, out usecase.BookmarkDetailsOutput) error {
	f.gotUserID, f.gotBookmarkID = userID, bookmarkID
	if f.err != nil {
		return f.err
	}
	if f.details == nil {
		return domain.ErrBookmarkNotFound
	}
	out.Present(*f.details)
	return nil
}

func (f *fakeUseCases) CreateBookmark(_ context.Context, userID, name, url string, out usecase.CreateBookmarkOutput) error {
	f.gotUserID, f.gotName, f.gotURL = userID, name, url
	if f.err != nil {
		return f.err
	}
	if f.result != nil {
		out.Present(*f.result)
	}
	return nil
}

var errBoom = errors.New("boom")
