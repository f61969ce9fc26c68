package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/index"
	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

type listOut struct {
	got    []domain.Bookmark
	called int
}

func (o *listOut) Present(b []domain.Bookmark) { o.got = b; o.called++ }

type detailsOut struct {
	got    domain.Bookmark
	called int
}

func (o *detailsOut) Present(b domain.Bookmark) { o.got = b; o.called++ }

type createOut struct {
	got    domain.CreateBookmarkResult
	called int
}

func (o *createOut) Present(r domain.CreateBookmarkResult) { o.got = r; o.called++ }

type brokenRepo struct{ err error }

func (r brokenRepo) ListBookmarks(context.Context, string) ([]*domain.Bookmark, error) {
	return nil, r.err
}

func (r brokenRepo) GetBookmark(context.Context, string, string) (*domain.Bookmark, error) {
	return nil, r.err
}

func (r brokenRepo) SaveBookmark(context.Context, *domain.Bookmark) error { return r.err }

func stored(t *testing.T, repo usecase.BookmarkRepository, userID string) int {
	t.Helper()
	bookmarks, err := repo.ListBookmarks(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	return len(bookmarks)
}

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

func newUseCases(repo usecase.BookmarkRepository) *usecase.Bookmarks {
	n := 0
	return usecase.NewBookmarks(repo,
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithIDGenerator(func() string {
			n++
			return "id-" + string(rune('0'+n))
		}),
	)
}

func TestCreateBookmark_Success(t *testing.T) {
	repo := index.NewMemoryIndex()
	uc := newUseCases(repo)
	out := &createOut{}

	if err := uc.CreateBookmark(context.Background(), "alice", "  Example  ", " https://example.com/a ", out); err != nil {
		t.Fatalf("CreateBookmark() error = %v", err)
	}
	if out.called != 1 {
		t.Fatalf("Present called %d times, want 1", out.called)
	}
	if !out.got.OK() || out.got.BookmarkID != "id-1" {
		t.Fatalf("result = %+v, want OK with id-1", out.got)
	}
	if out.got.Errors == nil {
		t.Error("Errors should be an empty map, not nil")
	}

	bm, err := repo.GetBookmark(context.Background(), "alice", "id-1")
	if err != nil {
		t.Fatalf("GetBookmark() error = %v", err)
	}
	if bm.Name != "Example" || bm.URL != "https://example.com/a" {
		t.Errorf("stored %+v, want trimmed name and url", bm)
	}
	if !bm.DateCreated.Equal(fixedNow) || bm.DateCreated.Location() != time.UTC {
		t.Errorf("DateCreated = %v, want %v in UTC", bm.DateCreated, fixedNow)
	}
}

func TestCreateBookmark_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		inName     string
		inURL      string
		wantErrors map[string][]string
	}{
		{
			name:   "both empty",
			inName: " ", inURL: "",
			wantErrors: map[string][]string{
				usecase.FieldName: {"Name is required."},
				usecase.FieldURL:  {"URL is required."},
			},
		},
		{
			name:   "name too long",
			inName: strings.Repeat("é", usecase.MaxNameLength+1), inURL: "http://a.com",
			wantErrors: map[string][]string{
				usecase.FieldName: {"Name must be at most 255 characters."},
			},
		},
		{
			name:   "no host",
			inName: "x", inURL: "not a url",
			wantErrors: map[string][]string{usecase.FieldURL: {"Invalid URL."}},
		},
		{
			name:   "bad scheme",
			inName: "x", inURL: "ftp://a.com/file",
			wantErrors: map[string][]string{usecase.FieldURL: {"URL must start with http:// or https://."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := index.NewMemoryIndex()
			out := &createOut{}
			if err := newUseCases(repo).CreateBookmark(context.Background(), "alice", tt.inName, tt.inURL, out); err != nil {
				t.Fatalf("CreateBookmark() error = %v", err)
			}
			if out.got.OK() {
				t.Fatal("result should carry errors")
			}
			if out.got.BookmarkID != "" {
				t.Errorf("BookmarkID = %q, want empty", out.got.BookmarkID)
			}
			if !reflect.DeepEqual(out.got.Errors, tt.wantErrors) {
				t.Errorf("Errors = %v, want %v", out.got.Errors, tt.wantErrors)
			}
			if n := stored(t, repo, "alice"); n != 0 {
				t.Errorf("repo has %d bookmarks, want 0", n)
			}
		})
	}
}

func TestCreateBookmark_NameAtLimitAccepted(t *testing.T) {
	out := &createOut{}
	name := strings.Repeat("é", usecase.MaxNameLength)
	if err := newUseCases(index.NewMemoryIndex()).CreateBookmark(context.Background(), "alice", name, "http://a.com", out); err != nil {
		t.Fatal(err)
	}
	if !out.got.OK() {
		t.Fatalf("errors = %v, want none", out.got.Errors)
	}
}

func TestCreateBookmark_DuplicateURLPerUser(t *testing.T) {
	repo := index.NewMemoryIndex()
	uc := newUseCases(repo)
	ctx := context.Background()

	if err := uc.CreateBookmark(ctx, "alice", "first", "http://a.com", &createOut{}); err != nil {
		t.Fatal(err)
	}

	dup := &createOut{}
	if err := uc.CreateBookmark(ctx, "alice", "second", "http://a.com", dup); err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{usecase.FieldURL: {"You already bookmarked this URL."}}
	if !reflect.DeepEqual(dup.got.Errors, want) {
		t.Errorf("Errors = %v, want %v", dup.got.Errors, want)
	}

	other := &createOut{}
	if err := uc.CreateBookmark(ctx, "bob", "mine", "http://a.com", other); err != nil {
		t.Fatal(err)
	}
	if !other.got.OK() {
		t.Errorf("another user may store the same URL, got %v", other.got.Errors)
	}
	if n := stored(t, repo, "alice") + stored(t, repo, "bob"); n != 2 {
		t.Errorf("repo has %d bookmarks, want 2", n)
	}
}

func TestCreateBookmark_ConcurrentDuplicates(t *testing.T) {
	repo := index.NewMemoryIndex()
	uc := usecase.NewBookmarks(repo)
	ctx := context.Background()

	outs := make([]*createOut, 20)
	var wg sync.WaitGroup
	for i := range outs {
		outs[i] = &createOut{}
		wg.Add(1)
		go func(out *createOut) {
			defer wg.Done()
			if err := uc.CreateBookmark(ctx, "alice", "Go", "https://go.dev/", out); err != nil {
				t.Errorf("CreateBookmark() error = %v", err)
			}
		}(outs[i])
	}
	wg.Wait()

	created := 0
	want := map[string][]string{usecase.FieldURL: {"You already bookmarked this URL."}}
	for _, out := range outs {
		if out.got.OK() {
			created++
			continue
		}
		if !reflect.DeepEqual(out.got.Errors, want) {
			t.Errorf("Errors = %v, want %v", out.got.Errors, want)
		}
	}
	if created != 1 {
		t.Errorf("created %d bookmarks for one URL, want 1", created)
	}
	if n := stored(t, repo, "alice"); n != 1 {
		t.Errorf("repo has %d bookmarks, want 1", n)
	}
}

func TestCreateBookmark_RepositoryErrors(t *testing.T) {
	errDown := errors.New("storage down")
	out := &createOut{}

	err := newUseCases(brokenRepo{err: errDown}).CreateBookmark(context.Background(), "alice", "x", "http://a.com", out)
	if !errors.Is(err, errDown) {
		t.Fatalf("error = %v, want wrapping %v", err, errDown)
	}
	if out.called != 0 {
		t.Error("nothing should be presented on failure")
	}
}

func TestListBookmarks(t *testing.T) {
	repo := index.NewMemoryIndex()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "new"} {
		_ = repo.SaveBookmark(ctx, &domain.Bookmark{
			BookmarkID: id, UserID: "alice", URL: "http://" + id + ".com",
			DateCreated: base.Add(time.Duration(i) * time.Hour),
		})
	}
	_ = repo.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "x", UserID: "bob", DateCreated: base})

	out := &listOut{}
	if err := newUseCases(repo).ListBookmarks(ctx, "alice", out); err != nil {
		t.Fatal(err)
	}
	if len(out.got) != 2 || out.got[0].BookmarkID != "new" || out.got[1].BookmarkID != "old" {
		t.Errorf("got %+v, want [new old]", out.got)
	}

	empty := &listOut{}
	if err := newUseCases(repo).ListBookmarks(ctx, "carol", empty); err != nil {
		t.Fatal(err)
	}
	if empty.called != 1 || empty.got == nil || len(empty.got) != 0 {
		t.Errorf("empty list presented as %#v (called %d)", empty.got, empty.called)
	}
}

func TestListBookmarks_Error(t *testing.T) {
	errDown := errors.New("storage down")
	out := &listOut{}
	err := newUseCases(brokenRepo{err: errDown}).ListBookmarks(context.Background(), "alice", out)
	if !errors.Is(err, errDown) {
		t.Fatalf("error = %v, want wrapping %v", err, errDown)
	}
	if out.called != 0 {
		t.Error("nothing should be presented on failure")
	}
}

func TestBookmarkDetails(t *testing.T) {
	repo := index.NewMemoryIndex()
	ctx := context.Background()
	_ = repo.SaveBookmark(ctx, &domain.Bookmark{BookmarkID: "b1", UserID: "alice", Name: "A"})

	out := &detailsOut{}
	if err := newUseCases(repo).BookmarkDetails(ctx, "alice", "b1", out); err != nil {
		t.Fatal(err)
	}
	if out.got.Name != "A" {
		t.Errorf("Name = %q, want A", out.got.Name)
	}

	err := newUseCases(repo).BookmarkDetails(ctx, "bob", "b1", &detailsOut{})
	if !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Errorf("other user's bookmark: error = %v, want ErrBookmarkNotFound", err)
	}
}
