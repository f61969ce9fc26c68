package bookmarks

import (
	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

var (
	_ usecase.ListBookmarksOutput   = (*BookmarkListPresenter)(nil)
	_ usecase.BookmarkDetailsOutput = (*BookmarkDetailsPresenter)(nil)
	_ usecase.CreateBookmarkOutput  = (*CreateBookmarkPresenter)(nil)
)

// BookmarkListPresenter turns a list of bookmarks into display rows, keeping order.
type BookmarkListPresenter struct {
	viewModel []BookmarkView
}

func NewBookmarkListPresenter() *BookmarkListPresenter {
	return &BookmarkListPresenter{viewModel: []BookmarkView{}}
}

func (p *BookmarkListPresenter) Present(bookmarks []domain.Bookmark) {
	vm := make([]BookmarkView, 0, len(bookmarks))
	for _, bm := range bookmarks {
		vm = append(vm, FormatBookmarkDetails(bm))
	}
	p.viewModel = vm
}

func (p *BookmarkListPresenter) ViewModel() []BookmarkView {
	return p.viewModel
}

// BookmarkDetailsPresenter formats a single bookmark.
type BookmarkDetailsPresenter struct {
	viewModel BookmarkView
}

func NewBookmarkDetailsPresenter() *BookmarkDetailsPresenter {
	return &BookmarkDetailsPresenter{}
}

func (p *BookmarkDetailsPresenter) Present(bookmark domain.Bookmark) {
	p.viewModel = FormatBookmarkDetails(bookmark)
}

func (p *BookmarkDetailsPresenter) ViewModel() BookmarkView {
	return p.viewModel
}

// CreateBookmarkPresenter copies the created id and the field errors verbatim.
type CreateBookmarkPresenter struct {
	viewModel CreateBookmarkViewModel
	presented bool
}

func NewCreateBookmarkPresenter() *CreateBookmarkPresenter {
	return &CreateBookmarkPresenter{}
}

func (p *CreateBookmarkPresenter) Present(result domain.CreateBookmarkResult) {
	errs := make(map[string][]string, len(result.Errors))
	for field, msgs := range result.Errors {
		errs[field] = append([]string(nil), msgs...)
	}
	p.viewModel = CreateBookmarkViewModel{
		BookmarkID: result.BookmarkID,
		Errors:     errs,
	}
	p.presented = true
}

func (p *CreateBookmarkPresenter) ViewModel() CreateBookmarkViewModel {
	return p.viewModel
}

// Presented reports whether the use case produced a result.
func (p *CreateBookmarkPresenter) Presented() bool {
	return p.presented
}
