package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

var (
	// ErrMissingForm is returned when a create request carries no form.
	ErrMissingForm = errors.New("request has no form")
	// ErrNoResult is returned when the create use case presented nothing.
	ErrNoResult = errors.New("use case presented no result")
)

// Request holds the parameters a controller reads. Each controller uses only the fields it needs.
type Request struct {
	UserID     string
	BookmarkID string
	Form       *CreateBookmarkForm
}

// BookmarkLister is the list use case.
type BookmarkLister interface {
	ListBookmarks(ctx context.Context, userID string, out usecase.ListBookmarksOutput) error
}

// BookmarkDetailer is the details use case.
type BookmarkDetailer interface {
	BookmarkDetails(ctx context.Context, userID, bookmarkID string, out usecase.BookmarkDetailsOutput) error
}

// BookmarkCreator is the create use case.
type BookmarkCreator interface {
	CreateBookmark(ctx context.Context, userID, name, url string, out usecase.CreateBookmarkOutput) error
}

// BookmarkListController serves the list in whatever format its view produces.
type BookmarkListController struct {
	usecase   BookmarkLister
	presenter *BookmarkListPresenter
	view      View[[]BookmarkView]
}

func NewBookmarkListController(uc BookmarkLister, presenter *BookmarkListPresenter, view View[[]BookmarkView]) *BookmarkListController {
	return &BookmarkListController{usecase: uc, presenter: presenter, view: view}
}

func (c *BookmarkListController) Handle(w http.ResponseWriter, r *http.Request, req Request) error {
	if err := c.usecase.ListBookmarks(r.Context(), req.UserID, c.presenter); err != nil {
		return err
	}
	return c.view.GenerateView(w, r, c.presenter.ViewModel())
}

// BookmarkDetailsController serves one bookmark.
type BookmarkDetailsController struct {
	usecase   BookmarkDetailer
	presenter *BookmarkDetailsPresenter
	view      View[BookmarkView]
}

func NewBookmarkDetailsController(uc BookmarkDetailer, presenter *BookmarkDetailsPresenter, view View[BookmarkView]) *BookmarkDetailsController {
	return &BookmarkDetailsController{usecase: uc, presenter: presenter, view: view}
}

func (c *BookmarkDetailsController) Handle(w http.ResponseWriter, r *http.Request, req Request) error {
	if err := c.usecase.BookmarkDetails(r.Context(), req.UserID, req.BookmarkID, c.presenter); err != nil {
		return err
	}
	return c.view.GenerateView(w, r, c.presenter.ViewModel())
}

// FormView is a view that reports errors back onto a bound form.
type FormView interface {
	View[CreateBookmarkViewModel]
	BindForm(form *CreateBookmarkForm)
}

// CreateBookmarkController stores a bookmark from a validated form.
// Its view either redirects or re-renders the form.
type CreateBookmarkController struct {
	usecase   BookmarkCreator
	presenter *CreateBookmarkPresenter
	view      FormView
}

func NewCreateBookmarkController(uc BookmarkCreator, presenter *CreateBookmarkPresenter, view FormView) *CreateBookmarkController {
	return &CreateBookmarkController{usecase: uc, presenter: presenter, view: view}
}

func (c *CreateBookmarkController) Handle(w http.ResponseWriter, r *http.Request, req Request) error {
	form := req.Form
	if form == nil {
		return ErrMissingForm
	}
	c.view.BindForm(form)

	if err := c.usecase.CreateBookmark(r.Context(), req.UserID, form.Name.Data, form.URL.Data, c.presenter); err != nil {
		return err
	}
	if !c.presenter.Presented() {
		return fmt.Errorf("create bookmark: %w", ErrNoResult)
	}
	return c.view.GenerateView(w, r, c.presenter.ViewModel())
}
