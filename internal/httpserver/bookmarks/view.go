package bookmarks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/flash"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/templates"
)

// SavedMessage is flashed after a successful create.
const SavedMessage = "Data saved!"

// ListPath is where a successful create redirects to.
const ListPath = "/bookmarks"

// View turns a finished view model into the HTTP response.
type View[VM any] interface {
	GenerateView(w http.ResponseWriter, r *http.Request, vm VM) error
}

// Renderer renders a named HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) error
}

// BookmarkListView renders the HTML list page.
type BookmarkListView struct {
	renderer Renderer
}

func NewBookmarkListView(renderer Renderer) *BookmarkListView {
	return &BookmarkListView{renderer: renderer}
}

func (v *BookmarkListView) GenerateView(w http.ResponseWriter, r *http.Request, vm []BookmarkView) error {
	return v.renderer.Render(w, r, http.StatusOK, templates.ListBookmarks, vm)
}

type bookmarkListJSON struct {
	Bookmarks []BookmarkView `json:"bookmarks"`
}

// BookmarkListJSONView writes {"bookmarks": [...]}.
type BookmarkListJSONView struct{}

func NewBookmarkListJSONView() *BookmarkListJSONView {
	return &BookmarkListJSONView{}
}

func (v *BookmarkListJSONView) GenerateView(w http.ResponseWriter, _ *http.Request, vm []BookmarkView) error {
	if vm == nil {
		vm = []BookmarkView{}
	}
	// Encode before touching w so a failure leaves the response untouched.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(bookmarkListJSON{Bookmarks: vm}); err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// BookmarkDetailsView renders the details page.
type BookmarkDetailsView struct {
	renderer Renderer
}

func NewBookmarkDetailsView(renderer Renderer) *BookmarkDetailsView {
	return &BookmarkDetailsView{renderer: renderer}
}

func (v *BookmarkDetailsView) GenerateView(w http.ResponseWriter, r *http.Request, vm BookmarkView) error {
	return v.renderer.Render(w, r, http.StatusOK, templates.BookmarkDetails, vm)
}

// CreateBookmarkView re-renders the bound form when the view model has errors,
// otherwise flashes a notice and redirects to the list.
type CreateBookmarkView struct {
	renderer Renderer
	form     *CreateBookmarkForm
}

func NewCreateBookmarkView(renderer Renderer) *CreateBookmarkView {
	return &CreateBookmarkView{renderer: renderer}
}

// BindForm sets the form that receives field errors.
func (v *CreateBookmarkView) BindForm(form *CreateBookmarkForm) {
	v.form = form
}

func (v *CreateBookmarkView) GenerateView(w http.ResponseWriter, r *http.Request, vm CreateBookmarkViewModel) error {
	if len(vm.Errors) > 0 {
		if v.form == nil {
			v.form = NewCreateBookmarkForm()
		}
		v.setFormErrors(vm.Errors)
		return v.renderer.Render(w, r, http.StatusOK, templates.CreateBookmark, v.form)
	}

	flash.Add(w, r, "info", SavedMessage)
	http.Redirect(w, r, ListPath, http.StatusFound)
	return nil
}

// setFormErrors attaches use-case errors to the matching fields; unknown names are ignored.
func (v *CreateBookmarkView) setFormErrors(errs map[string][]string) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sink, ok := v.form.Field(name)
		if !ok {
			continue
		}
		sink.AddErrors(errs[name]...)
	}
}
