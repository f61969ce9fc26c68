// Package templates renders the HTML pages of the web UI.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/flash"
)

//go:embed html/*.html
var files embed.FS

// Page names.
const (
	ListBookmarks   = "list_bookmarks.html"
	BookmarkDetails = "bookmark_details.html"
	CreateBookmark  = "create_bookmark.html"
)

// Page is the data every page template receives.
type Page struct {
	Flashes []flash.Message
	Data    any
}

// Renderer holds one parsed template set per page, each combined with the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. It fails only on a broken template.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{ListBookmarks, BookmarkDetails, CreateBookmark} {
		t, err := template.New(name).ParseFS(files, "html/layout.html", "html/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew is New for program start-up and tests.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page into a buffer and writes it with status.
// Pending flash messages are consumed only when rendering succeeds.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) error {
	t, ok := rd.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}

	var buf bytes.Buffer
	p := Page{Flashes: flash.Peek(r), Data: data}
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	flash.Pop(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
