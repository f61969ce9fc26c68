package bookmarks

import (
	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/formatting"
)

// BookmarkView is the display shape of a bookmark, shared by HTML pages and the JSON API.
type BookmarkView struct {
	BookmarkID     string `json:"bookmark_id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	DateCreated    string `json:"date_created"`
	DateCreatedISO string `json:"date_created_iso"`
	Host           string `json:"host"`
}

// CreateBookmarkViewModel carries the outcome of a create request to its view.
type CreateBookmarkViewModel struct {
	BookmarkID string
	Errors     map[string][]string
}

// FormatBookmarkDetails converts a bookmark into its display shape. Same input, same output.
func FormatBookmarkDetails(bm domain.Bookmark) BookmarkView {
	return BookmarkView{
		BookmarkID:     bm.BookmarkID,
		Name:           bm.Name,
		URL:            bm.URL,
		DateCreated:    formatting.DisplayDate(bm.DateCreated),
		DateCreatedISO: formatting.ISODate(bm.DateCreated),
		Host:           formatting.Host(bm.URL),
	}
}
