package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/bookmarks"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/templates"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

// GenericErrorMessage is the only error detail the JSON API ever exposes.
const GenericErrorMessage = "Something bad happened"

var errNoUser = errors.New("no user in request context")

type jsonError struct {
	Error string `json:"error"`
}

// ListBookmarks renders the current user's bookmarks as HTML.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			writeHTMLError(w, r, d, errNoUser)
			return
		}
		c := bookmarks.NewBookmarkListController(d.Bookmarks,
			bookmarks.NewBookmarkListPresenter(), bookmarks.NewBookmarkListView(d.Renderer))
		if err := c.Handle(w, r, bookmarks.Request{UserID: userID}); err != nil {
			writeHTMLError(w, r, d, err)
		}
	}
}

// BookmarkDetails renders one bookmark; unknown ids answer 404.
func BookmarkDetails(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			writeHTMLError(w, r, d, errNoUser)
			return
		}
		c := bookmarks.NewBookmarkDetailsController(d.Bookmarks,
			bookmarks.NewBookmarkDetailsPresenter(), bookmarks.NewBookmarkDetailsView(d.Renderer))
		req := bookmarks.Request{UserID: userID, BookmarkID: chi.URLParam(r, "bookmarkID")}
		if err := c.Handle(w, r, req); err != nil {
			writeHTMLError(w, r, d, err)
		}
	}
}

// ListBookmarksJSON writes {"bookmarks": [...]}. Any error or panic becomes
// {"error": "Something bad happened"}; details only go to the log.
func ListBookmarksJSON(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				writeJSONError(ww, r, d, fmt.Errorf("panic: %v", rec))
			}
		}()

		userID, ok := mw.UserID(r.Context())
		if !ok {
			writeJSONError(ww, r, d, errNoUser)
			return
		}
		c := bookmarks.NewBookmarkListController(d.Bookmarks,
			bookmarks.NewBookmarkListPresenter(), bookmarks.NewBookmarkListJSONView())
		if err := c.Handle(ww, r, bookmarks.Request{UserID: userID}); err != nil {
			writeJSONError(ww, r, d, err)
		}
	}
}

// CreateBookmark shows the form on GET. On POST a valid form goes to the use
// case; an invalid one is shown again with its errors.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			writeHTMLError(w, r, d, errNoUser)
			return
		}

		form := bookmarks.NewCreateBookmarkForm()
		if form.ValidateOnSubmit(r) {
			c := bookmarks.NewCreateBookmarkController(d.Bookmarks,
				bookmarks.NewCreateBookmarkPresenter(), bookmarks.NewCreateBookmarkView(d.Renderer))
			if err := c.Handle(w, r, bookmarks.Request{UserID: userID, Form: form}); err != nil {
				writeHTMLError(w, r, d, err)
			}
			return
		}

		if err := d.Renderer.Render(w, r, http.StatusOK, templates.CreateBookmark, form); err != nil {
			writeHTMLError(w, r, d, err)
		}
	}
}

func writeHTMLError(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	if errors.Is(err, domain.ErrBookmarkNotFound) {
		d.Logger.Debug("bookmark not found",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	d.Logger.Error("request failed",
		logger.String("path", r.URL.Path),
		logger.String("request_id", middleware.GetReqID(r.Context())),
		logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// writeJSONError answers with the generic error body, unless the response
// has already started; then the body is partial and only the log records it.
func writeJSONError(ww middleware.WrapResponseWriter, r *http.Request, d deps.Deps, err error) {
	fields := []logger.Field{
		logger.String("path", r.URL.Path),
		logger.String("request_id", middleware.GetReqID(r.Context())),
		logger.Error(err),
	}
	if status := ww.Status(); status != 0 {
		d.Logger.Error("json response failed after headers were sent",
			append(fields, logger.Int("status", status), logger.Int("bytes_written", ww.BytesWritten()))...)
		return
	}
	d.Logger.Error("json request failed", fields...)
	ww.Header().Set("Content-Type", "application/json")
	ww.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(ww).Encode(jsonError{Error: GenericErrorMessage})
}
