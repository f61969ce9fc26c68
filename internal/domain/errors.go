package domain

import "errors"

var (
	// ErrBookmarkNotFound is returned when a bookmark does not exist for the given user.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrDuplicateURL is returned when the user already has a bookmark for the URL.
	ErrDuplicateURL = errors.New("url already bookmarked")
)
