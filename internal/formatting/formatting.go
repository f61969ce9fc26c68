// Package formatting holds the pure display helpers used by presenters.
package formatting

import (
	"net/url"
	"time"
)

// DisplayDateLayout is the human-readable layout used in pages.
const DisplayDateLayout = "Jan 2, 2006 3:04 PM"

// DisplayDate renders t for humans, in UTC.
func DisplayDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}

// ISODate renders t as RFC 3339 in UTC (suitable for <time datetime>).
func ISODate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Host returns the network location (host[:port]) of rawURL, or "" if it cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
