package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/bookmarks"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

// BookmarkUseCases is everything the bookmark controllers need.
type BookmarkUseCases interface {
	bookmarks.BookmarkLister
	bookmarks.BookmarkDetailer
	bookmarks.BookmarkCreator
}

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access readyz/infra
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	Bookmarks BookmarkUseCases   // list/details/create use cases
	Renderer  bookmarks.Renderer // HTML page renderer
	Session   mw.SessionConfig   // signed cookie carrying the user id
	RateLimit mw.RateLimitConfig // applied to POST /create

	StorageMode string // "redis" | "memory"
	Storage     Pinger // nil in memory mode
}
