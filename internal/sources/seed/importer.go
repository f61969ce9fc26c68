package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

// Creator is the create-bookmark use case.
type Creator interface {
	CreateBookmark(ctx context.Context, userID, name, url string, out usecase.CreateBookmarkOutput) error
}

// Stats summarizes one import run.
type Stats struct {
	Created  int
	Rejected int
}

// Importer feeds seed entries through the create use case, so seeded
// bookmarks obey the same rules as the ones created from the web form.
type Importer struct {
	creator Creator
	logger  logger.Logger
}

// NewImporter creates a new seed importer
func NewImporter(creator Creator, log logger.Logger) *Importer {
	return &Importer{creator: creator, logger: log}
}

// Import creates every entry of file. Rejected entries (invalid, duplicate)
// are logged and counted; only use-case errors abort the run.
func (im *Importer) Import(ctx context.Context, file File) (Stats, error) {
	var stats Stats
	for _, ub := range file {
		if strings.TrimSpace(ub.User) == "" {
			im.logger.Warn("seed entry without user, skipping",
				logger.Int("bookmarks", len(ub.Bookmarks)))
			stats.Rejected += len(ub.Bookmarks)
			continue
		}

		for _, entry := range ub.Bookmarks {
			out := &resultRecorder{}
			if err := im.creator.CreateBookmark(ctx, ub.User, entry.Name, entry.URL, out); err != nil {
				return stats, fmt.Errorf("failed to import bookmark %q for %s: %w", entry.URL, ub.User, err)
			}
			if !out.result.OK() {
				stats.Rejected++
				im.logger.Info("seed bookmark rejected",
					logger.String("user", ub.User),
					logger.String("url", entry.URL),
					logger.String("errors", fmt.Sprint(out.result.Errors)))
				continue
			}
			stats.Created++
		}
	}

	im.logger.Info("seed import finished",
		logger.Int("created", stats.Created),
		logger.Int("rejected", stats.Rejected))
	return stats, nil
}

// resultRecorder is a minimal output boundary that keeps the last result.
type resultRecorder struct {
	result domain.CreateBookmarkResult
}

func (r *resultRecorder) Present(result domain.CreateBookmarkResult) {
	r.result = result
}
