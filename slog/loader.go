package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapebench"
)

// Ensure LoggingLoader implements scrapebench.DocumentLoader.
var _ scrapebench.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with logging.
type LoggingLoader struct {
	next   scrapebench.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next scrapebench.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDocument logs the page being loaded and delegates to the wrapped loader.
func (l *LoggingLoader) LoadDocument(ctx context.Context, path string) (doc *scrapebench.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Content)
		}
		l.logger.Info("load",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDocument(ctx, path)
}
