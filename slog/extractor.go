// Package slog provides logging decorators for scrapebench services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scrapebench"
)

// Ensure LoggingExtractor implements scrapebench.Extractor.
var _ scrapebench.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   scrapebench.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scrapebench.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

// Extract logs the outcome of the extraction and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract() (result scrapebench.Result, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"strategy", e.next.Name(),
			"count", len(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract()
}
