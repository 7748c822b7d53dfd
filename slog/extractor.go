// Package slog provides logging decorators for pagemeta services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingExtractor implements pagemeta.MetadataExtractor.
var _ pagemeta.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging of what
// each extraction produced and how long it took.
type LoggingExtractor struct {
	next   pagemeta.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemeta.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, url string) (*pagemeta.Metadata, error) {
	begin := time.Now()
	md, err := e.next.Extract(html, url)
	if err != nil {
		e.logger.Error("metadata extraction failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("metadata extraction",
		"url", url,
		"duration", time.Since(begin),
		"siteName", md.SiteName != "",
		"topics", len(md.Topics),
		"address", md.Address != "",
		"faq", len(md.FAQ),
		"tableRows", len(md.Table),
		"structuredData", md.StructuredData != nil,
	)
	return md, nil
}
