package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/miner"
)

// Ensure LoggingMetadataService implements miner.MetadataService.
var _ miner.MetadataService = (*LoggingMetadataService)(nil)

// LoggingMetadataService wraps a MetadataService and logs which fields each
// extraction filled.
type LoggingMetadataService struct {
	next   miner.MetadataService
	logger *slog.Logger
}

// NewLoggingMetadataService creates a new LoggingMetadataService.
func NewLoggingMetadataService(next miner.MetadataService, logger *slog.Logger) *LoggingMetadataService {
	return &LoggingMetadataService{next: next, logger: logger}
}

// Extract delegates to the wrapped service.
func (s *LoggingMetadataService) Extract(ctx context.Context, doc *miner.Document) (m *miner.Metadata, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", documentURL(doc), "duration", time.Since(begin)}
		if m != nil {
			var filled []string
			for _, f := range miner.Fields() {
				if !m.IsEmpty(f) {
					filled = append(filled, string(f))
				}
			}
			attrs = append(attrs, "fields", filled)
		}
		if err != nil {
			s.logger.Error("extract", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("extract", attrs...)
	}(time.Now())
	return s.next.Extract(ctx, doc)
}

func documentURL(doc *miner.Document) string {
	if doc == nil {
		return ""
	}
	return doc.URL
}
