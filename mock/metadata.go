package mock

import (
	"context"

	"github.com/fwojciec/miner"
)

var _ miner.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of miner.MetadataService.
type MetadataService struct {
	ExtractFn func(ctx context.Context, doc *miner.Document) (*miner.Metadata, error)
}

func (s *MetadataService) Extract(ctx context.Context, doc *miner.Document) (*miner.Metadata, error) {
	return s.ExtractFn(ctx, doc)
}
