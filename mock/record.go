package mock

import (
	"context"

	"github.com/fwojciec/miner"
)

var _ miner.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of miner.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *miner.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*miner.Record, error)
	FindRecordsFn    func(ctx context.Context, filter miner.RecordFilter) ([]*miner.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *miner.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*miner.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter miner.RecordFilter) ([]*miner.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
