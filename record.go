package miner

import (
	"context"
	"time"
)

// Record is a persisted extraction result.
type Record struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Strategy    Strategy  `json:"strategy"`
	ContentHash string    `json:"contentHash"`
	Metadata    *Metadata `json:"metadata"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Metadata == nil {
		return Errorf(EINVALID, "record metadata required")
	}
	if _, err := ParseStrategy(string(r.Strategy)); err != nil {
		return err
	}
	return nil
}

// RecordService represents a service for managing extraction records.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
