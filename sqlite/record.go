package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/miner"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ miner.RecordService = (*RecordService)(nil)

const recordColumns = `id, url, strategy, content_hash, title, author, keywords, description, image, host, domain, favicon, created_at`

// RecordService implements miner.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a new record. The content hash covers the title and
// description so re-extractions of an unchanged page can be recognized.
func (s *RecordService) CreateRecord(ctx context.Context, r *miner.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	keywords := r.Metadata.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	kw, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC().Truncate(time.Second)
	r.ContentHash = hashContent(r.Metadata.Title + "\x00" + r.Metadata.Description)

	m := r.Metadata
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.URL, string(r.Strategy), r.ContentHash, m.Title, m.Author, string(kw),
		m.Description, m.Image, m.Host, m.Domain, m.Favicon, r.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*miner.Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, miner.Errorf(miner.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter miner.RecordFilter) ([]*miner.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*miner.Record, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return miner.Errorf(miner.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*miner.Record, error) {
	var r miner.Record
	var strategy, keywords, createdAt string
	m := miner.NewMetadata()

	if err := row.Scan(&r.ID, &r.URL, &strategy, &r.ContentHash, &m.Title, &m.Author, &keywords,
		&m.Description, &m.Image, &m.Host, &m.Domain, &m.Favicon, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(keywords), &m.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if m.Keywords == nil {
		m.Keywords = []string{}
	}

	var err error
	r.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	r.Strategy = miner.Strategy(strategy)
	m.URL = r.URL
	r.Metadata = m
	return &r, nil
}
