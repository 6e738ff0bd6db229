package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/mock"
	minerslog "github.com/fwojciec/miner/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	inner := &mock.RecordService{
		CreateRecordFn: func(ctx context.Context, r *miner.Record) error {
			r.ID = "rec-1"
			r.ContentHash = "abcd"
			return nil
		},
		FindRecordByIDFn: func(ctx context.Context, id string) (*miner.Record, error) {
			return nil, miner.Errorf(miner.ENOTFOUND, "record not found")
		},
		FindRecordsFn: func(ctx context.Context, filter miner.RecordFilter) ([]*miner.Record, error) {
			return []*miner.Record{{ID: "a"}, {ID: "b"}}, nil
		},
		DeleteRecordFn: func(ctx context.Context, id string) error {
			return nil
		},
	}

	t.Run("logs created record id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := minerslog.NewLoggingRecordService(inner, debugLogger(&buf))

		err := svc.CreateRecord(context.Background(), &miner.Record{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "id=rec-1")
		assert.Contains(t, buf.String(), "hash=abcd")
	})

	t.Run("logs lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := minerslog.NewLoggingRecordService(inner, debugLogger(&buf))

		_, err := svc.FindRecordByID(context.Background(), "missing")

		assert.Equal(t, miner.ENOTFOUND, miner.ErrorCode(err))
		assert.Contains(t, buf.String(), "id=missing")
		assert.Contains(t, buf.String(), "record not found")
	})

	t.Run("logs result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := minerslog.NewLoggingRecordService(inner, debugLogger(&buf))

		rs, err := svc.FindRecords(context.Background(), miner.RecordFilter{Limit: 10})

		require.NoError(t, err)
		assert.Len(t, rs, 2)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "limit=10")
	})

	t.Run("logs deletes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := minerslog.NewLoggingRecordService(inner, debugLogger(&buf))

		require.NoError(t, svc.DeleteRecord(context.Background(), "rec-1"))
		assert.Contains(t, buf.String(), "msg=\"delete record\"")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := minerslog.NewLoggingRecordService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		require.NoError(t, svc.DeleteRecord(context.Background(), "rec-1"))
		assert.Empty(t, buf.String())
	})
}
