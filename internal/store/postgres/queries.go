package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queryGetSlot returns (nil, nil) when the slot has no row.
func queryGetSlot(ctx context.Context, db executor, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func querySetSlot(ctx context.Context, db executor, key string, value []byte) error {
	// lib/pq sends []byte as bytea, which JSONB rejects, so pass text.
	_, err := db.ExecContext(ctx, `
		INSERT INTO slots (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value),
	)
	return err
}

// queryDeleteSlot succeeds whether or not a row was deleted.
func queryDeleteSlot(ctx context.Context, db executor, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM slots WHERE key = $1`, key)
	return err
}

// classify tags PostgreSQL failures with the store's backend error kinds.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "42501", pqErr.Code.Class() == "28":
			// insufficient_privilege, invalid authorization
			return fmt.Errorf("%w: %w", store.ErrBackendDenied, err)
		case pqErr.Code.Class() == "53", pqErr.Code.Class() == "54":
			// insufficient resources, program limit exceeded
			return fmt.Errorf("%w: %w", store.ErrBackendQuota, err)
		case pqErr.Code.Class() == "08", pqErr.Code.Class() == "57", pqErr.Code == "3D000":
			// connection exception, operator intervention, unknown database
			return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
		}
		return err
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
	}
	return err
}
