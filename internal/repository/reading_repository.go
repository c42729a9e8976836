package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/iliyamo/no-pressure/internal/database"
	"github.com/iliyamo/no-pressure/internal/model"
)

//go:embed sql/schema_sqlite.sql
var schemaSQLite string

//go:embed sql/schema_mysql.sql
var schemaMySQL string

// ReadingRepo provides access to the bp_readings table.  Each method opens
// its own connection through the Connector and closes it before returning;
// no transaction spans more than one call.
type ReadingRepo struct {
	conn *database.Connector
}

// NewReadingRepo returns a ReadingRepo bound to the given connector.
func NewReadingRepo(conn *database.Connector) *ReadingRepo { return &ReadingRepo{conn: conn} }

// EnsureSchema creates the bp_readings table and its descending timestamp
// index if they do not exist yet.  Idempotent: calling it repeatedly leaves
// exactly one table and returns no error.
func (r *ReadingRepo) EnsureSchema(ctx context.Context) error {
	db, err := r.conn.Open()
	if err != nil {
		return err
	}
	defer closeQuiet(db)

	schema := schemaSQLite
	if r.conn.Driver() == "mysql" {
		// MySQL has no CREATE INDEX IF NOT EXISTS; its schema declares the
		// index inside CREATE TABLE to stay idempotent.
		schema = schemaMySQL
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Insert stores one reading and returns the generated id.  A nil timestamp
// lets the column default (insertion time) apply.  Explicit timestamps are
// normalized to UTC so newest-first ordering stays consistent across rows.
func (r *ReadingRepo) Insert(ctx context.Context, systolic, diastolic, heartRate int, timestamp *time.Time) (int64, error) {
	db, err := r.conn.Open()
	if err != nil {
		return 0, err
	}
	defer closeQuiet(db)

	var res sql.Result
	if timestamp != nil {
		const q = `INSERT INTO bp_readings (timestamp, sys, dia, hr) VALUES (?, ?, ?, ?)`
		res, err = db.ExecContext(ctx, q, timestamp.UTC(), systolic, diastolic, heartRate)
	} else {
		const q = `INSERT INTO bp_readings (sys, dia, hr) VALUES (?, ?, ?)`
		res, err = db.ExecContext(ctx, q, systolic, diastolic, heartRate)
	}
	if err != nil {
		return 0, fmt.Errorf("insert reading: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert reading id: %w", err)
	}
	return id, nil
}

// GetRecent returns up to limit readings ordered newest first.  An empty
// table yields an empty slice, not an error.
func (r *ReadingRepo) GetRecent(ctx context.Context, limit int) ([]model.Reading, error) {
	if limit < 1 {
		limit = 1
	}
	db, err := r.conn.Open()
	if err != nil {
		return nil, err
	}
	defer closeQuiet(db)

	const q = `SELECT id, timestamp, sys, dia, hr
	           FROM bp_readings
	           ORDER BY timestamp DESC, id DESC
	           LIMIT ?`
	rows, err := db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent readings: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "error", err)
		}
	}()

	out := make([]model.Reading, 0, limit)
	for rows.Next() {
		var rec model.Reading
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Systolic, &rec.Diastolic, &rec.HeartRate); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetLatest returns the most recent reading, or nil when no readings exist.
func (r *ReadingRepo) GetLatest(ctx context.Context) (*model.Reading, error) {
	readings, err := r.GetRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, nil
	}
	return &readings[0], nil
}

func closeQuiet(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("close db handle", "error", err)
	}
}
