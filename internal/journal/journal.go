// Package journal persists one row per tool call in PostgreSQL. Rows carry
// identifiers, outcome, and timing only. Arguments, credentials, and tokens
// never reach the journal.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/bookhub/bookhub/internal/tools"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Store writes and reads the tool call journal. It implements tools.Recorder.
type Store struct {
	conn *sql.DB
}

// Open connects to PostgreSQL, verifies connectivity, and applies migrations.
func Open(databaseURL string) (*Store, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("journal open: %w", err)
	}
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal ping: %w", err)
	}
	if err := applyMigrations(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal migrate: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record inserts one call record.
func (s *Store) Record(ctx context.Context, rec tools.CallRecord) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO tool_calls (call_id, tool, category, request_id, language, status, error_code, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.CallID, rec.Tool, rec.Category, rec.RequestID, rec.Language, rec.Status, rec.ErrorCode, rec.DurationMS, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool_call: %w", err)
	}
	return nil
}

// Filter narrows List output. Zero values mean no constraint; nil time
// bounds are open ends.
type Filter struct {
	Status        string
	Tool          string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
}

// listQuery builds the SELECT for a filter. Separate from List so the SQL
// shape is testable without a database.
func listQuery(f Filter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT call_id, tool, category, request_id, language, status, error_code, duration_ms, created_at FROM tool_calls`)

	var conds []string
	var args []any
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, expr+"$"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		add("status = ", f.Status)
	}
	if f.Tool != "" {
		add("tool = ", f.Tool)
	}
	if f.CreatedAfter != nil {
		add("created_at >= ", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		add("created_at <= ", *f.CreatedBefore)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	args = append(args, limit)
	sb.WriteString(" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)))

	return sb.String(), args
}

// List returns journal rows matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]tools.CallRecord, error) {
	query, args := listQuery(f)
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tool_calls: %w", err)
	}
	defer rows.Close()

	records := make([]tools.CallRecord, 0)
	for rows.Next() {
		var rec tools.CallRecord
		if err := rows.Scan(
			&rec.CallID, &rec.Tool, &rec.Category, &rec.RequestID, &rec.Language,
			&rec.Status, &rec.ErrorCode, &rec.DurationMS, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tool_call: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
