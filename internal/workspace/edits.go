package workspace

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Edit is a single recorded mutation of a pack.
type Edit struct {
	ID        int64
	SessionID string
	PackName  string
	Operation string
	Detail    string
	CreatedAt time.Time
}

const editColumns = "id, session_id, pack_name, operation, detail, created_at"

// RecordEdit appends one history row for a mutating operation.
func (s *Store) RecordEdit(ctx context.Context, sessionID, packName, operation, detail string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO edits (session_id, pack_name, operation, detail, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		sessionID,
		packName,
		operation,
		nullableString(detail),
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert edit: %w", err)
	}
	return nil
}

// Recent returns the most recent edits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Edit, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+editColumns+` FROM edits ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query edits: %w", err)
	}
	defer rows.Close()

	var edits []Edit
	for rows.Next() {
		edit, err := scanEdit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan edit: %w", err)
		}
		edits = append(edits, edit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edits: %w", err)
	}
	return edits, nil
}

// Clear removes all history rows and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM edits")
	if err != nil {
		return 0, fmt.Errorf("clear edits: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

func scanEdit(scanner interface{ Scan(dest ...any) error }) (Edit, error) {
	var (
		edit       Edit
		detail     sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(
		&edit.ID,
		&edit.SessionID,
		&edit.PackName,
		&edit.Operation,
		&detail,
		&createdRaw,
	); err != nil {
		return Edit{}, err
	}
	edit.Detail = detail.String
	if parsed, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		edit.CreatedAt = parsed
	}
	return edit, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
