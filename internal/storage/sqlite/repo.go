// Package sqlite keeps the terminal client's local state (recent
// searches) in an embedded database so no server is required.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"foodfinder/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Open opens (creating directories as needed) the history database at
// path and applies the schema.
func Open(path string) (*Repo, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	r := New(db)
	if err := r.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repo) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, historyMigration)
	return err
}

func (r *Repo) RecordSearch(ctx context.Context, query string, resultCount int) error {
	_, err := r.db.ExecContext(ctx, insertSearchSQL, query, resultCount, time.Now().Unix())
	return err
}

func (r *Repo) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, recentSearchesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		var unix int64
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.ResultCount, &unix); err != nil {
			return nil, err
		}
		rec.RunAt = time.Unix(unix, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) Close() error { return r.db.Close() }
